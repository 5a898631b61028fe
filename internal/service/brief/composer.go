package brief

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// contentPreviewLen is how much raw journal content feeds the brief when an
// entry has no stored summary.
const contentPreviewLen = 500

// briefSystemPrompt instructs the model to produce the sectioned situation
// brief.
const briefSystemPrompt = `You are a professional divorce case briefing assistant. You generate comprehensive situation briefs for legal professionals (lawyers, mediators) and therapists.

Given the client's complete case data below, generate a professional 1-2 page situation brief with these sections:

CLIENT OVERVIEW
Brief description of the client's situation, relationship type, stage, children if applicable. 2-3 sentences.

SITUATION SUMMARY
A clear, chronological narrative of the case based on journal entries and timeline events. Focus on key facts, incidents, and patterns. 3-5 paragraphs.

KEY INCIDENTS
Bulleted list of the most significant events, with dates. Focus on legally relevant incidents — threats, custody issues, financial disputes, safety concerns.

FINANCIAL POSITION
Summary of assets, debts, income, expenses, and net position. Highlight any financial concerns or disputes.

DOCUMENTS AVAILABLE
List of documents the client has collected and their relevance.

AREAS OF CONCERN
Bulleted list of issues that need professional attention — safety, custody, financial, legal deadlines, emotional wellbeing.

RECOMMENDED NEXT STEPS
Actionable recommendations based on the data.

Rules:
- Professional, third-person tone throughout
- Factual and objective — no emotional language
- If information is missing or unclear, note it rather than guessing
- Flag urgent safety or legal concerns prominently
- Include specific dates where available
- Keep it concise but comprehensive — a lawyer should be able to understand the full picture from this brief alone
- Do NOT include any preamble or closing remarks — just the structured brief`

// buildBriefUserContent renders the aggregated case data as the user message
// for the brief completion. Empty sections are omitted entirely; the
// remaining sections are joined by "\n\n---\n\n".
func buildBriefUserContent(
	profile *domain.Profile,
	entries []domain.JournalEntry,
	timeline []domain.TimelineEvent,
	finances []domain.FinancialItem,
	documents []domain.Document,
) string {
	var sections []string

	var currency domain.CurrencyConfig
	if profile != nil {
		currency = domain.CurrencyForCountry(profile.Country)
	} else {
		currency = domain.CurrencyForCountry(nil)
	}

	if s := profileSection(profile); s != "" {
		sections = append(sections, s)
	}
	if s := journalSection(entries); s != "" {
		sections = append(sections, s)
	}
	if s := timelineSection(timeline); s != "" {
		sections = append(sections, s)
	}
	if s := financialSection(finances, currency); s != "" {
		sections = append(sections, s)
	}
	if s := documentSection(documents); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n---\n\n")
}

func profileSection(profile *domain.Profile) string {
	if profile == nil {
		return ""
	}

	var lines []string
	if profile.Country != nil {
		lines = append(lines, "Country: "+*profile.Country)
	}
	if profile.RelationshipType != nil {
		lines = append(lines, "Relationship type: "+humanize(string(*profile.RelationshipType)))
	}
	if profile.Stage != nil {
		lines = append(lines, "Current stage: "+humanize(string(*profile.Stage)))
	}
	if profile.HasChildren != nil && *profile.HasChildren {
		children := "yes"
		if profile.ChildrenCount != nil {
			children = strconv.Itoa(*profile.ChildrenCount)
		}
		if profile.ChildrenAges != nil && *profile.ChildrenAges != "" {
			children += " (ages: " + *profile.ChildrenAges + ")"
		}
		lines = append(lines, "Children: "+children)
	}

	if len(lines) == 0 {
		return ""
	}
	return "CLIENT PROFILE:\n" + strings.Join(lines, "\n")
}

func journalSection(entries []domain.JournalEntry) string {
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries))
	for i, e := range entries {
		header := fmt.Sprintf("Entry %d — %s", i+1, e.IncidentDate.Format("2006-01-02"))
		if e.Category != nil {
			header += " [" + string(*e.Category) + "]"
		}
		if e.Mood != nil {
			header += " (mood: " + string(*e.Mood) + ")"
		}

		lines := []string{header}
		if e.Title != nil && *e.Title != "" {
			lines = append(lines, "Title: "+*e.Title)
		}
		// A stored summary is already distilled; prefer it over raw content.
		if e.Summary != nil && *e.Summary != "" {
			lines = append(lines, "Summary: "+*e.Summary)
		} else {
			lines = append(lines, "Content: "+truncate(e.Content, contentPreviewLen))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return fmt.Sprintf("JOURNAL ENTRIES (%d total, most recent first):\n%s",
		len(entries), strings.Join(blocks, "\n\n"))
}

func timelineSection(events []domain.TimelineEvent) string {
	if len(events) == 0 {
		return ""
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		line := fmt.Sprintf("- %s: %s", e.EventDate.Format("2006-01-02"), e.Title)
		if e.Category != nil {
			line += " [" + string(*e.Category) + "]"
		}
		if e.Description != nil && *e.Description != "" {
			line += " — " + *e.Description
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf("KEY EVENTS TIMELINE (%d events):\n%s", len(events), strings.Join(lines, "\n"))
}

func financialSection(items []domain.FinancialItem, currency domain.CurrencyConfig) string {
	if len(items) == 0 {
		return ""
	}

	var assets, debts, income, expenses []domain.FinancialItem
	for _, item := range items {
		switch item.Kind {
		case domain.FinancialKindAsset:
			assets = append(assets, item)
		case domain.FinancialKindDebt:
			debts = append(debts, item)
		case domain.FinancialKindIncome:
			income = append(income, item)
		case domain.FinancialKindExpense:
			expenses = append(expenses, item)
		}
	}

	summary := domain.SummarizeFinances(items)
	money := func(v float64) string { return formatMoney(currency.Symbol, v) }

	var lines []string
	if len(assets) > 0 {
		lines = append(lines, fmt.Sprintf("Assets (%d): Total %s", len(assets), money(summary.TotalAssets)))
		for _, a := range assets {
			lines = append(lines, itemLine(a, money(a.Amount)))
		}
	}
	if len(debts) > 0 {
		lines = append(lines, fmt.Sprintf("Debts (%d): Total %s", len(debts), money(summary.TotalDebts)))
		for _, d := range debts {
			lines = append(lines, itemLine(d, money(d.Amount)))
		}
	}
	lines = append(lines, "Net Worth: "+money(summary.NetWorth))
	if len(income) > 0 {
		lines = append(lines, "Monthly Income: "+money(summary.MonthlyIncome))
		for _, i := range income {
			lines = append(lines, itemLine(i, money(i.Amount)))
		}
	}
	if len(expenses) > 0 {
		lines = append(lines, "Monthly Expenses: "+money(summary.MonthlyExpenses))
		for _, e := range expenses {
			lines = append(lines, itemLine(e, money(e.Amount)))
		}
	}

	return "FINANCIAL OVERVIEW:\n" + strings.Join(lines, "\n")
}

// itemLine renders one financial item as an indented bullet. Income and
// expense lines carry their frequency; asset and debt lines carry notes.
func itemLine(item domain.FinancialItem, amount string) string {
	line := fmt.Sprintf("  - %s: %s", item.Name, amount)
	switch {
	case item.Frequency != nil:
		line += " (" + string(*item.Frequency) + ")"
	case item.Notes != nil && *item.Notes != "":
		line += " (" + *item.Notes + ")"
	}
	return line
}

func documentSection(documents []domain.Document) string {
	if len(documents) == 0 {
		return ""
	}

	lines := make([]string, 0, len(documents))
	for _, d := range documents {
		line := "- " + d.FileName
		if d.Category != nil {
			line += " [" + string(*d.Category) + "]"
		}
		if d.Notes != nil && *d.Notes != "" {
			line += " — " + *d.Notes
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf("DOCUMENTS ON FILE (%d):\n%s", len(documents), strings.Join(lines, "\n"))
}

// humanize replaces underscores with spaces in enum values for prompt text.
func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// truncate cuts s to at most n runes, appending "..." when anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// formatMoney renders an amount with the currency symbol, thousands
// separators and exactly two decimals, e.g. "$1,234.50" or "£-85,000.00".
func formatMoney(symbol string, v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	return symbol + sign + b.String() + "." + frac
}
