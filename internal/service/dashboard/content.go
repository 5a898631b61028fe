package dashboard

import (
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// stageContent maps each process stage to its dashboard blocks.
var stageContent = map[domain.Stage][]domain.ContentBlock{
	domain.StageThinking: {
		{
			ID:    "thinking-checklist",
			Type:  domain.BlockChecklist,
			Title: "Things to Consider",
			Items: []domain.ChecklistItem{
				{ID: "tc-1", Text: "Review your financial situation"},
				{ID: "tc-2", Text: "Speak to a counsellor or therapist"},
				{ID: "tc-3", Text: "Gather important documents"},
				{ID: "tc-4", Text: "Research your options"},
			},
		},
		{
			ID:    "thinking-prompt",
			Type:  domain.BlockPrompt,
			Title: "Reflection",
			Text:  "Take time to consider what matters most to you and your family. There is no rush to make decisions.",
		},
	},
	domain.StageSeparated: {
		{
			ID:    "separated-checklist",
			Type:  domain.BlockChecklist,
			Title: "Immediate Admin Tasks",
			Items: []domain.ChecklistItem{
				{ID: "sa-1", Text: "Secure important documents"},
				{ID: "sa-2", Text: "Open a separate bank account"},
				{ID: "sa-3", Text: "Update emergency contacts"},
				{ID: "sa-4", Text: "Review shared accounts and subscriptions"},
			},
		},
		{
			ID:    "separated-prompt",
			Type:  domain.BlockPrompt,
			Title: "Daily Check-in",
			Text:  "How are you feeling today? Take a moment to acknowledge your emotions without judgement.",
		},
	},
	domain.StageInCourt: {
		{
			ID:    "court-checklist",
			Type:  domain.BlockChecklist,
			Title: "Court Preparation",
			Items: []domain.ChecklistItem{
				{ID: "cp-1", Text: "Organise all relevant documents"},
				{ID: "cp-2", Text: "Keep records of all communications"},
				{ID: "cp-3", Text: "Note important deadlines"},
				{ID: "cp-4", Text: "Prepare questions for your solicitor"},
			},
		},
		{
			ID:    "court-info",
			Type:  domain.BlockInfo,
			Title: "Stay Organised",
			Text:  "Keep all correspondence, financial documents, and legal papers in one secure location. Create a timeline of important events.",
		},
	},
	domain.StagePostDivorce: {
		{
			ID:    "post-checklist",
			Type:  domain.BlockChecklist,
			Title: "Moving Forward",
			Items: []domain.ChecklistItem{
				{ID: "mf-1", Text: "Update legal documents (will, insurance)"},
				{ID: "mf-2", Text: "Update name if applicable"},
				{ID: "mf-3", Text: "Review beneficiaries on accounts"},
				{ID: "mf-4", Text: "Set new personal goals"},
			},
		},
		{
			ID:    "post-prompt",
			Type:  domain.BlockPrompt,
			Title: "New Chapter",
			Text:  "This is an opportunity for a fresh start. What do you want this next chapter of your life to look like?",
		},
	},
}

// priorityContent maps each selected priority to its dashboard blocks.
var priorityContent = map[domain.Priority][]domain.ContentBlock{
	domain.PriorityChildren: {
		{
			ID:    "children-checklist",
			Type:  domain.BlockChecklist,
			Title: "Children & Parenting",
			Items: []domain.ChecklistItem{
				{ID: "ch-1", Text: "Maintain consistent routines"},
				{ID: "ch-2", Text: "Keep communication with co-parent respectful"},
				{ID: "ch-3", Text: "Consider counselling for children"},
				{ID: "ch-4", Text: "Document parenting arrangements"},
			},
		},
		{
			ID:    "children-info",
			Type:  domain.BlockInfo,
			Title: "Supporting Your Children",
			Text:  "Children need reassurance that both parents love them. Avoid speaking negatively about your co-parent in front of them.",
		},
	},
	domain.PriorityFinances: {
		{
			ID:    "finances-checklist",
			Type:  domain.BlockChecklist,
			Title: "Financial Organisation",
			Items: []domain.ChecklistItem{
				{ID: "fi-1", Text: "List all assets and debts"},
				{ID: "fi-2", Text: "Gather financial statements"},
				{ID: "fi-3", Text: "Create a personal budget"},
				{ID: "fi-4", Text: "Check your credit score"},
			},
		},
		{
			ID:    "finances-placeholder",
			Type:  domain.BlockPlaceholder,
			Title: "Expense Tracker",
			Text:  "Coming in a future update",
		},
	},
	domain.PriorityHousing: {
		{
			ID:    "housing-checklist",
			Type:  domain.BlockChecklist,
			Title: "Housing Considerations",
			Items: []domain.ChecklistItem{
				{ID: "ho-1", Text: "Review your housing options"},
				{ID: "ho-2", Text: "Understand your rights"},
				{ID: "ho-3", Text: "Research rental properties if needed"},
				{ID: "ho-4", Text: "Update your address where necessary"},
			},
		},
	},
	domain.PriorityEmotionalSupport: {
		{
			ID:    "emotional-checklist",
			Type:  domain.BlockChecklist,
			Title: "Self-Care",
			Items: []domain.ChecklistItem{
				{ID: "es-1", Text: "Reach out to your support network"},
				{ID: "es-2", Text: "Consider professional help"},
				{ID: "es-3", Text: "Maintain physical health"},
				{ID: "es-4", Text: "Allow yourself to grieve"},
			},
		},
		{
			ID:    "emotional-prompt",
			Type:  domain.BlockPrompt,
			Title: "Daily Gratitude",
			Text:  "Name three things you are grateful for today, no matter how small.",
		},
	},
	domain.PriorityLegalAdmin: {
		{
			ID:    "legal-checklist",
			Type:  domain.BlockChecklist,
			Title: "Legal & Admin Tasks",
			Items: []domain.ChecklistItem{
				{ID: "la-1", Text: "Research solicitors in your area"},
				{ID: "la-2", Text: "Gather marriage certificate and documents"},
				{ID: "la-3", Text: "Understand the legal timeline"},
				{ID: "la-4", Text: "Keep copies of all correspondence"},
			},
		},
	},
}

// stageWelcome maps each stage to the dashboard welcome message.
var stageWelcome = map[domain.Stage]string{
	domain.StageThinking:    "You're considering your options. Take the time you need.",
	domain.StageSeparated:   "You've taken a big step. Focus on getting organised.",
	domain.StageInCourt:     "The legal process can be challenging. Stay focused and organised.",
	domain.StagePostDivorce: "A new chapter begins. Focus on rebuilding and moving forward.",
}

// blocksFor assembles the content for a stage and priority set: stage blocks
// first, then priority blocks in the order the user ranked them.
func blocksFor(stage *domain.Stage, priorities []domain.Priority) []domain.ContentBlock {
	var blocks []domain.ContentBlock

	if stage != nil {
		blocks = append(blocks, stageContent[*stage]...)
	}
	for _, p := range priorities {
		blocks = append(blocks, priorityContent[p]...)
	}
	return blocks
}
