package domain

// Mood is the categorical mood attached to a journal entry.
type Mood string

const (
	MoodCalm        Mood = "calm"
	MoodAnxious     Mood = "anxious"
	MoodAngry       Mood = "angry"
	MoodSad         Mood = "sad"
	MoodOverwhelmed Mood = "overwhelmed"
	MoodHopeful     Mood = "hopeful"
	MoodFrustrated  Mood = "frustrated"
	MoodRelieved    Mood = "relieved"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodCalm, MoodAnxious, MoodAngry, MoodSad,
		MoodOverwhelmed, MoodHopeful, MoodFrustrated, MoodRelieved:
		return true
	}
	return false
}

// JournalCategory is the topical category of a journal entry.
type JournalCategory string

const (
	JournalCategoryIncident      JournalCategory = "incident"
	JournalCategoryChildren      JournalCategory = "children"
	JournalCategoryLegal         JournalCategory = "legal"
	JournalCategoryFinancial     JournalCategory = "financial"
	JournalCategoryCommunication JournalCategory = "communication"
	JournalCategoryGeneral       JournalCategory = "general"
)

func (c JournalCategory) String() string { return string(c) }

func (c JournalCategory) IsValid() bool {
	switch c {
	case JournalCategoryIncident, JournalCategoryChildren, JournalCategoryLegal,
		JournalCategoryFinancial, JournalCategoryCommunication, JournalCategoryGeneral:
		return true
	}
	return false
}

// DocumentCategory classifies a vault document.
type DocumentCategory string

const (
	DocumentCategoryLegal          DocumentCategory = "legal"
	DocumentCategoryFinancial      DocumentCategory = "financial"
	DocumentCategoryPersonal       DocumentCategory = "personal"
	DocumentCategoryCorrespondence DocumentCategory = "correspondence"
	DocumentCategoryCourt          DocumentCategory = "court"
	DocumentCategoryOther          DocumentCategory = "other"
)

func (c DocumentCategory) String() string { return string(c) }

func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryLegal, DocumentCategoryFinancial, DocumentCategoryPersonal,
		DocumentCategoryCorrespondence, DocumentCategoryCourt, DocumentCategoryOther:
		return true
	}
	return false
}

// FinancialKind is one of the four kinds of financial item.
type FinancialKind string

const (
	FinancialKindAsset   FinancialKind = "asset"
	FinancialKindDebt    FinancialKind = "debt"
	FinancialKindIncome  FinancialKind = "income"
	FinancialKindExpense FinancialKind = "expense"
)

func (k FinancialKind) String() string { return string(k) }

func (k FinancialKind) IsValid() bool {
	switch k {
	case FinancialKindAsset, FinancialKindDebt, FinancialKindIncome, FinancialKindExpense:
		return true
	}
	return false
}

// HasFrequency reports whether items of this kind carry a recurrence frequency.
// Only income and expense recur; assets and debts are point-in-time balances.
func (k FinancialKind) HasFrequency() bool {
	return k == FinancialKindIncome || k == FinancialKindExpense
}

// Frequency is the recurrence of an income or expense item.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one_time"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOneTime, FrequencyMonthly, FrequencyAnnually:
		return true
	}
	return false
}

// TimelineCategory classifies a timeline event.
type TimelineCategory string

const (
	TimelineCategoryLegal     TimelineCategory = "legal"
	TimelineCategoryFinancial TimelineCategory = "financial"
	TimelineCategoryPersonal  TimelineCategory = "personal"
	TimelineCategoryEmotional TimelineCategory = "emotional"
	TimelineCategoryChildren  TimelineCategory = "children"
)

func (c TimelineCategory) String() string { return string(c) }

func (c TimelineCategory) IsValid() bool {
	switch c {
	case TimelineCategoryLegal, TimelineCategoryFinancial, TimelineCategoryPersonal,
		TimelineCategoryEmotional, TimelineCategoryChildren:
		return true
	}
	return false
}

// RelationshipType describes the legal form of the relationship.
type RelationshipType string

const (
	RelationshipMarried               RelationshipType = "married"
	RelationshipInternationalMarriage RelationshipType = "international_marriage"
	RelationshipCommonLaw             RelationshipType = "common_law"
	RelationshipDivorced              RelationshipType = "divorced"
)

func (r RelationshipType) String() string { return string(r) }

func (r RelationshipType) IsValid() bool {
	switch r {
	case RelationshipMarried, RelationshipInternationalMarriage,
		RelationshipCommonLaw, RelationshipDivorced:
		return true
	}
	return false
}

// Stage is where the user is in the divorce process.
type Stage string

const (
	StageThinking    Stage = "thinking"
	StageSeparated   Stage = "separated"
	StageInCourt     Stage = "in_court"
	StagePostDivorce Stage = "post_divorce"
)

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	switch s {
	case StageThinking, StageSeparated, StageInCourt, StagePostDivorce:
		return true
	}
	return false
}

// Priority is a focus area the user selected during onboarding.
type Priority string

const (
	PriorityChildren         Priority = "children"
	PriorityFinances         Priority = "finances"
	PriorityHousing          Priority = "housing"
	PriorityEmotionalSupport Priority = "emotional_support"
	PriorityLegalAdmin       Priority = "legal_admin"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityChildren, PriorityFinances, PriorityHousing,
		PriorityEmotionalSupport, PriorityLegalAdmin:
		return true
	}
	return false
}
