package domain

// ContentBlockType discriminates how a dashboard block renders.
type ContentBlockType string

const (
	BlockChecklist   ContentBlockType = "checklist"
	BlockPrompt      ContentBlockType = "prompt"
	BlockInfo        ContentBlockType = "info"
	BlockPlaceholder ContentBlockType = "placeholder"
)

// ChecklistItem is one line of a checklist block.
type ChecklistItem struct {
	ID   string
	Text string
}

// ContentBlock is a piece of static dashboard content selected by the
// user's stage and priorities. Checklist blocks carry Items, all other
// types carry Text.
type ContentBlock struct {
	ID    string
	Type  ContentBlockType
	Title string
	Text  string
	Items []ChecklistItem
}
