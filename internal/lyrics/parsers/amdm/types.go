package amdm

// SectionType represents different song sections
type SectionType string

const (
	SectionVerse  SectionType = "Куплет"
	SectionChorus SectionType = "Припев"
	SectionBridge SectionType = "Переход"
	SectionIntro  SectionType = "Вступление"
	SectionSolo   SectionType = "Проигрыш"
	SectionOutro  SectionType = "Кода"
)

// ProcessingConfig holds configuration for text processing
type ProcessingConfig struct {
	AllowedSections  []SectionType
	UnwantedSections []SectionType
	MaxLineBreaks    int
}

// DefaultConfig keeps sung sections and drops instrumental ones
func DefaultConfig() *ProcessingConfig {
	return &ProcessingConfig{
		AllowedSections:  []SectionType{SectionVerse, SectionChorus, SectionBridge},
		UnwantedSections: []SectionType{SectionIntro, SectionSolo, SectionOutro},
		MaxLineBreaks:    3,
	}
}

func (s SectionType) marker() string {
	return "[" + string(s) + "]:"
}
