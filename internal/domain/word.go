package domain

import "time"

// Word is a vocabulary item from the word pool. The quiz engine only ever
// reads words; creation and editing belong to the admin surface, which is
// outside this service's core.
type Word struct {
	ID           string
	CategoryID   string
	Text         string
	Meaning      string
	Phonetic     string
	PartOfSpeech string
	Example      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups words for learning and quiz selection.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the word.
func (w *Word) Validate() error {
	if w.Text == "" {
		return NewValidationFailure("text", "is required")
	}
	if w.Meaning == "" {
		return NewValidationFailure("meaning", "is required")
	}
	return nil
}
