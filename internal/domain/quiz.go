package domain

import (
	"fmt"
	"time"
)

// QuestionType identifies one of the four question generation strategies.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeWordMatch      QuestionType = "word_match"
	TypeCompleteWord   QuestionType = "complete_word"
)

// TypeRotation is the fixed order in which question types are assigned to
// the selected words (index mod 4). Keeping the rotation deterministic makes
// type diversity proportional to the question count instead of depending on
// randomness.
var TypeRotation = [4]QuestionType{
	TypeMultipleChoice,
	TypeFillBlank,
	TypeWordMatch,
	TypeCompleteWord,
}

// Question is one generated quiz question. It is a tagged union: Type
// selects which of the optional fields are populated.
type Question struct {
	WordID        string       `json:"wordId"`
	Word          string       `json:"word"`
	Phonetic      string       `json:"phonetic,omitempty"`
	PartOfSpeech  string       `json:"partOfSpeech,omitempty"`
	Example       string       `json:"example,omitempty"`
	Prompt        string       `json:"question"`
	Type          QuestionType `json:"type"`
	CorrectAnswer string       `json:"correctAnswer"`

	// multiple_choice
	Options []string `json:"options,omitempty"`

	// word_match: display order of words and meanings is shuffled
	// independently, so visual order does not reveal the pairing.
	Words    []string `json:"words,omitempty"`
	Meanings []string `json:"meanings,omitempty"`

	// complete_word
	HiddenWord string `json:"hiddenWord,omitempty"`
	Hint       string `json:"hint,omitempty"`

	// fill_blank / complete_word input hint for the client
	Placeholder string `json:"placeholder,omitempty"`
}

// Quiz is a generated set of questions keyed q1..qN. It is created once by
// the generator and never mutated afterwards; submissions are appended as
// separate Submission records.
type Quiz struct {
	ID             string
	Questions      map[string]Question
	WordIDs        []string
	RequestedCount int
	Summary        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QuestionID returns the canonical id of the i-th question (1-based).
func QuestionID(i int) string {
	return fmt.Sprintf("q%d", i)
}

// QuestionAt returns the i-th question (1-based) in insertion order.
func (q *Quiz) QuestionAt(i int) (Question, bool) {
	question, ok := q.Questions[QuestionID(i)]
	return question, ok
}

// Validate validates the quiz.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return NewValidationFailure("questions", "at least one question is required")
	}
	if q.RequestedCount != len(q.Questions) {
		return NewValidationFailure("numOfQuestion", "does not match generated question count")
	}
	return nil
}

// Answer is a caller-supplied answer to one question. SelectedOption
// semantics depend on the question type; for word_match it may be either the
// chosen meaning or a serialized word-to-meaning pair map, which the scoring
// engine reduces itself.
type Answer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// ResultEntry describes the outcome of one question within a Result.
type ResultEntry struct {
	QuestionID     string       `json:"questionId"`
	WordID         string       `json:"wordId"`
	Word           string       `json:"word"`
	Type           QuestionType `json:"type"`
	SelectedOption string       `json:"selectedOption,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer"`
}

// Result is the aggregate outcome of scoring one answer set against a quiz.
type Result struct {
	Score          int           `json:"score"`
	TotalQuestions int           `json:"totalQuestions"`
	Percentage     float64       `json:"percentage"`
	Correct        []ResultEntry `json:"correctAnswers"`
	Incorrect      []ResultEntry `json:"incorrectAnswers"`
	Skipped        []ResultEntry `json:"skippedAnswers"`
}

// CorrectWordIDs returns the word ids answered correctly, for the learning
// record update after a submission.
func (r *Result) CorrectWordIDs() []string {
	ids := make([]string, 0, len(r.Correct))
	for _, entry := range r.Correct {
		ids = append(ids, entry.WordID)
	}
	return ids
}

// Submission is one scored attempt at a quiz, appended to the quiz's
// submission log.
type Submission struct {
	ID             string
	QuizID         string
	UserID         string
	Score          int
	TotalQuestions int
	Percentage     float64
	SubmittedAt    time.Time
}
