package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocaquiz/internal/domain"
)

// StringSlice is a custom type for storing string arrays as JSON in a CLOB
// column.
type StringSlice []string

// Value implements the driver.Valuer interface.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// QuestionMap stores the q1..qN question map as JSON in a CLOB column. The
// map shape matches what clients receive, so the column doubles as the
// quiz's wire representation.
type QuestionMap map[string]domain.Question

// Value implements the driver.Valuer interface.
func (m QuestionMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (m *QuestionMap) Scan(value interface{}) error {
	if value == nil {
		*m = QuestionMap{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*m = QuestionMap{}
		return nil
	}

	return json.Unmarshal(bytesToParse, m)
}

// Quiz is the row model for the quizzes table. Questions and word ids are
// JSON CLOBs.
type Quiz struct {
	ID             string         `db:"id"`
	Questions      QuestionMap    `db:"questions"`
	WordIDs        StringSlice    `db:"word_ids"`
	RequestedCount int            `db:"requested_count"`
	Summary        sql.NullString `db:"summary"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Submission is the row model for the quiz_submissions table.
type Submission struct {
	ID             string    `db:"id"`
	QuizID         string    `db:"quiz_id"`
	UserID         string    `db:"user_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	Percentage     float64   `db:"percentage"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

func (Submission) TableName() string {
	return "quiz_submissions"
}
