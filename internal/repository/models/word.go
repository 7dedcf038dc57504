package models

import (
	"database/sql"
	"time"
)

// Category is the row model for the categories table.
type Category struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Word is the row model for the words table. Phonetic, part of speech and
// example are optional in the pool.
type Word struct {
	ID           string         `db:"id"`
	CategoryID   string         `db:"category_id"`
	Text         string         `db:"text"`
	Meaning      string         `db:"meaning"`
	Phonetic     sql.NullString `db:"phonetic"`
	PartOfSpeech sql.NullString `db:"part_of_speech"`
	Example      sql.NullString `db:"example"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// LearningRecord is the row model for the learning_records table. One row per
// (user, category, word); re-learning a word does not add rows.
type LearningRecord struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	CategoryID string    `db:"category_id"`
	WordID     string    `db:"word_id"`
	LearnedAt  time.Time `db:"learned_at"`
}

func (LearningRecord) TableName() string {
	return "learning_records"
}
