package domain

import "context"

// WordRepository is the word pool source. The engine only reads words;
// import/CRUD is the admin surface's concern.
type WordRepository interface {
	// GetAllWords returns every word in the pool.
	GetAllWords(ctx context.Context) ([]Word, error)

	// GetWordsByCategory returns the words belonging to one category.
	GetWordsByCategory(ctx context.Context, categoryID string) ([]Word, error)

	// GetWordsByIDs resolves a set of word ids.
	GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error)
}

// LearningRepository is the learning store boundary: which words a user has
// remembered per category, and marking newly learned words.
type LearningRepository interface {
	// GetRememberedWords returns the words a user has learned in a category.
	GetRememberedWords(ctx context.Context, userID, categoryID string) ([]Word, error)

	// GetAllRememberedWords returns every word the user has learned across
	// categories, deduplicated.
	GetAllRememberedWords(ctx context.Context, userID string) ([]Word, error)

	// MarkLearned marks words as learned for a user/category. Marking a word
	// that is already learned is a no-op, not an error.
	MarkLearned(ctx context.Context, userID, categoryID string, wordIDs []string) error
}

// QuizRepository persists generated quizzes and their submission log.
type QuizRepository interface {
	// SaveQuiz persists a new quiz and assigns its id.
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// GetQuizByID retrieves a quiz by its id, or nil if absent.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// AppendSubmission appends one scored attempt to a quiz's log.
	AppendSubmission(ctx context.Context, submission *Submission) error

	// GetSubmissionsByUser returns a user's submissions, newest first.
	GetSubmissionsByUser(ctx context.Context, userID string) ([]Submission, error)
}

// StreakRepository persists per-user streak records.
type StreakRepository interface {
	// GetByUserID returns the user's streak record, or nil if absent.
	GetByUserID(ctx context.Context, userID string) (*StreakRecord, error)

	// GetByUserIDForUpdate reads the record with a row lock. Must be called
	// inside a transaction; the lock is what makes the read-transition-write
	// of the streak state machine atomic per user.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*StreakRecord, error)

	// Insert persists a new streak record and assigns its id.
	Insert(ctx context.Context, record *StreakRecord) error

	// Update overwrites count, start and end date of an existing record.
	Update(ctx context.Context, record *StreakRecord) error
}

// TransactionManager runs a function within a storage transaction. The
// transaction is propagated through the context to the repositories.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
