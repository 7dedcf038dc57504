package quizgen

import (
	"math/rand"
	"time"

	"vocaquiz/internal/domain"
)

// Generator builds quizzes from a word pool. It is stateless apart from its
// random source, which is injected so tests can seed generation.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator using the given random source. A nil source falls
// back to a time-seeded one.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate draws a uniform random permutation of the pool, takes the first
// count words and assigns each a question type by rotating through the four
// strategies (index mod 4). Range validation of count belongs to the caller;
// the generator only verifies the pool is large enough.
func (g *Generator) Generate(pool []domain.Word, count int) (*domain.Quiz, error) {
	if len(pool) < count {
		return nil, domain.NewInsufficientWordsError(len(pool), count)
	}

	selected := shuffled(g.rng, pool)[:count]

	questions := make(map[string]domain.Question, count)
	for i, word := range selected {
		var q domain.Question
		switch domain.TypeRotation[i%len(domain.TypeRotation)] {
		case domain.TypeMultipleChoice:
			q = g.buildMultipleChoice(word, pool)
		case domain.TypeFillBlank:
			q = g.buildFillBlank(word)
		case domain.TypeWordMatch:
			q = g.buildWordMatch(word, pool)
		case domain.TypeCompleteWord:
			q = g.buildCompleteWord(word)
		}
		questions[domain.QuestionID(i+1)] = q
	}

	wordIDs := make([]string, len(pool))
	for i, w := range pool {
		wordIDs[i] = w.ID
	}

	return &domain.Quiz{
		Questions:      questions,
		WordIDs:        wordIDs,
		RequestedCount: count,
	}, nil
}
