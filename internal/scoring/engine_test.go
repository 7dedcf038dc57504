package scoring

import (
	"testing"

	"vocaquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:             "quiz-1",
		RequestedCount: 4,
		Questions: map[string]domain.Question{
			"q1": {
				WordID:        "w1",
				Word:          "cat",
				Type:          domain.TypeMultipleChoice,
				Options:       []string{"con chó", "con mèo", "con chim", "con cá"},
				CorrectAnswer: "con mèo",
			},
			"q2": {
				WordID:        "w2",
				Word:          "dog",
				Type:          domain.TypeFillBlank,
				CorrectAnswer: "dog",
			},
			"q3": {
				WordID:        "w3",
				Word:          "bird",
				Type:          domain.TypeWordMatch,
				Words:         []string{"bird", "fish", "cat", "dog"},
				Meanings:      []string{"con cá", "con chim", "con chó", "con mèo"},
				CorrectAnswer: "con chim",
			},
			"q4": {
				WordID:        "w4",
				Word:          "fish",
				Type:          domain.TypeCompleteWord,
				HiddenWord:    "F_SH",
				CorrectAnswer: "fish",
			},
		},
	}
}

func fullyCorrectAnswers() []domain.Answer {
	return []domain.Answer{
		{QuestionID: "q1", SelectedOption: "con mèo"},
		{QuestionID: "q2", SelectedOption: "dog"},
		{QuestionID: "q3", SelectedOption: "con chim"},
		{QuestionID: "q4", SelectedOption: "fish"},
	}
}

func TestScoreFullyCorrectRoundTrip(t *testing.T) {
	result := Score(fixtureQuiz(), fullyCorrectAnswers())

	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 100.00, result.Percentage)
	assert.Len(t, result.Correct, 4)
	assert.Empty(t, result.Incorrect)
	assert.Empty(t, result.Skipped)
}

func TestScoreSkippedQuestionsNeverCounted(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "q1", SelectedOption: "con mèo"},
		// q2 and q4 omitted
		{QuestionID: "q3", SelectedOption: "con chó"},
	}

	result := Score(fixtureQuiz(), answers)

	assert.Equal(t, 1, result.Score)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "q2", result.Skipped[0].QuestionID)
	assert.Equal(t, "q4", result.Skipped[1].QuestionID)
	require.Len(t, result.Incorrect, 1)
	assert.Equal(t, "q3", result.Incorrect[0].QuestionID)
	assert.Equal(t, 25.00, result.Percentage)
}

func TestScoreTypedAnswersAreCaseInsensitiveAndTrimmed(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "q2", SelectedOption: "  DoG "},
		{QuestionID: "q4", SelectedOption: "FISH\t"},
	}

	result := Score(fixtureQuiz(), answers)
	assert.Equal(t, 2, result.Score)
}

func TestScoreMultipleChoiceRequiresExactMatch(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "q1", SelectedOption: "CON MÈO"},
	}

	result := Score(fixtureQuiz(), answers)
	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Incorrect, 1)
	assert.Equal(t, "CON MÈO", result.Incorrect[0].SelectedOption)
}

func TestScoreWordMatchExtractsTargetMeaningFromPairMap(t *testing.T) {
	// The client may submit the whole match map; only the target word's
	// chosen meaning decides correctness.
	answers := []domain.Answer{
		{QuestionID: "q3", SelectedOption: `{"bird":"con chim","fish":"con mèo","cat":"con cá","dog":"con chó"}`},
	}

	result := Score(fixtureQuiz(), answers)
	assert.Equal(t, 1, result.Score)

	wrong := []domain.Answer{
		{QuestionID: "q3", SelectedOption: `{"bird":"con cá","fish":"con chim"}`},
	}
	assert.Equal(t, 0, Score(fixtureQuiz(), wrong).Score)
}

func TestScorePercentageRounding(t *testing.T) {
	quiz := &domain.Quiz{
		Questions: map[string]domain.Question{
			"q1": {WordID: "w1", Word: "a", Type: domain.TypeFillBlank, CorrectAnswer: "a"},
			"q2": {WordID: "w2", Word: "b", Type: domain.TypeFillBlank, CorrectAnswer: "b"},
			"q3": {WordID: "w3", Word: "c", Type: domain.TypeFillBlank, CorrectAnswer: "c"},
		},
	}
	answers := []domain.Answer{{QuestionID: "q1", SelectedOption: "a"}}

	result := Score(quiz, answers)
	// 1/3 of 100, rounded to 2 decimals
	assert.Equal(t, 33.33, result.Percentage)
}

func TestScoreIsPure(t *testing.T) {
	quiz := fixtureQuiz()
	answers := fullyCorrectAnswers()

	first := Score(quiz, answers)
	second := Score(quiz, answers)
	assert.Equal(t, first, second)
}

func TestResultCorrectWordIDs(t *testing.T) {
	result := Score(fixtureQuiz(), []domain.Answer{
		{QuestionID: "q1", SelectedOption: "con mèo"},
		{QuestionID: "q2", SelectedOption: "dog"},
	})

	assert.Equal(t, []string{"w1", "w2"}, result.CorrectWordIDs())
}
