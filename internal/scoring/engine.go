// Package scoring computes quiz results. Scoring is pure: the same quiz and
// answer set always produce the same Result, and nothing is persisted here.
package scoring

import (
	"encoding/json"
	"math"
	"strings"

	"vocaquiz/internal/domain"
)

// Score compares a caller-submitted answer set against a quiz's questions
// and aggregates the result. Questions are visited in insertion order
// (q1..qN); a question with no matching answer is counted as skipped.
func Score(quiz *domain.Quiz, answers []domain.Answer) *domain.Result {
	byQuestion := make(map[string]domain.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	result := &domain.Result{
		TotalQuestions: len(quiz.Questions),
		Correct:        []domain.ResultEntry{},
		Incorrect:      []domain.ResultEntry{},
		Skipped:        []domain.ResultEntry{},
	}

	for i := 1; i <= len(quiz.Questions); i++ {
		qid := domain.QuestionID(i)
		question, ok := quiz.Questions[qid]
		if !ok {
			continue
		}

		answer, answered := byQuestion[qid]
		if !answered {
			result.Skipped = append(result.Skipped, entryFor(qid, question, nil))
			continue
		}

		if isCorrect(question, answer.SelectedOption) {
			result.Score++
			result.Correct = append(result.Correct, entryFor(qid, question, &answer))
		} else {
			result.Incorrect = append(result.Incorrect, entryFor(qid, question, &answer))
		}
	}

	if result.TotalQuestions > 0 {
		pct := float64(result.Score) / float64(result.TotalQuestions) * 100
		result.Percentage = math.Round(pct*100) / 100
	}
	return result
}

// isCorrect applies the per-type comparison rule: exact equality for
// multiple choice and word match, case-insensitive trimmed equality for the
// typed answers.
func isCorrect(question domain.Question, selected string) bool {
	switch question.Type {
	case domain.TypeFillBlank, domain.TypeCompleteWord:
		return normalize(selected) == normalize(question.CorrectAnswer)
	case domain.TypeWordMatch:
		return matchSelection(question, selected) == question.CorrectAnswer
	default:
		return selected == question.CorrectAnswer
	}
}

// matchSelection reduces a word-match answer to the meaning chosen for the
// target word. Clients may send either the chosen meaning directly or the
// full serialized word-to-meaning pair map; in the latter case the target
// word's entry is what gets compared.
func matchSelection(question domain.Question, selected string) string {
	trimmed := strings.TrimSpace(selected)
	if !strings.HasPrefix(trimmed, "{") {
		return selected
	}
	var pairs map[string]string
	if err := json.Unmarshal([]byte(trimmed), &pairs); err != nil {
		return selected
	}
	if meaning, ok := pairs[question.Word]; ok {
		return meaning
	}
	return selected
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func entryFor(qid string, question domain.Question, answer *domain.Answer) domain.ResultEntry {
	entry := domain.ResultEntry{
		QuestionID:    qid,
		WordID:        question.WordID,
		Word:          question.Word,
		Type:          question.Type,
		CorrectAnswer: question.CorrectAnswer,
	}
	if answer != nil {
		entry.SelectedOption = answer.SelectedOption
	}
	return entry
}
