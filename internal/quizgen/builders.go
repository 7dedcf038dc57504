package quizgen

import (
	"fmt"
	"regexp"
	"strings"

	"vocaquiz/internal/domain"
)

const (
	blankPlaceholder  = "______"
	hiddenGlyph       = '_'
	maxWrongAnswers   = 3
	maxHiddenLetters  = 3
	fillBlankHint     = "Type your answer here..."
	completeWordHint  = "Type the complete word..."
	maxWordMatchPairs = 4
)

// buildMultipleChoice asks for the meaning of the target word among up to
// three wrong meanings drawn from the pool. When the pool holds fewer than
// three distinct wrong meanings the options list is simply shorter: options
// are never padded and never contain duplicates, and the correct answer is
// always present.
func (g *Generator) buildMultipleChoice(target domain.Word, pool []domain.Word) domain.Question {
	seen := map[string]struct{}{target.Meaning: {}}
	var wrongs []string
	for _, w := range pool {
		if _, dup := seen[w.Meaning]; dup {
			continue
		}
		seen[w.Meaning] = struct{}{}
		wrongs = append(wrongs, w.Meaning)
	}
	wrongs = shuffled(g.rng, wrongs)
	if len(wrongs) > maxWrongAnswers {
		wrongs = wrongs[:maxWrongAnswers]
	}

	options := shuffled(g.rng, append([]string{target.Meaning}, wrongs...))

	q := newQuestion(target, domain.TypeMultipleChoice)
	q.Prompt = fmt.Sprintf("What does %q mean?", target.Text)
	q.Options = options
	q.CorrectAnswer = target.Meaning
	return q
}

// buildFillBlank blanks out every case-insensitive occurrence of the word
// in its example sentence. The replacement is deliberately global, matching
// how clients already render these prompts.
func (g *Generator) buildFillBlank(target domain.Word) domain.Question {
	example := target.Example
	if example == "" {
		example = fmt.Sprintf("This is a %s.", target.Text)
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(target.Text))
	blanked := re.ReplaceAllString(example, blankPlaceholder)

	q := newQuestion(target, domain.TypeFillBlank)
	q.Prompt = fmt.Sprintf("Fill in the blank: %s", blanked)
	q.CorrectAnswer = strings.ToLower(target.Text)
	q.Placeholder = fillBlankHint
	return q
}

// buildWordMatch pairs the target with up to three other pool words and
// shuffles the word and meaning columns independently, so the display order
// carries no information about the pairing. Scoring always compares against
// the target word's true meaning.
func (g *Generator) buildWordMatch(target domain.Word, pool []domain.Word) domain.Question {
	var others []domain.Word
	seenMeanings := map[string]struct{}{target.Meaning: {}}
	seenWords := map[string]struct{}{target.Text: {}}
	for _, w := range pool {
		if w.ID == target.ID {
			continue
		}
		if _, dup := seenMeanings[w.Meaning]; dup {
			continue
		}
		if _, dup := seenWords[w.Text]; dup {
			continue
		}
		seenMeanings[w.Meaning] = struct{}{}
		seenWords[w.Text] = struct{}{}
		others = append(others, w)
	}
	others = shuffled(g.rng, others)
	if len(others) > maxWordMatchPairs-1 {
		others = others[:maxWordMatchPairs-1]
	}

	pairs := append([]domain.Word{target}, others...)
	words := make([]string, len(pairs))
	meanings := make([]string, len(pairs))
	for i, w := range pairs {
		words[i] = w.Text
		meanings[i] = w.Meaning
	}

	q := newQuestion(target, domain.TypeWordMatch)
	q.Prompt = fmt.Sprintf("Match the word %q with its correct meaning:", target.Text)
	q.Words = shuffled(g.rng, words)
	q.Meanings = shuffled(g.rng, meanings)
	q.CorrectAnswer = target.Meaning
	return q
}

// buildCompleteWord hides min(len/2, 3) interior letters of the word. The
// first letter is never hidden and no position is hidden twice.
func (g *Generator) buildCompleteWord(target domain.Word) domain.Question {
	letters := []rune(strings.ToLower(target.Text))
	hideCount := len(letters) / 2
	if hideCount > maxHiddenLetters {
		hideCount = maxHiddenLetters
	}

	hidden := make(map[int]struct{}, hideCount)
	for len(hidden) < hideCount {
		// positions in [1, len-1]: the first letter stays visible
		pos := g.rng.Intn(len(letters)-1) + 1
		hidden[pos] = struct{}{}
	}
	for pos := range hidden {
		letters[pos] = hiddenGlyph
	}
	hiddenWord := strings.ToUpper(string(letters))

	q := newQuestion(target, domain.TypeCompleteWord)
	q.Prompt = fmt.Sprintf("Complete the word: %s", hiddenWord)
	q.HiddenWord = hiddenWord
	q.Hint = fmt.Sprintf("Meaning: %s", target.Meaning)
	q.CorrectAnswer = strings.ToLower(target.Text)
	q.Placeholder = completeWordHint
	return q
}

func newQuestion(target domain.Word, qType domain.QuestionType) domain.Question {
	return domain.Question{
		WordID:       target.ID,
		Word:         target.Text,
		Phonetic:     target.Phonetic,
		PartOfSpeech: target.PartOfSpeech,
		Example:      target.Example,
		Type:         qType,
	}
}
