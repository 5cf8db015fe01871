// Package parse holds the free-text answer parsing rules shared by the
// chat and voice channels. Both front-ends feed utterances through the
// same tables so the numeric, yes/no and option matching behavior exists
// in exactly one place.
package parse

import (
	"strconv"
	"strings"
	"unicode"

	"aimaturity/internal/model"
)

// DefaultScale is returned for utterances no rule recognizes.
const DefaultScale = 5

// scalePhrases maps verbal quality descriptions to 0-10 values. Longer
// phrases are checked before their substrings ("not great" before "great").
var scalePhrases = []struct {
	phrase string
	value  int
}{
	{"not great", 3},
	{"not good", 3},
	{"very poor", 2},
	{"below average", 4},
	{"above average", 6},
	{"very good", 8},
	{"pretty good", 7},
	{"perfect", 10},
	{"excellent", 9},
	{"outstanding", 9},
	{"amazing", 9},
	{"great", 8},
	{"strong", 8},
	{"good", 7},
	{"solid", 7},
	{"decent", 6},
	{"average", 5},
	{"moderate", 5},
	{"okay", 5},
	{"fair", 5},
	{"mediocre", 4},
	{"weak", 3},
	{"poor", 3},
	{"bad", 2},
	{"terrible", 1},
	{"awful", 1},
	{"nonexistent", 0},
	{"nothing", 0},
	{"none", 0},
	{"zero", 0},
}

// numberWords covers spelled-out numerals
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Scale converts an utterance into a 0-10 value. Direct integers win,
// clamped into range; verbal descriptions come from the phrase table;
// anything unrecognized falls back to DefaultScale.
func Scale(input string) int {
	lower := strings.ToLower(strings.TrimSpace(input))

	if n, ok := firstInt(lower); ok {
		return clampScale(n)
	}
	for _, p := range scalePhrases {
		if strings.Contains(lower, p.phrase) {
			return p.value
		}
	}
	for word, n := range numberWords {
		if containsWord(lower, word) {
			return n
		}
	}
	return DefaultScale
}

// BoolResult is the outcome of yes/no parsing. Unclear utterances are
// surfaced explicitly so the caller can re-prompt instead of guessing.
type BoolResult int

const (
	BoolUnclear BoolResult = iota
	BoolYes
	BoolNo
)

var yesWords = []string{
	"yes", "yeah", "yep", "yup", "absolutely", "definitely",
	"certainly", "of course", "sure", "correct", "we do", "we have",
}

var noWords = []string{
	"not really", "no", "nope", "nah", "never", "negative",
	"we don't", "we do not", "not yet", "unfortunately not",
}

// YesNo classifies an utterance. Negative phrases are checked first so
// "not really, no plans yet" does not match a bare "yes" substring.
func YesNo(input string) BoolResult {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, w := range noWords {
		if strings.Contains(lower, w) {
			return BoolNo
		}
	}
	for _, w := range yesWords {
		if strings.Contains(lower, w) {
			return BoolYes
		}
	}
	return BoolUnclear
}

// Option matches an utterance against a question's option list, case
// insensitively, by substring in either direction. Returns the canonical
// option string, or "" when nothing matches (which scores as the lowest
// option downstream).
func Option(input string, options []string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return ""
	}
	for _, opt := range options {
		optLower := strings.ToLower(opt)
		if strings.Contains(lower, optLower) || strings.Contains(optLower, lower) {
			return opt
		}
	}
	return ""
}

// Answer parses an utterance according to the question's type. The second
// return is false only for yes/no questions with an unclear utterance; the
// caller should re-prompt in that case.
func Answer(input string, q model.Question) (model.Answer, bool) {
	switch q.Type {
	case model.QuestionTypeScale:
		return model.ScaleAnswer(q.ID, Scale(input)), true
	case model.QuestionTypeYesNo:
		switch YesNo(input) {
		case BoolYes:
			return model.BoolAnswer(q.ID, true), true
		case BoolNo:
			return model.BoolAnswer(q.ID, false), true
		default:
			return model.Answer{}, false
		}
	case model.QuestionTypeMultipleChoice:
		return model.ChoiceAnswer(q.ID, Option(input, q.Options)), true
	default:
		return model.TextAnswer(q.ID, strings.TrimSpace(input)), true
	}
}

// firstInt extracts the first integer token from the input
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

func clampScale(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// containsWord reports whether w appears in s as a whole word
func containsWord(s, w string) bool {
	idx := strings.Index(s, w)
	for idx >= 0 {
		before := idx == 0 || !unicode.IsLetter(rune(s[idx-1]))
		afterIdx := idx + len(w)
		after := afterIdx >= len(s) || !unicode.IsLetter(rune(s[afterIdx]))
		if before && after {
			return true
		}
		next := strings.Index(s[idx+1:], w)
		if next < 0 {
			break
		}
		idx = idx + 1 + next
	}
	return false
}
