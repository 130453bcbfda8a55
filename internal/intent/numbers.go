package intent

import (
	"strings"
)

// Word-to-integer conversion for spoken question counts. Covers
// one..ninety including hyphenated and space-separated compounds like
// "twenty-five" and "forty two". Larger values are out of range for the
// session anyway (num_questions caps at 50).

var onesWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// numberWordExpr matches a single word-number, compound or simple.
// Kept as a string so pattern tables can embed it.
const numberWordExpr = `(?:twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)(?:[-\s](?:one|two|three|four|five|six|seven|eight|nine))?` +
	`|(?:one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen)`

// wordToNumber converts a word-number like "seven", "twenty-five" or
// "forty two" to its integer value. Returns false for anything else.
func wordToNumber(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")

	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		if n, ok := onesWords[parts[0]]; ok {
			return n, true
		}
		if n, ok := tensWords[parts[0]]; ok {
			return n, true
		}
	case 2:
		tens, ok := tensWords[parts[0]]
		if !ok {
			return 0, false
		}
		ones, ok := onesWords[parts[1]]
		if !ok || ones >= 10 {
			return 0, false
		}
		return tens + ones, true
	}
	return 0, false
}
