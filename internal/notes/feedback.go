// Package notes describes free-text study notes the way the notes boxes of
// the generating pages present them.
package notes

import (
	"unicode/utf8"

	"studymate/internal/domain"
)

// GoodLength is the note length above which notes are considered detailed.
const GoodLength = 100

// Feedback is the hint shown under a notes box.
type Feedback struct {
	Characters  int    `json:"characters"`
	Hint        string `json:"hint"`
	GoodLength  bool   `json:"good_length"`
	CanGenerate bool   `json:"can_generate"`
}

var hints = map[domain.Language][2]string{
	domain.LanguageEnglish: {"Good length", "Add more details"},
	domain.LanguageHindi:   {"अच्छी लंबाई", "अधिक विवरण जोड़ें"},
}

// Describe measures text in runes and picks the hint in lang. Unknown
// languages fall back to English.
func Describe(text string, lang domain.Language, canGenerate bool) Feedback {
	n := utf8.RuneCountInString(text)
	h, ok := hints[lang]
	if !ok {
		h = hints[domain.LanguageEnglish]
	}
	fb := Feedback{Characters: n, GoodLength: n > GoodLength, CanGenerate: canGenerate}
	if fb.GoodLength {
		fb.Hint = h[0]
	} else {
		fb.Hint = h[1]
	}
	return fb
}
