package flashcard

import "studymate/internal/domain"

// Viewer walks a fixed deck with a cursor and a reveal flag. It is not safe
// for concurrent use; Page serialises access.
type Viewer struct {
	cards    []domain.Flashcard
	cursor   int
	revealed bool
}

func NewViewer(cards []domain.Flashcard) *Viewer {
	return &Viewer{cards: append([]domain.Flashcard(nil), cards...)}
}

func (v *Viewer) Len() int       { return len(v.cards) }
func (v *Viewer) Cursor() int    { return v.cursor }
func (v *Viewer) Revealed() bool { return v.revealed }

// Current returns the card under the cursor; ok is false for an empty deck.
func (v *Viewer) Current() (domain.Flashcard, bool) {
	if len(v.cards) == 0 {
		return domain.Flashcard{}, false
	}
	return v.cards[v.cursor], true
}

func (v *Viewer) Cards() []domain.Flashcard {
	return append([]domain.Flashcard(nil), v.cards...)
}

// CanStep reports whether Next and Previous move the cursor.
func (v *Viewer) CanStep() bool {
	return len(v.cards) > 1
}

// Next advances with wraparound and hides the answer. Decks of one card or
// fewer are left untouched.
func (v *Viewer) Next() {
	if !v.CanStep() {
		return
	}
	v.cursor = (v.cursor + 1) % len(v.cards)
	v.revealed = false
}

// Previous is the inverse of Next.
func (v *Viewer) Previous() {
	if !v.CanStep() {
		return
	}
	v.cursor = (v.cursor - 1 + len(v.cards)) % len(v.cards)
	v.revealed = false
}

// JumpTo moves the cursor directly and hides the answer.
func (v *Viewer) JumpTo(index int) error {
	if index < 0 || index >= len(v.cards) {
		return domain.NewIndexOutOfRangeError(index, len(v.cards))
	}
	v.cursor = index
	v.revealed = false
	return nil
}

func (v *Viewer) ToggleReveal() {
	v.revealed = !v.revealed
}
