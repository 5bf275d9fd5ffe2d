// Package flashcard holds the flashcard page: notes and language input, the
// simulated deck generation and the flip/navigation viewer over the result.
package flashcard

import (
	"context"
	"errors"
	"sync"
	"time"

	"studymate/internal/domain"
	"studymate/internal/generation"
	"studymate/internal/notes"
)

// ErrNoDeck is returned by viewer operations before a deck is generated.
var ErrNoDeck = errors.New("flashcard: no deck generated")

type Config struct {
	Delay         time.Duration
	MinNoteLength int
	Scheduler     generation.Scheduler
}

// Snapshot is a consistent copy of the page state.
type Snapshot struct {
	State    generation.State
	Notes    string
	Language domain.Language
	Feedback notes.Feedback
	Cards    []domain.Flashcard
	Cursor   int
	Revealed bool
	CanStep  bool
	Err      error
}

type Page struct {
	machine *generation.Machine[domain.FlashcardRequest, []domain.Flashcard]
	gate    func(string) bool

	mu       sync.Mutex
	notes    string
	language domain.Language
	viewer   *Viewer
}

func NewPage(gen domain.FlashcardGenerator, cfg Config) *Page {
	p := &Page{
		language: domain.LanguageEnglish,
		gate:     generation.MinLength(cfg.MinNoteLength),
	}
	p.machine = generation.New(generation.Options[domain.FlashcardRequest, []domain.Flashcard]{
		Name:      "flashcards",
		Delay:     cfg.Delay,
		Scheduler: cfg.Scheduler,
		Gate: func(req domain.FlashcardRequest) bool {
			return p.gate(req.Notes)
		},
		Produce: gen.GenerateFlashcards,
		OnReady: func(_ domain.FlashcardRequest, cards []domain.Flashcard) {
			p.mu.Lock()
			p.viewer = NewViewer(cards)
			p.mu.Unlock()
		},
	})
	return p
}

func (p *Page) SetNotes(notes string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notes = notes
}

// SetLanguage applies to the next generation; an existing deck keeps its
// language.
func (p *Page) SetLanguage(lang domain.Language) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.language = lang
}

func (p *Page) request() domain.FlashcardRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.FlashcardRequest{Notes: p.notes, Language: p.language}
}

// Generate submits the current notes and language.
func (p *Page) Generate() error {
	return p.machine.Submit(p.request())
}

func (p *Page) withViewer(f func(v *Viewer) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.viewer == nil {
		return ErrNoDeck
	}
	return f(p.viewer)
}

func (p *Page) Next() error {
	return p.withViewer(func(v *Viewer) error { v.Next(); return nil })
}

func (p *Page) Previous() error {
	return p.withViewer(func(v *Viewer) error { v.Previous(); return nil })
}

func (p *Page) JumpTo(index int) error {
	return p.withViewer(func(v *Viewer) error { return v.JumpTo(index) })
}

func (p *Page) ToggleReveal() error {
	return p.withViewer(func(v *Viewer) error { v.ToggleReveal(); return nil })
}

// NewSet discards the deck and the notes so a new set can be generated.
func (p *Page) NewSet() error {
	if err := p.machine.Reset(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewer = nil
	p.notes = ""
	return nil
}

func (p *Page) Wait(ctx context.Context) error {
	return p.machine.Wait(ctx)
}

// Close abandons a pending generation.
func (p *Page) Close() {
	p.machine.Close()
}

func (p *Page) Snapshot() Snapshot {
	state := p.machine.State()
	err := p.machine.Err()
	req := p.request()
	canGenerate := p.machine.CanSubmit(req)

	p.mu.Lock()
	defer p.mu.Unlock()
	s := Snapshot{
		State:    state,
		Notes:    p.notes,
		Language: p.language,
		Feedback: notes.Describe(p.notes, p.language, canGenerate),
		Err:      err,
	}
	if p.viewer != nil {
		s.Cards = p.viewer.Cards()
		s.Cursor = p.viewer.Cursor()
		s.Revealed = p.viewer.Revealed()
		s.CanStep = p.viewer.CanStep()
	}
	return s
}
