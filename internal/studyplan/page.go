// Package studyplan holds the study-flow page: notes in, a simulated
// five-step plan out, and one-way completion tracking of its steps.
package studyplan

import (
	"context"
	"errors"
	"sync"
	"time"

	"studymate/internal/domain"
	"studymate/internal/generation"
	"studymate/internal/notes"
)

var ErrNoPlan = errors.New("studyplan: no plan generated")

type Config struct {
	Delay         time.Duration
	MinNoteLength int
	Scheduler     generation.Scheduler
}

type Snapshot struct {
	State       generation.State
	Notes       string
	Feedback    notes.Feedback
	Steps       []domain.StudyStep
	Completed   int
	AllComplete bool
	Celebrated  bool
	Err         error
}

type Page struct {
	machine *generation.Machine[string, []domain.StudyStep]

	mu    sync.Mutex
	notes string
	plan  *Plan
}

func NewPage(gen domain.StudyPlanGenerator, cfg Config) *Page {
	p := &Page{}
	p.machine = generation.New(generation.Options[string, []domain.StudyStep]{
		Name:      "study-plan",
		Delay:     cfg.Delay,
		Scheduler: cfg.Scheduler,
		Gate:      generation.MinLength(cfg.MinNoteLength),
		Produce:   gen.GenerateStudyPlan,
		OnReady: func(_ string, steps []domain.StudyStep) {
			p.mu.Lock()
			p.plan = NewPlan(steps)
			p.mu.Unlock()
		},
	})
	return p
}

func (p *Page) SetNotes(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notes = text
}

func (p *Page) Generate() error {
	p.mu.Lock()
	text := p.notes
	p.mu.Unlock()
	return p.machine.Submit(text)
}

// MarkComplete completes one step; see Plan.MarkComplete.
func (p *Page) MarkComplete(index int) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.plan == nil {
		return false, ErrNoPlan
	}
	return p.plan.MarkComplete(index)
}

// Reset drops the plan and the notes.
func (p *Page) Reset() error {
	if err := p.machine.Reset(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plan = nil
	p.notes = ""
	return nil
}

func (p *Page) Wait(ctx context.Context) error {
	return p.machine.Wait(ctx)
}

func (p *Page) Close() {
	p.machine.Close()
}

func (p *Page) Snapshot() Snapshot {
	state := p.machine.State()
	err := p.machine.Err()

	p.mu.Lock()
	text := p.notes
	s := Snapshot{
		State: state,
		Notes: text,
		Err:   err,
	}
	if p.plan != nil {
		s.Steps = p.plan.Steps()
		s.Completed = p.plan.Completed()
		s.AllComplete = p.plan.AllComplete()
		s.Celebrated = p.plan.Celebrated()
	}
	p.mu.Unlock()

	// The study flow is English only.
	s.Feedback = notes.Describe(text, domain.LanguageEnglish, p.machine.CanSubmit(text))
	return s
}
