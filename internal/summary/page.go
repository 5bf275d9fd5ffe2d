// Package summary holds the upload page: a single selected PDF and its
// simulated summary.
package summary

import (
	"context"
	"errors"
	"sync"
	"time"

	"studymate/internal/domain"
	"studymate/internal/generation"
)

type Config struct {
	Delay     time.Duration
	MaxBytes  int64
	Scheduler generation.Scheduler
}

type Snapshot struct {
	State   generation.State
	File    *domain.UploadedFile
	Summary *domain.Summary
	Err     error
}

type Page struct {
	machine  *generation.Machine[domain.UploadedFile, *domain.Summary]
	maxBytes int64

	// opMu serializes Select, Generate and Clear so the selection cannot
	// change between a state check and the write that depends on it.
	opMu sync.Mutex

	mu       sync.Mutex
	selected *domain.UploadedFile
	summary  *domain.Summary
}

func NewPage(summarizer domain.Summarizer, cfg Config) *Page {
	p := &Page{maxBytes: cfg.MaxBytes}
	p.machine = generation.New(generation.Options[domain.UploadedFile, *domain.Summary]{
		Name:      "summary",
		Delay:     cfg.Delay,
		Scheduler: cfg.Scheduler,
		Gate:      func(f domain.UploadedFile) bool { return f.Name != "" },
		Produce:   summarizer.Summarize,
		OnReady: func(_ domain.UploadedFile, s *domain.Summary) {
			p.mu.Lock()
			p.summary = s
			p.mu.Unlock()
		},
	})
	return p
}

// Select replaces the selected file. A summary already shown stays until a
// new one replaces it. Selecting while a summary is being generated is
// refused with generation.ErrBusy.
func (p *Page) Select(file domain.UploadedFile, src Source) error {
	if err := Inspect(file, src, p.maxBytes); err != nil {
		return err
	}
	p.opMu.Lock()
	defer p.opMu.Unlock()
	if p.machine.State() == generation.Pending {
		return generation.ErrBusy
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = &file
	return nil
}

func (p *Page) file() domain.UploadedFile {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return domain.UploadedFile{}
	}
	return *p.selected
}

// Generate summarises the selected file. Without a selection it returns
// generation.ErrRejected.
func (p *Page) Generate() error {
	p.opMu.Lock()
	defer p.opMu.Unlock()
	return p.machine.Submit(p.file())
}

// Clear drops the selection and the summary. While a summary is being
// generated it returns generation.ErrBusy and changes nothing.
func (p *Page) Clear() error {
	p.opMu.Lock()
	defer p.opMu.Unlock()
	if p.machine.State() == generation.Pending {
		return generation.ErrBusy
	}
	if err := p.machine.Reset(); err != nil && !errors.Is(err, generation.ErrNotReady) {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = nil
	p.summary = nil
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
	defer p.mu.Unlock()
	s := Snapshot{State: state, Err: err}
	if p.selected != nil {
		f := *p.selected
		s.File = &f
	}
	if p.summary != nil {
		sum := *p.summary
		s.Summary = &sum
	}
	return s
}
