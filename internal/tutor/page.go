// Package tutor holds the chat page: an append-only transcript and the
// simulated tutor that answers one message at a time.
package tutor

import (
	"context"
	"sync"
	"time"

	"studymate/internal/domain"
	"studymate/internal/generation"
)

type Config struct {
	Delay     time.Duration
	Scheduler generation.Scheduler
	// Now stamps messages. Defaults to time.Now.
	Now func() time.Time
}

type Snapshot struct {
	Messages       []domain.ChatMessage
	QuestionsAsked int
	Typing         bool
	Err            error
}

type Page struct {
	machine *generation.Machine[[]domain.ChatMessage, string]

	// sendMu makes the check, the user append and the submit of Send one
	// step, so a refused send leaves no trace in the transcript.
	sendMu sync.Mutex

	mu         sync.Mutex
	transcript *Transcript
}

func NewPage(responder domain.TutorResponder, cfg Config) *Page {
	p := &Page{transcript: NewTranscript(cfg.Now)}
	p.machine = generation.New(generation.Options[[]domain.ChatMessage, string]{
		Name:      "tutor",
		Delay:     cfg.Delay,
		Scheduler: cfg.Scheduler,
		Gate:      awaitingReply,
		Produce:   responder.Reply,
		AutoReset: true,
		OnReady: func(_ []domain.ChatMessage, reply string) {
			p.mu.Lock()
			p.transcript.Append(reply, domain.SenderAssistant)
			p.mu.Unlock()
		},
	})
	return p
}

func awaitingReply(history []domain.ChatMessage) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Sender == domain.SenderUser && generation.NotBlank(last.Text)
}

// Send appends the user's message and schedules one reply. Blank text is
// refused with generation.ErrRejected, and a send while the tutor is typing
// with generation.ErrBusy; neither touches the transcript.
func (p *Page) Send(text string) (domain.ChatMessage, error) {
	if !generation.NotBlank(text) {
		return domain.ChatMessage{}, generation.ErrRejected
	}

	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	candidate := []domain.ChatMessage{{Text: text, Sender: domain.SenderUser}}
	if !p.machine.CanSubmit(candidate) {
		if p.machine.Closed() {
			return domain.ChatMessage{}, generation.ErrClosed
		}
		return domain.ChatMessage{}, generation.ErrBusy
	}

	p.mu.Lock()
	msg := p.transcript.Append(text, domain.SenderUser)
	history := p.transcript.Messages()
	p.mu.Unlock()

	if err := p.machine.Submit(history); err != nil {
		// Only Close can slip in between the check and the submit.
		return msg, err
	}
	return msg, nil
}

// Typing reports whether a reply is pending.
func (p *Page) Typing() bool {
	return p.machine.State() == generation.Pending
}

func (p *Page) Wait(ctx context.Context) error {
	return p.machine.Wait(ctx)
}

func (p *Page) Close() {
	p.machine.Close()
}

func (p *Page) Snapshot() Snapshot {
	typing := p.Typing()
	err := p.machine.Err()
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Messages:       p.transcript.Messages(),
		QuestionsAsked: p.transcript.QuestionsAsked(),
		Typing:         typing,
		Err:            err,
	}
}
