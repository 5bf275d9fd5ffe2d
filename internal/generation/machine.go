// Package generation implements the simulated asynchronous generation used
// by every generating page: a validity gate, a single pending submission,
// a delayed completion and a result that stays until reset.
package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"studymate/internal/logger"

	"go.uber.org/zap"
)

// State of a Machine.
type State int

const (
	Idle State = iota
	Pending
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	}
	return "unknown"
}

var (
	ErrRejected = errors.New("generation: input does not pass the gate")
	ErrBusy     = errors.New("generation: a generation is already pending")
	ErrNotReady = errors.New("generation: no result to reset")
	ErrClosed   = errors.New("generation: machine is closed")
)

// Producer builds the result for an accepted input once the delay elapsed.
// ctx is cancelled when the machine is closed.
type Producer[In, Out any] func(ctx context.Context, in In) (Out, error)

type Options[In, Out any] struct {
	// Name identifies the machine in logs.
	Name  string
	Delay time.Duration
	// Gate is the minimum-content check. Nil accepts every input.
	Gate    func(in In) bool
	Produce Producer[In, Out]
	// Scheduler defaults to ClockScheduler.
	Scheduler Scheduler
	// OnReady runs with the machine locked, right after the result is
	// stored. It must not call back into the Machine.
	OnReady func(in In, out Out)
	// AutoReset returns the machine to Idle once OnReady has run.
	AutoReset bool
}

// Machine is the Idle -> Pending -> Ready state machine shared by all
// generating pages. It is safe for concurrent use.
type Machine[In, Out any] struct {
	mu   sync.Mutex
	opts Options[In, Out]

	state       State
	input       In
	result      Out
	err         error
	seq         uint64
	completions uint64
	closed      bool

	timer   Timer
	cancel  context.CancelFunc
	settled chan struct{}
}

// New panics if opts.Produce is nil.
func New[In, Out any](opts Options[In, Out]) *Machine[In, Out] {
	if opts.Produce == nil {
		panic("generation: Options.Produce is required")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ClockScheduler{}
	}
	if opts.Gate == nil {
		opts.Gate = func(In) bool { return true }
	}
	return &Machine[In, Out]{opts: opts}
}

// CanSubmit reports whether Submit(in) would be accepted right now.
func (m *Machine[In, Out]) CanSubmit(in In) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.check(in) == nil
}

func (m *Machine[In, Out]) check(in In) error {
	if m.closed {
		return ErrClosed
	}
	if m.state == Pending {
		return ErrBusy
	}
	if !m.opts.Gate(in) {
		return ErrRejected
	}
	return nil
}

// Submit records in and schedules exactly one completion. A refused submit
// changes nothing. Submitting from Ready replaces the previous result.
func (m *Machine[In, Out]) Submit(in In) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(in); err != nil {
		return err
	}

	var zero Out
	m.seq++
	seq := m.seq
	m.state = Pending
	m.input = in
	m.result = zero
	m.err = nil
	m.settled = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.timer = m.opts.Scheduler.AfterFunc(m.opts.Delay, func() {
		m.complete(ctx, seq, in)
	})

	logger.Get().Debug("Generation submitted",
		zap.String("machine", m.opts.Name),
		zap.Uint64("seq", seq),
		zap.Duration("delay", m.opts.Delay),
	)
	return nil
}

func (m *Machine[In, Out]) current(seq uint64) bool {
	return !m.closed && m.state == Pending && m.seq == seq
}

func (m *Machine[In, Out]) complete(ctx context.Context, seq uint64, in In) {
	m.mu.Lock()
	if !m.current(seq) {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	out, err := m.opts.Produce(ctx, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current(seq) {
		logger.Get().Debug("Generation abandoned",
			zap.String("machine", m.opts.Name),
			zap.Uint64("seq", seq),
		)
		return
	}

	m.timer = nil
	m.cancel()
	m.cancel = nil
	defer close(m.settled)

	if err != nil {
		m.state = Idle
		m.err = err
		logger.Get().Warn("Generation failed",
			zap.String("machine", m.opts.Name),
			zap.Uint64("seq", seq),
			zap.Error(err),
		)
		return
	}

	m.state = Ready
	m.result = out
	m.completions++
	if m.opts.OnReady != nil {
		m.opts.OnReady(in, out)
	}
	logger.Get().Debug("Generation completed",
		zap.String("machine", m.opts.Name),
		zap.Uint64("seq", seq),
	)

	if m.opts.AutoReset {
		var zeroIn In
		var zeroOut Out
		m.state = Idle
		m.input = zeroIn
		m.result = zeroOut
	}
}

// Reset clears input and result. It is only valid from Ready.
func (m *Machine[In, Out]) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.state != Ready {
		return ErrNotReady
	}
	var zeroIn In
	var zeroOut Out
	m.state = Idle
	m.input = zeroIn
	m.result = zeroOut
	m.err = nil
	return nil
}

// Close abandons any pending completion: the timer is stopped, the producer
// context is cancelled and no result is stored afterwards. Close is
// idempotent.
func (m *Machine[In, Out]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.state == Pending {
		m.state = Idle
		close(m.settled)
		logger.Get().Debug("Pending generation cancelled", zap.String("machine", m.opts.Name), zap.Uint64("seq", m.seq))
	}
}

// Wait blocks until the current submission settles. It returns the
// producer error, ErrClosed if the machine was closed, or ctx.Err().
func (m *Machine[In, Out]) Wait(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Pending {
		err := m.settledErr()
		m.mu.Unlock()
		return err
	}
	ch := m.settled
	m.mu.Unlock()

	select {
	case <-ch:
	case <-ctx.Done():
		return ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settledErr()
}

func (m *Machine[In, Out]) settledErr() error {
	if m.closed {
		return ErrClosed
	}
	return m.err
}

func (m *Machine[In, Out]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Input returns the recorded input of the pending or ready submission.
func (m *Machine[In, Out]) Input() In {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.input
}

// Result returns the result while the machine is Ready.
func (m *Machine[In, Out]) Result() (Out, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result, m.state == Ready
}

// Err returns the error of the last failed submission, if any.
func (m *Machine[In, Out]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Completions counts successful completions over the machine's lifetime.
func (m *Machine[In, Out]) Completions() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completions
}

func (m *Machine[In, Out]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MinLength is the gate of the note-driven pages: the text must contain at
// least n characters and must not be blank.
func MinLength(n int) func(string) bool {
	return func(s string) bool {
		return strings.TrimSpace(s) != "" && utf8.RuneCountInString(s) >= n
	}
}

// NotBlank rejects empty and whitespace-only text.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
