package simulated

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"studymate/internal/domain"
)

// ReplyFollowUp is appended to every canned reply.
const ReplyFollowUp = " Would you like me to explain any specific part in more detail?"

var replyPool = []string{
	"That's a great question! Let me break this down for you step by step. The key concept here involves understanding the underlying principles...",
	"I can help you with that! Here's how I would approach this problem: First, let's identify what we know and what we're trying to find...",
	"Excellent! You're asking about something really important. Let me explain this concept with an example that might make it clearer...",
	"This is a common area where students have questions. The best way to think about this is to consider the relationship between...",
	"Great topic to explore! To fully understand this, we should start with the fundamentals and build up to the more complex ideas...",
}

// ReplyPool returns a copy of the canned replies, without the follow-up.
func ReplyPool() []string {
	return append([]string(nil), replyPool...)
}

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG source. A zero seed is replaced by the
// current time.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TutorResponder draws a reply uniformly from the canned pool.
type TutorResponder struct {
	mu  sync.Mutex
	rng RandomSource
}

func NewTutorResponder(rng RandomSource) *TutorResponder {
	return &TutorResponder{rng: rng}
}

func (r *TutorResponder) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(history) == 0 {
		return "", errors.New("tutor: nothing to reply to")
	}
	r.mu.Lock()
	i := r.rng.IntN(len(replyPool))
	r.mu.Unlock()
	return replyPool[i] + ReplyFollowUp, nil
}

var _ domain.TutorResponder = (*TutorResponder)(nil)
