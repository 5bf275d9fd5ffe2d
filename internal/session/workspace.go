package session

import (
	"sync"
	"time"

	"studymate/internal/flashcard"
	"studymate/internal/navigation"
	"studymate/internal/studyplan"
	"studymate/internal/summary"
	"studymate/internal/tutor"
)

// Pages is one instance of every stateful page.
type Pages struct {
	Flashcards *flashcard.Page
	StudyPlan  *studyplan.Page
	Tutor      *tutor.Page
	Upload     *summary.Page
}

// PageFactory builds the pages of a new workspace.
type PageFactory func() Pages

// Workspace is the state of one client session.
type Workspace struct {
	Pages

	ID        string
	CreatedAt time.Time
	Menu      *navigation.Menu

	mu       sync.Mutex
	lastSeen time.Time
	closed   bool
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastSeen = now
}

func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Close cancels every pending generation. It is idempotent.
func (w *Workspace) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	for _, c := range []interface{ Close() }{w.Flashcards, w.StudyPlan, w.Tutor, w.Upload} {
		c.Close()
	}
}
