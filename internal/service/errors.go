package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studymate/internal/domain"
	"studymate/internal/flashcard"
	"studymate/internal/generation"
	"studymate/internal/studyplan"
)

const (
	pageFlashcards = "flashcards"
	pageStudyPlan  = "study plan"
	pageTutor      = "tutor"
	pageUpload     = "summary"
)

// pageError translates page and machine sentinels into domain errors.
// rejected is the message used when the input did not pass the gate.
func pageError(page, rejected string, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *domain.DomainError
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.Is(err, generation.ErrRejected):
		return domain.NewInputRejectedError(page, rejected)
	case errors.Is(err, generation.ErrBusy):
		return domain.NewGenerationPendingError(page)
	case errors.Is(err, generation.ErrNotReady),
		errors.Is(err, flashcard.ErrNoDeck),
		errors.Is(err, studyplan.ErrNoPlan):
		return domain.NewNotReadyError(page)
	case errors.Is(err, generation.ErrClosed):
		return domain.NewError(domain.CodeSessionNotFound, "Session was closed", err)
	default:
		return domain.NewInternalError(fmt.Sprintf("%s operation failed", page), err)
	}
}

func notesTooShort(minLength int) string {
	return fmt.Sprintf("Notes must contain at least %d characters", minLength)
}

type waiter interface {
	Wait(ctx context.Context) error
}

// waitSettled blocks up to d for a pending generation to settle. Running
// out of time is not an error; a producer failure is reported in the
// snapshot rather than here.
func waitSettled(ctx context.Context, w waiter, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := w.Wait(ctx)
	if errors.Is(err, generation.ErrClosed) {
		return domain.NewError(domain.CodeSessionNotFound, "Session was closed", err)
	}
	return nil
}
