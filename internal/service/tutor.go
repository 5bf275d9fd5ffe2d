package service

import (
	"context"
	"time"

	"studymate/internal/dto"
	"studymate/internal/session"
	"studymate/internal/tutor"
)

type TutorService interface {
	GetTutor(ctx context.Context, sessionID string, wait time.Duration) (*dto.TutorResponse, error)
	SendMessage(ctx context.Context, sessionID, text string) (*dto.TutorResponse, error)
}

type tutorService struct {
	store *session.Store
}

func NewTutorService(store *session.Store) TutorService {
	return &tutorService{store: store}
}

func (s *tutorService) do(sessionID string, op func(p *tutor.Page) error) (*dto.TutorResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(w.Tutor); err != nil {
		return nil, pageError(pageTutor, "Message must not be empty", err)
	}
	return dto.NewTutorResponse(w.Tutor.Snapshot()), nil
}

func (s *tutorService) GetTutor(ctx context.Context, sessionID string, wait time.Duration) (*dto.TutorResponse, error) {
	return s.do(sessionID, func(p *tutor.Page) error {
		return waitSettled(ctx, p, wait)
	})
}

func (s *tutorService) SendMessage(ctx context.Context, sessionID, text string) (*dto.TutorResponse, error) {
	return s.do(sessionID, func(p *tutor.Page) error {
		_, err := p.Send(text)
		return err
	})
}
