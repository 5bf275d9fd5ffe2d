package service

import (
	"context"

	"studymate/internal/dto"
	"studymate/internal/session"
)

// SessionService creates and closes workspaces and drives the mobile menu.
type SessionService interface {
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
	GetMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error)
	ToggleMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error)
	SelectRoute(ctx context.Context, sessionID, href string) (*dto.MenuResponse, error)
}

type sessionService struct {
	store *session.Store
}

func NewSessionService(store *session.Store) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	w := s.store.Create()
	return &dto.SessionResponse{ID: w.ID, CreatedAt: w.CreatedAt}, nil
}

func (s *sessionService) CloseSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(sessionID)
}

func menuResponse(w *session.Workspace) *dto.MenuResponse {
	return &dto.MenuResponse{Open: w.Menu.IsOpen(), Active: w.Menu.Active()}
}

func (s *sessionService) GetMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return menuResponse(w), nil
}

func (s *sessionService) ToggleMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	w.Menu.Toggle()
	return menuResponse(w), nil
}

func (s *sessionService) SelectRoute(ctx context.Context, sessionID, href string) (*dto.MenuResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := w.Menu.Select(href); err != nil {
		return nil, err
	}
	return menuResponse(w), nil
}
