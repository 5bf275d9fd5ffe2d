package service

import (
	"context"
	"time"

	"studymate/internal/domain"
	"studymate/internal/dto"
	"studymate/internal/session"
	"studymate/internal/summary"
)

type UploadService interface {
	GetUpload(ctx context.Context, sessionID string, wait time.Duration) (*dto.UploadResponse, error)
	SelectFile(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error)
	GenerateSummary(ctx context.Context, sessionID string) (*dto.UploadResponse, error)
	ClearUpload(ctx context.Context, sessionID string) (*dto.UploadResponse, error)
}

type uploadService struct {
	store *session.Store
}

func NewUploadService(store *session.Store) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) do(sessionID string, op func(p *summary.Page) error) (*dto.UploadResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(w.Upload); err != nil {
		return nil, pageError(pageUpload, "Select a PDF document first", err)
	}
	return dto.NewUploadResponse(w.Upload.Snapshot()), nil
}

func (s *uploadService) GetUpload(ctx context.Context, sessionID string, wait time.Duration) (*dto.UploadResponse, error) {
	return s.do(sessionID, func(p *summary.Page) error {
		return waitSettled(ctx, p, wait)
	})
}

func (s *uploadService) SelectFile(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error) {
	return s.do(sessionID, func(p *summary.Page) error {
		return p.Select(file, src)
	})
}

func (s *uploadService) GenerateSummary(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
	return s.do(sessionID, (*summary.Page).Generate)
}

func (s *uploadService) ClearUpload(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
	return s.do(sessionID, (*summary.Page).Clear)
}
