package service

import (
	"context"
	"time"

	"studymate/internal/domain"
	"studymate/internal/dto"
	"studymate/internal/flashcard"
	"studymate/internal/session"
)

// FlashcardService drives the flashcard page of a session.
type FlashcardService interface {
	GetFlashcards(ctx context.Context, sessionID string, wait time.Duration) (*dto.FlashcardPageResponse, error)
	UpdateNotes(ctx context.Context, sessionID string, req *dto.FlashcardNotesRequest) (*dto.FlashcardPageResponse, error)
	Generate(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	Next(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	Previous(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	JumpTo(ctx context.Context, sessionID string, index int) (*dto.FlashcardPageResponse, error)
	ToggleReveal(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	NewSet(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
}

type flashcardService struct {
	store         *session.Store
	minNoteLength int
}

func NewFlashcardService(store *session.Store, minNoteLength int) FlashcardService {
	return &flashcardService{store: store, minNoteLength: minNoteLength}
}

// do runs op on the session's page and answers with the page snapshot
// taken afterwards.
func (s *flashcardService) do(sessionID string, op func(p *flashcard.Page) error) (*dto.FlashcardPageResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(w.Flashcards); err != nil {
		return nil, pageError(pageFlashcards, notesTooShort(s.minNoteLength), err)
	}
	return dto.NewFlashcardPageResponse(w.Flashcards.Snapshot()), nil
}

func (s *flashcardService) GetFlashcards(ctx context.Context, sessionID string, wait time.Duration) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, func(p *flashcard.Page) error {
		return waitSettled(ctx, p, wait)
	})
}

func (s *flashcardService) UpdateNotes(ctx context.Context, sessionID string, req *dto.FlashcardNotesRequest) (*dto.FlashcardPageResponse, error) {
	var lang domain.Language
	if req.Language != nil {
		parsed, err := domain.ParseLanguage(*req.Language)
		if err != nil {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("language", *req.Language)}
		}
		lang = parsed
	}
	return s.do(sessionID, func(p *flashcard.Page) error {
		if req.Notes != nil {
			p.SetNotes(*req.Notes)
		}
		if lang != "" {
			p.SetLanguage(lang)
		}
		return nil
	})
}

func (s *flashcardService) Generate(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, (*flashcard.Page).Generate)
}

func (s *flashcardService) Next(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, (*flashcard.Page).Next)
}

func (s *flashcardService) Previous(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, (*flashcard.Page).Previous)
}

func (s *flashcardService) JumpTo(ctx context.Context, sessionID string, index int) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, func(p *flashcard.Page) error { return p.JumpTo(index) })
}

func (s *flashcardService) ToggleReveal(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, (*flashcard.Page).ToggleReveal)
}

func (s *flashcardService) NewSet(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	return s.do(sessionID, (*flashcard.Page).NewSet)
}
