package service

import (
	"context"
	"time"

	"studymate/internal/dto"
	"studymate/internal/session"
	"studymate/internal/studyplan"
)

type StudyPlanService interface {
	GetStudyPlan(ctx context.Context, sessionID string, wait time.Duration) (*dto.StudyPlanResponse, error)
	UpdateNotes(ctx context.Context, sessionID string, req *dto.StudyNotesRequest) (*dto.StudyPlanResponse, error)
	Generate(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error)
	CompleteStep(ctx context.Context, sessionID string, index int) (*dto.StepCompleteResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error)
}

type studyPlanService struct {
	store         *session.Store
	minNoteLength int
}

func NewStudyPlanService(store *session.Store, minNoteLength int) StudyPlanService {
	return &studyPlanService{store: store, minNoteLength: minNoteLength}
}

func (s *studyPlanService) do(sessionID string, op func(p *studyplan.Page) error) (*dto.StudyPlanResponse, error) {
	w, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(w.StudyPlan); err != nil {
		return nil, pageError(pageStudyPlan, notesTooShort(s.minNoteLength), err)
	}
	return dto.NewStudyPlanResponse(w.StudyPlan.Snapshot()), nil
}

func (s *studyPlanService) GetStudyPlan(ctx context.Context, sessionID string, wait time.Duration) (*dto.StudyPlanResponse, error) {
	return s.do(sessionID, func(p *studyplan.Page) error {
		return waitSettled(ctx, p, wait)
	})
}

func (s *studyPlanService) UpdateNotes(ctx context.Context, sessionID string, req *dto.StudyNotesRequest) (*dto.StudyPlanResponse, error) {
	return s.do(sessionID, func(p *studyplan.Page) error {
		p.SetNotes(req.Notes)
		return nil
	})
}

func (s *studyPlanService) Generate(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error) {
	return s.do(sessionID, (*studyplan.Page).Generate)
}

// CompleteStep marks one step; Celebrate is set only on the call that
// completed the whole plan.
func (s *studyPlanService) CompleteStep(ctx context.Context, sessionID string, index int) (*dto.StepCompleteResponse, error) {
	var celebrate bool
	plan, err := s.do(sessionID, func(p *studyplan.Page) error {
		var err error
		celebrate, err = p.MarkComplete(index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.StepCompleteResponse{Celebrate: celebrate, Plan: plan}, nil
}

func (s *studyPlanService) Reset(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error) {
	return s.do(sessionID, (*studyplan.Page).Reset)
}
