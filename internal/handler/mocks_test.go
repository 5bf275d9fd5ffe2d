package handler_test

import (
	"context"
	"time"

	"studymate/internal/domain"
	"studymate/internal/dto"
	"studymate/internal/summary"
)

// --- Manual Mocks ---

type MockHealthService struct {
	CheckFunc func(ctx context.Context) *dto.HealthResponse
}

func (m *MockHealthService) Check(ctx context.Context) *dto.HealthResponse {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	panic("MockHealthService.CheckFunc not implemented")
}

type MockSessionService struct {
	CreateSessionFunc func(ctx context.Context) (*dto.SessionResponse, error)
	CloseSessionFunc  func(ctx context.Context, sessionID string) error
	GetMenuFunc       func(ctx context.Context, sessionID string) (*dto.MenuResponse, error)
	ToggleMenuFunc    func(ctx context.Context, sessionID string) (*dto.MenuResponse, error)
	SelectRouteFunc   func(ctx context.Context, sessionID, href string) (*dto.MenuResponse, error)
}

func (m *MockSessionService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx)
	}
	panic("MockSessionService.CreateSessionFunc not implemented")
}

func (m *MockSessionService) CloseSession(ctx context.Context, sessionID string) error {
	if m.CloseSessionFunc != nil {
		return m.CloseSessionFunc(ctx, sessionID)
	}
	panic("MockSessionService.CloseSessionFunc not implemented")
}

func (m *MockSessionService) GetMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error) {
	if m.GetMenuFunc != nil {
		return m.GetMenuFunc(ctx, sessionID)
	}
	panic("MockSessionService.GetMenuFunc not implemented")
}

func (m *MockSessionService) ToggleMenu(ctx context.Context, sessionID string) (*dto.MenuResponse, error) {
	if m.ToggleMenuFunc != nil {
		return m.ToggleMenuFunc(ctx, sessionID)
	}
	panic("MockSessionService.ToggleMenuFunc not implemented")
}

func (m *MockSessionService) SelectRoute(ctx context.Context, sessionID, href string) (*dto.MenuResponse, error) {
	if m.SelectRouteFunc != nil {
		return m.SelectRouteFunc(ctx, sessionID, href)
	}
	panic("MockSessionService.SelectRouteFunc not implemented")
}

type MockFlashcardService struct {
	GetFlashcardsFunc func(ctx context.Context, sessionID string, wait time.Duration) (*dto.FlashcardPageResponse, error)
	UpdateNotesFunc   func(ctx context.Context, sessionID string, req *dto.FlashcardNotesRequest) (*dto.FlashcardPageResponse, error)
	GenerateFunc      func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	NextFunc          func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	PreviousFunc      func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	JumpToFunc        func(ctx context.Context, sessionID string, index int) (*dto.FlashcardPageResponse, error)
	ToggleRevealFunc  func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
	NewSetFunc        func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error)
}

func (m *MockFlashcardService) GetFlashcards(ctx context.Context, sessionID string, wait time.Duration) (*dto.FlashcardPageResponse, error) {
	if m.GetFlashcardsFunc != nil {
		return m.GetFlashcardsFunc(ctx, sessionID, wait)
	}
	panic("MockFlashcardService.GetFlashcardsFunc not implemented")
}

func (m *MockFlashcardService) UpdateNotes(ctx context.Context, sessionID string, req *dto.FlashcardNotesRequest) (*dto.FlashcardPageResponse, error) {
	if m.UpdateNotesFunc != nil {
		return m.UpdateNotesFunc(ctx, sessionID, req)
	}
	panic("MockFlashcardService.UpdateNotesFunc not implemented")
}

func (m *MockFlashcardService) Generate(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, sessionID)
	}
	panic("MockFlashcardService.GenerateFunc not implemented")
}

func (m *MockFlashcardService) Next(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, sessionID)
	}
	panic("MockFlashcardService.NextFunc not implemented")
}

func (m *MockFlashcardService) Previous(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx, sessionID)
	}
	panic("MockFlashcardService.PreviousFunc not implemented")
}

func (m *MockFlashcardService) JumpTo(ctx context.Context, sessionID string, index int) (*dto.FlashcardPageResponse, error) {
	if m.JumpToFunc != nil {
		return m.JumpToFunc(ctx, sessionID, index)
	}
	panic("MockFlashcardService.JumpToFunc not implemented")
}

func (m *MockFlashcardService) ToggleReveal(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	if m.ToggleRevealFunc != nil {
		return m.ToggleRevealFunc(ctx, sessionID)
	}
	panic("MockFlashcardService.ToggleRevealFunc not implemented")
}

func (m *MockFlashcardService) NewSet(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
	if m.NewSetFunc != nil {
		return m.NewSetFunc(ctx, sessionID)
	}
	panic("MockFlashcardService.NewSetFunc not implemented")
}

type MockStudyPlanService struct {
	GetStudyPlanFunc func(ctx context.Context, sessionID string, wait time.Duration) (*dto.StudyPlanResponse, error)
	UpdateNotesFunc  func(ctx context.Context, sessionID string, req *dto.StudyNotesRequest) (*dto.StudyPlanResponse, error)
	GenerateFunc     func(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error)
	CompleteStepFunc func(ctx context.Context, sessionID string, index int) (*dto.StepCompleteResponse, error)
	ResetFunc        func(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error)
}

func (m *MockStudyPlanService) GetStudyPlan(ctx context.Context, sessionID string, wait time.Duration) (*dto.StudyPlanResponse, error) {
	if m.GetStudyPlanFunc != nil {
		return m.GetStudyPlanFunc(ctx, sessionID, wait)
	}
	panic("MockStudyPlanService.GetStudyPlanFunc not implemented")
}

func (m *MockStudyPlanService) UpdateNotes(ctx context.Context, sessionID string, req *dto.StudyNotesRequest) (*dto.StudyPlanResponse, error) {
	if m.UpdateNotesFunc != nil {
		return m.UpdateNotesFunc(ctx, sessionID, req)
	}
	panic("MockStudyPlanService.UpdateNotesFunc not implemented")
}

func (m *MockStudyPlanService) Generate(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, sessionID)
	}
	panic("MockStudyPlanService.GenerateFunc not implemented")
}

func (m *MockStudyPlanService) CompleteStep(ctx context.Context, sessionID string, index int) (*dto.StepCompleteResponse, error) {
	if m.CompleteStepFunc != nil {
		return m.CompleteStepFunc(ctx, sessionID, index)
	}
	panic("MockStudyPlanService.CompleteStepFunc not implemented")
}

func (m *MockStudyPlanService) Reset(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	panic("MockStudyPlanService.ResetFunc not implemented")
}

type MockTutorService struct {
	GetTutorFunc    func(ctx context.Context, sessionID string, wait time.Duration) (*dto.TutorResponse, error)
	SendMessageFunc func(ctx context.Context, sessionID, text string) (*dto.TutorResponse, error)
}

func (m *MockTutorService) GetTutor(ctx context.Context, sessionID string, wait time.Duration) (*dto.TutorResponse, error) {
	if m.GetTutorFunc != nil {
		return m.GetTutorFunc(ctx, sessionID, wait)
	}
	panic("MockTutorService.GetTutorFunc not implemented")
}

func (m *MockTutorService) SendMessage(ctx context.Context, sessionID, text string) (*dto.TutorResponse, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, sessionID, text)
	}
	panic("MockTutorService.SendMessageFunc not implemented")
}

type MockUploadService struct {
	GetUploadFunc       func(ctx context.Context, sessionID string, wait time.Duration) (*dto.UploadResponse, error)
	SelectFileFunc      func(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error)
	GenerateSummaryFunc func(ctx context.Context, sessionID string) (*dto.UploadResponse, error)
	ClearUploadFunc     func(ctx context.Context, sessionID string) (*dto.UploadResponse, error)
}

func (m *MockUploadService) GetUpload(ctx context.Context, sessionID string, wait time.Duration) (*dto.UploadResponse, error) {
	if m.GetUploadFunc != nil {
		return m.GetUploadFunc(ctx, sessionID, wait)
	}
	panic("MockUploadService.GetUploadFunc not implemented")
}

func (m *MockUploadService) SelectFile(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error) {
	if m.SelectFileFunc != nil {
		return m.SelectFileFunc(ctx, sessionID, file, src)
	}
	panic("MockUploadService.SelectFileFunc not implemented")
}

func (m *MockUploadService) GenerateSummary(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
	if m.GenerateSummaryFunc != nil {
		return m.GenerateSummaryFunc(ctx, sessionID)
	}
	panic("MockUploadService.GenerateSummaryFunc not implemented")
}

func (m *MockUploadService) ClearUpload(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
	if m.ClearUploadFunc != nil {
		return m.ClearUploadFunc(ctx, sessionID)
	}
	panic("MockUploadService.ClearUploadFunc not implemented")
}
