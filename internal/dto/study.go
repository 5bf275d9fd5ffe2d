package dto

import (
	"studymate/internal/domain"
	"studymate/internal/flashcard"
	"studymate/internal/studyplan"
	"studymate/internal/summary"
	"studymate/internal/tutor"
)

// FlashcardNotesRequest is the body of PUT /flashcards/notes. Absent fields
// are left unchanged.
type FlashcardNotesRequest struct {
	Notes    *string `json:"notes" validate:"omitempty,max=20000"`
	Language *string `json:"language" validate:"omitempty,oneof=english hindi"`
}

type JumpRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

type FlashcardPageResponse struct {
	State       string             `json:"state"`
	Notes       string             `json:"notes"`
	Language    domain.Language    `json:"language"`
	Characters  int                `json:"characters"`
	Hint        string             `json:"hint"`
	GoodLength  bool               `json:"good_length"`
	CanGenerate bool               `json:"can_generate"`
	Cards       []domain.Flashcard `json:"cards"`
	Total       int                `json:"total"`
	Cursor      int                `json:"cursor"`
	Current     *domain.Flashcard  `json:"current,omitempty"`
	Revealed    bool               `json:"revealed"`
	CanStep     bool               `json:"can_step"`
	Error       string             `json:"error,omitempty"`
}

func NewFlashcardPageResponse(s flashcard.Snapshot) *FlashcardPageResponse {
	resp := &FlashcardPageResponse{
		State:       s.State.String(),
		Notes:       s.Notes,
		Language:    s.Language,
		Characters:  s.Feedback.Characters,
		Hint:        s.Feedback.Hint,
		GoodLength:  s.Feedback.GoodLength,
		CanGenerate: s.Feedback.CanGenerate,
		Cards:       s.Cards,
		Total:       len(s.Cards),
		Cursor:      s.Cursor,
		Revealed:    s.Revealed,
		CanStep:     s.CanStep,
		Error:       errString(s.Err),
	}
	if resp.Cards == nil {
		resp.Cards = []domain.Flashcard{}
	}
	if s.Cursor < len(s.Cards) {
		c := s.Cards[s.Cursor]
		resp.Current = &c
	}
	return resp
}

type StudyNotesRequest struct {
	Notes string `json:"notes" validate:"max=20000"`
}

type StudyPlanResponse struct {
	State       string             `json:"state"`
	Notes       string             `json:"notes"`
	Characters  int                `json:"characters"`
	Hint        string             `json:"hint"`
	GoodLength  bool               `json:"good_length"`
	CanGenerate bool               `json:"can_generate"`
	Steps       []domain.StudyStep `json:"steps"`
	Completed   int                `json:"completed"`
	Total       int                `json:"total"`
	AllComplete bool               `json:"all_complete"`
	Celebrated  bool               `json:"celebrated"`
	Error       string             `json:"error,omitempty"`
}

func NewStudyPlanResponse(s studyplan.Snapshot) *StudyPlanResponse {
	resp := &StudyPlanResponse{
		State:       s.State.String(),
		Notes:       s.Notes,
		Characters:  s.Feedback.Characters,
		Hint:        s.Feedback.Hint,
		GoodLength:  s.Feedback.GoodLength,
		CanGenerate: s.Feedback.CanGenerate,
		Steps:       s.Steps,
		Completed:   s.Completed,
		Total:       len(s.Steps),
		AllComplete: s.AllComplete,
		Celebrated:  s.Celebrated,
		Error:       errString(s.Err),
	}
	if resp.Steps == nil {
		resp.Steps = []domain.StudyStep{}
	}
	return resp
}

// StepCompleteResponse reports whether this call completed the plan.
type StepCompleteResponse struct {
	Celebrate bool               `json:"celebrate"`
	Plan      *StudyPlanResponse `json:"plan"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

type TutorResponse struct {
	Messages           []domain.ChatMessage `json:"messages"`
	QuestionsAsked     int                  `json:"questions_asked"`
	Typing             bool                 `json:"typing"`
	SuggestedQuestions []string             `json:"suggested_questions"`
	Error              string               `json:"error,omitempty"`
}

func NewTutorResponse(s tutor.Snapshot) *TutorResponse {
	return &TutorResponse{
		Messages:           s.Messages,
		QuestionsAsked:     s.QuestionsAsked,
		Typing:             s.Typing,
		SuggestedQuestions: tutor.SuggestedQuestions(),
		Error:              errString(s.Err),
	}
}

type FileResponse struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	SizeLabel   string `json:"size_label"`
}

type UploadResponse struct {
	State   string          `json:"state"`
	File    *FileResponse   `json:"file,omitempty"`
	Summary *domain.Summary `json:"summary,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func NewUploadResponse(s summary.Snapshot) *UploadResponse {
	resp := &UploadResponse{
		State:   s.State.String(),
		Summary: s.Summary,
		Error:   errString(s.Err),
	}
	if s.File != nil {
		resp.File = &FileResponse{
			Name:        s.File.Name,
			ContentType: s.File.ContentType,
			Size:        s.File.Size,
			SizeLabel:   s.File.SizeMB(),
		}
	}
	return resp
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
