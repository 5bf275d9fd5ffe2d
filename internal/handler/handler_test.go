package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"studymate/internal/domain"
	"studymate/internal/dto"
	"studymate/internal/handler"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/summary"
	"studymate/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSessionID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

type mocks struct {
	health    *MockHealthService
	session   *MockSessionService
	flashcard *MockFlashcardService
	studyPlan *MockStudyPlanService
	tutor     *MockTutorService
	upload    *MockUploadService
}

func setup(maxBytes int64) (*fiber.App, *mocks) {
	m := &mocks{
		health:    &MockHealthService{},
		session:   &MockSessionService{},
		flashcard: &MockFlashcardService{},
		studyPlan: &MockStudyPlanService{},
		tutor:     &MockTutorService{},
		upload:    &MockUploadService{},
	}
	v := validation.NewValidator()
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Health:    handler.NewHealthHandler(m.health),
		Session:   handler.NewSessionHandler(m.session, v),
		Flashcard: handler.NewFlashcardHandler(m.flashcard, v),
		StudyPlan: handler.NewStudyPlanHandler(m.studyPlan, v),
		Tutor:     handler.NewTutorHandler(m.tutor, v),
		Upload:    handler.NewUploadHandler(m.upload, maxBytes),
	}, middleware.NewValidationMiddleware(v))
	return app, m
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) middleware.ErrorResponse {
	t.Helper()
	var er middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &er))
	return er
}

func TestHealthHandler_Check(t *testing.T) {
	app, m := setup(0)
	status := service.HealthOK
	m.health.CheckFunc = func(ctx context.Context) *dto.HealthResponse {
		return &dto.HealthResponse{Status: status, Cache: status, Sessions: 3}
	}

	resp, data := do(t, app, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var h dto.HealthResponse
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Equal(t, 3, h.Sessions)

	status = service.HealthDegraded
	resp, data = do(t, app, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Equal(t, service.HealthDegraded, h.Status)
}

func TestSessionHandler_StaticPages(t *testing.T) {
	app, _ := setup(0)

	resp, data := do(t, app, "GET", "/api/navigation", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var nav dto.NavigationResponse
	require.NoError(t, json.Unmarshal(data, &nav))
	assert.Len(t, nav.Routes, 5)
	assert.Len(t, nav.Features, 4)

	resp, data = do(t, app, "GET", "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var dash dto.DashboardResponse
	require.NoError(t, json.Unmarshal(data, &dash))
	assert.Equal(t, 2450, dash.Stats.XP)
	require.Len(t, dash.Goals, 3)
	assert.Equal(t, 90, dash.Goals[1].Percent)
}

func TestSessionHandler_Lifecycle(t *testing.T) {
	app, m := setup(0)
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	m.session.CreateSessionFunc = func(ctx context.Context) (*dto.SessionResponse, error) {
		return &dto.SessionResponse{ID: validSessionID, CreatedAt: created}, nil
	}
	var closed string
	m.session.CloseSessionFunc = func(ctx context.Context, sessionID string) error {
		closed = sessionID
		return nil
	}

	resp, data := do(t, app, "POST", "/api/sessions", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var s dto.SessionResponse
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, validSessionID, s.ID)

	resp, _ = do(t, app, "DELETE", "/api/sessions/"+validSessionID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, validSessionID, closed)
}

func TestSessionHandler_InvalidSessionID(t *testing.T) {
	app, _ := setup(0)

	resp, data := do(t, app, "GET", "/api/sessions/not-a-ulid/flashcards", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var ve middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(data, &ve))
	assert.Equal(t, string(domain.CodeValidation), ve.Code)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "session_id", ve.Errors[0].Field)
}

func TestSessionHandler_SessionNotFound(t *testing.T) {
	app, m := setup(0)
	m.session.GetMenuFunc = func(ctx context.Context, sessionID string) (*dto.MenuResponse, error) {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	resp, data := do(t, app, "GET", "/api/sessions/"+validSessionID+"/menu", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	er := decodeError(t, data)
	assert.Equal(t, string(domain.CodeSessionNotFound), er.Code)
	assert.Equal(t, validSessionID, er.Details["session_id"])
}

func TestSessionHandler_SelectRoute(t *testing.T) {
	app, m := setup(0)
	m.session.SelectRouteFunc = func(ctx context.Context, sessionID, href string) (*dto.MenuResponse, error) {
		if href != "/tutor" {
			return nil, domain.NewUnknownRouteError(href)
		}
		return &dto.MenuResponse{Open: false, Active: href}, nil
	}
	path := "/api/sessions/" + validSessionID + "/menu/select"

	resp, data := do(t, app, "POST", path, dto.SelectRouteRequest{Href: "/tutor"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var menu dto.MenuResponse
	require.NoError(t, json.Unmarshal(data, &menu))
	assert.Equal(t, "/tutor", menu.Active)

	resp, data = do(t, app, "POST", path, dto.SelectRouteRequest{Href: "/admin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, string(domain.CodeUnknownRoute), decodeError(t, data).Code)

	resp, _ = do(t, app, "POST", path, dto.SelectRouteRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlashcardHandler_Generate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   domain.ErrorCode
	}{
		{name: "accepted", wantStatus: http.StatusAccepted},
		{name: "notes too short", err: domain.NewInputRejectedError("flashcards", "Notes must contain at least 50 characters"), wantStatus: http.StatusBadRequest, wantCode: domain.CodeInputRejected},
		{name: "already pending", err: domain.NewGenerationPendingError("flashcards"), wantStatus: http.StatusConflict, wantCode: domain.CodeGenerationPending},
		{name: "producer failed", err: domain.NewGenerationFailedError("flashcards", assert.AnError), wantStatus: http.StatusServiceUnavailable, wantCode: domain.CodeGenerationFailed},
		{name: "unexpected", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantCode: domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := setup(0)
			m.flashcard.GenerateFunc = func(ctx context.Context, sessionID string) (*dto.FlashcardPageResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &dto.FlashcardPageResponse{State: "pending"}, nil
			}

			resp, data := do(t, app, "POST", "/api/sessions/"+validSessionID+"/flashcards/generate", nil)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, string(tt.wantCode), decodeError(t, data).Code)
			}
		})
	}
}

func TestFlashcardHandler_UpdateNotes(t *testing.T) {
	app, m := setup(0)
	var got *dto.FlashcardNotesRequest
	m.flashcard.UpdateNotesFunc = func(ctx context.Context, sessionID string, req *dto.FlashcardNotesRequest) (*dto.FlashcardPageResponse, error) {
		got = req
		return &dto.FlashcardPageResponse{Notes: *req.Notes, Language: domain.LanguageHindi}, nil
	}
	path := "/api/sessions/" + validSessionID + "/flashcards/notes"

	resp, _ := do(t, app, "PUT", path, map[string]string{"notes": "cell biology", "language": "hindi"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "cell biology", *got.Notes)
	assert.Equal(t, "hindi", *got.Language)

	resp, _ = do(t, app, "PUT", path, map[string]string{"language": "latin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlashcardHandler_Jump(t *testing.T) {
	app, m := setup(0)
	m.flashcard.JumpToFunc = func(ctx context.Context, sessionID string, index int) (*dto.FlashcardPageResponse, error) {
		if index >= 5 {
			return nil, domain.NewIndexOutOfRangeError(index, 5)
		}
		return &dto.FlashcardPageResponse{Cursor: index, Total: 5}, nil
	}
	path := "/api/sessions/" + validSessionID + "/flashcards/jump"

	resp, data := do(t, app, "POST", path, map[string]int{"index": 3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.FlashcardPageResponse
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 3, page.Cursor)

	resp, _ = do(t, app, "POST", path, map[string]int{"index": 7})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, "POST", path, map[string]int{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlashcardHandler_WaitParam(t *testing.T) {
	app, m := setup(0)
	var gotWait time.Duration
	m.flashcard.GetFlashcardsFunc = func(ctx context.Context, sessionID string, wait time.Duration) (*dto.FlashcardPageResponse, error) {
		gotWait = wait
		return &dto.FlashcardPageResponse{State: "ready"}, nil
	}
	base := "/api/sessions/" + validSessionID + "/flashcards"

	for query, want := range map[string]time.Duration{
		"":            0,
		"?wait=2s":    2 * time.Second,
		"?wait=true":  10 * time.Second,
		"?wait=false": 0,
		"?wait=10m":   30 * time.Second,
	} {
		resp, _ := do(t, app, "GET", base+query, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, query)
		assert.Equal(t, want, gotWait, query)
	}

	resp, _ := do(t, app, "GET", base+"?wait=soon", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStudyPlanHandler_CompleteStep(t *testing.T) {
	app, m := setup(0)
	m.studyPlan.CompleteStepFunc = func(ctx context.Context, sessionID string, index int) (*dto.StepCompleteResponse, error) {
		return &dto.StepCompleteResponse{Celebrate: index == 4, Plan: &dto.StudyPlanResponse{Completed: index + 1, Total: 5}}, nil
	}

	resp, data := do(t, app, "POST", "/api/sessions/"+validSessionID+"/study-plan/steps/4/complete", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StepCompleteResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Celebrate)

	resp, _ = do(t, app, "POST", "/api/sessions/"+validSessionID+"/study-plan/steps/first/complete", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStudyPlanHandler_ResetNotReady(t *testing.T) {
	app, m := setup(0)
	m.studyPlan.ResetFunc = func(ctx context.Context, sessionID string) (*dto.StudyPlanResponse, error) {
		return nil, domain.NewNotReadyError("study plan")
	}
	resp, _ := do(t, app, "POST", "/api/sessions/"+validSessionID+"/study-plan/reset", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestTutorHandler_SendMessage(t *testing.T) {
	app, m := setup(0)
	var sent string
	m.tutor.SendMessageFunc = func(ctx context.Context, sessionID, text string) (*dto.TutorResponse, error) {
		sent = text
		return &dto.TutorResponse{Typing: true}, nil
	}
	path := "/api/sessions/" + validSessionID + "/tutor/messages"

	resp, data := do(t, app, "POST", path, dto.SendMessageRequest{Text: "Can you give me an example?"})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "Can you give me an example?", sent)
	var out dto.TutorResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Typing)

	resp, _ = do(t, app, "POST", path, dto.SendMessageRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func multipartRequest(t *testing.T, path, name, contentType string, content []byte, source string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if source != "" {
		require.NoError(t, w.WriteField("source", source))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadHandler_SelectFile(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%%EOF\n")
	path := "/api/sessions/" + validSessionID + "/upload"

	t.Run("forwards the file", func(t *testing.T) {
		app, m := setup(1024)
		var got domain.UploadedFile
		var gotSrc summary.Source
		m.upload.SelectFileFunc = func(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error) {
			got, gotSrc = file, src
			return &dto.UploadResponse{State: "idle", File: &dto.FileResponse{Name: file.Name, Size: file.Size}}, nil
		}

		resp, err := app.Test(multipartRequest(t, path, "notes.pdf", "application/pdf", pdf, "drop"), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "notes.pdf", got.Name)
		assert.Equal(t, "application/pdf", got.ContentType)
		assert.Equal(t, pdf, got.Content)
		assert.Equal(t, int64(len(pdf)), got.Size)
		assert.Equal(t, summary.SourceDrop, gotSrc)
	})

	t.Run("too large", func(t *testing.T) {
		app, _ := setup(8)
		resp, err := app.Test(multipartRequest(t, path, "notes.pdf", "application/pdf", pdf, ""), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("unsupported", func(t *testing.T) {
		app, m := setup(1024)
		m.upload.SelectFileFunc = func(ctx context.Context, sessionID string, file domain.UploadedFile, src summary.Source) (*dto.UploadResponse, error) {
			return nil, domain.NewUnsupportedFileError(file.Name, file.ContentType)
		}
		resp, err := app.Test(multipartRequest(t, path, "notes.txt", "text/plain", []byte("hello"), "browse"), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})

	t.Run("unknown source", func(t *testing.T) {
		app, _ := setup(1024)
		resp, err := app.Test(multipartRequest(t, path, "notes.pdf", "application/pdf", pdf, "paste"), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing file", func(t *testing.T) {
		app, _ := setup(1024)
		resp, _ := do(t, app, "POST", path, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUploadHandler_GenerateAndClear(t *testing.T) {
	app, m := setup(1024)
	m.upload.GenerateSummaryFunc = func(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
		return &dto.UploadResponse{State: "pending"}, nil
	}
	m.upload.ClearUploadFunc = func(ctx context.Context, sessionID string) (*dto.UploadResponse, error) {
		return nil, domain.NewGenerationPendingError("summary")
	}
	base := "/api/sessions/" + validSessionID + "/upload"

	resp, _ := do(t, app, "POST", base+"/summary", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, _ = do(t, app, "DELETE", base, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
