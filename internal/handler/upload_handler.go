package handler

import (
	"io"

	"studymate/internal/domain"
	"studymate/internal/logger"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/summary"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	service  service.UploadService
	maxBytes int64
}

func NewUploadHandler(service service.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// GetUpload godoc
// @Summary Get the upload page
// @Tags upload
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param wait query string false "Long-poll until the page settles: true or a duration such as 5s, capped at 30s"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/upload [get]
func (h *UploadHandler) GetUpload(c *fiber.Ctx) error {
	wait, err := waitParam(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetUpload(c.UserContext(), middleware.SessionID(c), wait)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectFile godoc
// @Summary Select a PDF
// @Description Dropped files must be sent as application/pdf, browsed files must end in .pdf, and the content must be a PDF.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Param file formData file true "PDF document"
// @Param source formData string false "drop or browse" Enums(drop, browse)
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Failure 415 {object} middleware.ErrorResponse
// @Router /sessions/{id}/upload [post]
func (h *UploadHandler) SelectFile(c *fiber.Ctx) error {
	src, ok := summary.ParseSource(c.FormValue("source"))
	if !ok {
		return domain.ValidationErrors{domain.NewInvalidFormatError("source", c.FormValue("source"))}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return domain.NewFileTooLargeError(fh.Size, h.maxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, fh.Size))
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}

	file := domain.UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Content:     content,
	}
	logger.Get().Debug("File received",
		zap.String("session_id", middleware.SessionID(c)),
		zap.String("file_name", file.Name),
		zap.String("content_type", file.ContentType),
		zap.Int64("size", file.Size),
		zap.String("source", string(src)),
	)

	resp, err := h.service.SelectFile(c.UserContext(), middleware.SessionID(c), file, src)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateSummary godoc
// @Summary Summarize the selected file
// @Tags upload
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 202 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/upload/summary [post]
func (h *UploadHandler) GenerateSummary(c *fiber.Ctx) error {
	resp, err := h.service.GenerateSummary(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// ClearUpload godoc
// @Summary Clear the selection and the summary
// @Tags upload
// @Produce json
// @Param id path string true "Session ID (ULID)"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/upload [delete]
func (h *UploadHandler) ClearUpload(c *fiber.Ctx) error {
	resp, err := h.service.ClearUpload(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
