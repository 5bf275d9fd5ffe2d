package handler

import (
	"studymate/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every handler mounted under /api.
type Handlers struct {
	Health    *HealthHandler
	Session   *SessionHandler
	Flashcard *FlashcardHandler
	StudyPlan *StudyPlanHandler
	Tutor     *TutorHandler
	Upload    *UploadHandler
}

// RegisterRoutes mounts the API on api. Every /sessions/:id route checks the
// session ID before its handler runs.
func RegisterRoutes(api fiber.Router, h Handlers, vm *middleware.ValidationMiddleware) {
	api.Get("/health", h.Health.Check)
	api.Get("/navigation", h.Session.GetNavigation)
	api.Get("/dashboard", h.Session.GetDashboard)
	api.Post("/sessions", h.Session.CreateSession)

	sid := vm.ValidateSessionID()
	api.Delete("/sessions/:id", sid, h.Session.CloseSession)

	api.Get("/sessions/:id/menu", sid, h.Session.GetMenu)
	api.Post("/sessions/:id/menu/toggle", sid, h.Session.ToggleMenu)
	api.Post("/sessions/:id/menu/select", sid, h.Session.SelectRoute)

	api.Get("/sessions/:id/flashcards", sid, h.Flashcard.GetFlashcards)
	api.Put("/sessions/:id/flashcards/notes", sid, h.Flashcard.UpdateNotes)
	api.Post("/sessions/:id/flashcards/generate", sid, h.Flashcard.Generate)
	api.Post("/sessions/:id/flashcards/next", sid, h.Flashcard.Next)
	api.Post("/sessions/:id/flashcards/previous", sid, h.Flashcard.Previous)
	api.Post("/sessions/:id/flashcards/jump", sid, h.Flashcard.Jump)
	api.Post("/sessions/:id/flashcards/reveal", sid, h.Flashcard.Reveal)
	api.Post("/sessions/:id/flashcards/reset", sid, h.Flashcard.Reset)

	api.Get("/sessions/:id/study-plan", sid, h.StudyPlan.GetStudyPlan)
	api.Put("/sessions/:id/study-plan/notes", sid, h.StudyPlan.UpdateNotes)
	api.Post("/sessions/:id/study-plan/generate", sid, h.StudyPlan.Generate)
	api.Post("/sessions/:id/study-plan/steps/:index/complete", sid, h.StudyPlan.CompleteStep)
	api.Post("/sessions/:id/study-plan/reset", sid, h.StudyPlan.Reset)

	api.Get("/sessions/:id/tutor", sid, h.Tutor.GetTutor)
	api.Post("/sessions/:id/tutor/messages", sid, h.Tutor.SendMessage)

	api.Get("/sessions/:id/upload", sid, h.Upload.GetUpload)
	api.Post("/sessions/:id/upload", sid, h.Upload.SelectFile)
	api.Post("/sessions/:id/upload/summary", sid, h.Upload.GenerateSummary)
	api.Delete("/sessions/:id/upload", sid, h.Upload.ClearUpload)
}
