package domain

import "context"

// Summarizer turns a document into summary text.
type Summarizer interface {
	Summarize(ctx context.Context, file UploadedFile) (*Summary, error)
}

// FlashcardGenerator produces a fixed-size batch of flashcards from notes.
type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, req FlashcardRequest) ([]Flashcard, error)
}

// StudyPlanGenerator produces an ordered plan, every step pending.
type StudyPlanGenerator interface {
	GenerateStudyPlan(ctx context.Context, notes string) ([]StudyStep, error)
}

// TutorResponder produces one reply given the transcript so far. The last
// message of history is the one being answered.
type TutorResponder interface {
	Reply(ctx context.Context, history []ChatMessage) (string, error)
}
