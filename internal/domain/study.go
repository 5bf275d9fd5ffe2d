package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty grades a flashcard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Language selects the language flashcards are generated in.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// ParseLanguage accepts the two supported literals, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageHindi:
		return LanguageHindi, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Flashcard is read-only once generated.
type Flashcard struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
}

// FlashcardRequest is the input of a flashcard generation.
type FlashcardRequest struct {
	Notes    string   `json:"notes"`
	Language Language `json:"language"`
}

// StepStatus only ever moves from pending to completed.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepCompleted StepStatus = "completed"
)

type StudyStep struct {
	Step        int        `json:"step"`
	Title       string     `json:"title"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	Tips        []string   `json:"tips"`
	Status      StepStatus `json:"status"`
}

// Sender identifies the author of a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type ChatMessage struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadedFile describes a selected document. Content is kept so the
// summarizer can read it; it is never serialised.
type UploadedFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}

// SizeMB renders the size the way the upload page shows it.
func (f UploadedFile) SizeMB() string {
	return fmt.Sprintf("%.2f MB", float64(f.Size)/1024/1024)
}

type Summary struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}
