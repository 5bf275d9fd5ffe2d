package tutor

import (
	"time"

	"studymate/internal/domain"
)

// Greeting opens every transcript.
const Greeting = "Hello! I'm your AI tutor. I'm here to help you understand concepts, solve problems, and answer any questions you have about your studies. What would you like to learn about today?"

var suggestedQuestions = []string{
	"Explain this concept to me",
	"How do I solve this problem?",
	"Can you give me an example?",
	"What are the key points to remember?",
	"How does this relate to other topics?",
}

// SuggestedQuestions returns the prompts offered next to the chat.
func SuggestedQuestions() []string {
	return append([]string(nil), suggestedQuestions...)
}

// Transcript is an append-only message log. IDs come from a counter owned
// by the transcript, so they are unique and increasing. Not safe for
// concurrent use.
type Transcript struct {
	messages []domain.ChatMessage
	lastID   int
	asked    int
	now      func() time.Time
}

func NewTranscript(now func() time.Time) *Transcript {
	if now == nil {
		now = time.Now
	}
	t := &Transcript{now: now}
	t.Append(Greeting, domain.SenderAssistant)
	return t
}

func (t *Transcript) Append(text string, sender domain.Sender) domain.ChatMessage {
	t.lastID++
	msg := domain.ChatMessage{
		ID:        t.lastID,
		Text:      text,
		Sender:    sender,
		Timestamp: t.now(),
	}
	t.messages = append(t.messages, msg)
	if sender == domain.SenderUser {
		t.asked++
	}
	return msg
}

func (t *Transcript) Messages() []domain.ChatMessage {
	return append([]domain.ChatMessage(nil), t.messages...)
}

func (t *Transcript) Len() int { return len(t.messages) }

// QuestionsAsked counts the user's messages.
func (t *Transcript) QuestionsAsked() int { return t.asked }
