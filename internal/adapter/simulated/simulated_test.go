package simulated

import (
	"context"
	"strings"
	"testing"

	"studymate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	picks []int
	calls int
}

func (f *fixedSource) IntN(n int) int {
	v := f.picks[f.calls%len(f.picks)] % n
	f.calls++
	return v
}

func TestSummarizer_EchoesFileName(t *testing.T) {
	s := NewSummarizer()
	summary, err := s.Summarize(context.Background(), domain.UploadedFile{Name: "lecture-04.pdf", Size: 2048})
	require.NoError(t, err)
	assert.Equal(t, "lecture-04.pdf", summary.FileName)
	assert.True(t, strings.HasPrefix(summary.Text, `AI-Generated Summary of "lecture-04.pdf":`))
	assert.Contains(t, summary.Text, "**Key Takeaways**")
}

func TestSummarizer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSummarizer().Summarize(ctx, domain.UploadedFile{Name: "a.pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlashcardGenerator(t *testing.T) {
	g := NewFlashcardGenerator()

	t.Run("english batch", func(t *testing.T) {
		cards, err := g.GenerateFlashcards(context.Background(), domain.FlashcardRequest{Notes: "notes", Language: domain.LanguageEnglish})
		require.NoError(t, err)
		require.Len(t, cards, FlashcardBatchSize)
		for i, c := range cards {
			assert.Equal(t, i+1, c.ID)
			assert.NotEmpty(t, c.Question)
			assert.NotEmpty(t, c.Answer)
			assert.True(t, c.Difficulty.Valid())
		}
		assert.Equal(t, "What is overfitting and how can it be prevented?", cards[2].Question)
		assert.Equal(t, domain.DifficultyHard, cards[2].Difficulty)
	})

	t.Run("hindi batch keeps difficulties", func(t *testing.T) {
		en, err := g.GenerateFlashcards(context.Background(), domain.FlashcardRequest{Language: domain.LanguageEnglish})
		require.NoError(t, err)
		hi, err := g.GenerateFlashcards(context.Background(), domain.FlashcardRequest{Language: domain.LanguageHindi})
		require.NoError(t, err)
		require.Len(t, hi, FlashcardBatchSize)
		for i := range hi {
			assert.Equal(t, en[i].Difficulty, hi[i].Difficulty)
			assert.NotEqual(t, en[i].Question, hi[i].Question)
		}
		assert.Equal(t, "ओवरफिटिंग क्या है और इसे कैसे रोका जा सकता है?", hi[2].Question)
	})

	t.Run("empty language defaults to english", func(t *testing.T) {
		cards, err := g.GenerateFlashcards(context.Background(), domain.FlashcardRequest{})
		require.NoError(t, err)
		assert.Equal(t, "What are neural networks and how do they work?", cards[3].Question)
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := g.GenerateFlashcards(context.Background(), domain.FlashcardRequest{Language: "klingon"})
		assert.Error(t, err)
	})
}

func TestStudyPlanGenerator_ReturnsFreshPendingSteps(t *testing.T) {
	g := NewStudyPlanGenerator()
	first, err := g.GenerateStudyPlan(context.Background(), "notes")
	require.NoError(t, err)
	require.Len(t, first, 5)
	for i, s := range first {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, domain.StepPending, s.Status)
		assert.Len(t, s.Tips, 3)
	}

	first[0].Status = domain.StepCompleted
	first[0].Tips[0] = "mutated"

	second, err := g.GenerateStudyPlan(context.Background(), "notes")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPending, second[0].Status)
	assert.Equal(t, "Take your time", second[0].Tips[0])
}

func TestTutorResponder_UsesInjectedSource(t *testing.T) {
	src := &fixedSource{picks: []int{3, 0}}
	r := NewTutorResponder(src)
	history := []domain.ChatMessage{{ID: 1, Text: "help", Sender: domain.SenderUser}}

	first, err := r.Reply(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, replyPool[3]+ReplyFollowUp, first)

	second, err := r.Reply(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, replyPool[0]+ReplyFollowUp, second)
}

func TestTutorResponder_SeededSourceIsDeterministic(t *testing.T) {
	history := []domain.ChatMessage{{ID: 1, Text: "help", Sender: domain.SenderUser}}
	a := NewTutorResponder(NewRandomSource(7))
	b := NewTutorResponder(NewRandomSource(7))
	for i := 0; i < 10; i++ {
		ra, err := a.Reply(context.Background(), history)
		require.NoError(t, err)
		rb, err := b.Reply(context.Background(), history)
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}

func TestTutorResponder_EmptyHistory(t *testing.T) {
	_, err := NewTutorResponder(NewRandomSource(1)).Reply(context.Background(), nil)
	assert.Error(t, err)
}

func TestReplyPool_IsACopy(t *testing.T) {
	pool := ReplyPool()
	require.Len(t, pool, 5)
	pool[0] = "changed"
	assert.NotEqual(t, "changed", replyPool[0])
}
