package generationtest_test

import (
	"testing"
	"time"

	"studymate/internal/generation/generationtest"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_AdvanceRunsDueTasksInOrder(t *testing.T) {
	s := generationtest.NewManualScheduler()
	var got []string
	s.AfterFunc(2*time.Second, func() { got = append(got, "b") })
	s.AfterFunc(time.Second, func() { got = append(got, "a") })
	s.AfterFunc(2*time.Second, func() { got = append(got, "c") })

	assert.Equal(t, 0, s.Advance(500*time.Millisecond))
	assert.Equal(t, 3, s.Outstanding())

	assert.Equal(t, 3, s.Advance(1500*time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, s.Outstanding())
}

func TestManualScheduler_Stop(t *testing.T) {
	s := generationtest.NewManualScheduler()
	ran := false
	timer := s.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Equal(t, 0, s.Outstanding())
	assert.Equal(t, 0, s.FireAll())
	assert.False(t, ran)
}

func TestManualScheduler_StopAfterFire(t *testing.T) {
	s := generationtest.NewManualScheduler()
	timer := s.AfterFunc(time.Second, func() {})
	assert.Equal(t, 1, s.FireAll())
	assert.False(t, timer.Stop())
}
