package wizard

import (
	"fmt"
	"testing"

	"jpereira7/Trivia-Night/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_StepGating(t *testing.T) {
	w := New()

	assert.ErrorIs(t, w.SetCount(3), ErrWrongStep)
	assert.ErrorIs(t, w.SetText("too early"), ErrWrongStep)
	_, err := w.Category()
	assert.ErrorIs(t, err, ErrWrongStep)

	assert.ErrorIs(t, w.SetName("   "), game.ErrEmptyCategoryName)
	assert.Equal(t, StepName, w.Step())

	require.NoError(t, w.SetName("History"))
	assert.Equal(t, StepCount, w.Step())

	assert.ErrorIs(t, w.SetCount(0), game.ErrQuestionCount)
	assert.ErrorIs(t, w.SetCount(11), game.ErrQuestionCount)
	assert.Equal(t, StepCount, w.Step())
}

func TestWizard_CountInitializesSlots(t *testing.T) {
	w := New()
	require.NoError(t, w.SetName("History"))
	require.NoError(t, w.SetCount(3))

	assert.Equal(t, StepQuestions, w.Step())
	assert.Equal(t, 9, w.SlotCount(), "N=3 must create exactly 9 slots")

	d, i := w.Cursor()
	assert.Equal(t, game.Easy, d)
	assert.Equal(t, 0, i)
}

func TestWizard_NavigationOrderAndClamps(t *testing.T) {
	w := New()
	require.NoError(t, w.SetName("History"))
	require.NoError(t, w.SetCount(2))

	// Prev on the very first slot stays put.
	w.Prev()
	d, i := w.Cursor()
	assert.Equal(t, game.Easy, d)
	assert.Equal(t, 0, i)

	// The cursor walks easy 0..1, medium 0..1, hard 0..1 without skipping.
	var visited []string
	for {
		d, i := w.Cursor()
		visited = append(visited, fmt.Sprintf("%s_%d", d, i))
		if w.Next() {
			break
		}
	}
	assert.Equal(t, []string{
		"easy_0", "easy_1", "medium_0", "medium_1", "hard_0", "hard_1",
	}, visited)

	// Next from the last slot does not move the cursor.
	d, i = w.Cursor()
	assert.Equal(t, game.Hard, d)
	assert.Equal(t, 1, i)

	// Prev from (hard, 0) lands on (medium, N-1).
	w.Prev()
	w.Prev()
	d, i = w.Cursor()
	assert.Equal(t, game.Medium, d)
	assert.Equal(t, 1, i)
}

func TestWizard_SaveWithBlankSlotFails(t *testing.T) {
	w := New()
	require.NoError(t, w.SetName("History"))
	require.NoError(t, w.SetCount(2))

	// Fill everything except one medium slot.
	for {
		d, i := w.Cursor()
		if !(d == game.Medium && i == 1) {
			require.NoError(t, w.SetText(fmt.Sprintf("%s question %d", d, i)))
		}
		if w.Next() {
			break
		}
	}

	_, err := w.Category()
	assert.ErrorIs(t, err, game.ErrEmptyQuestionText)
	assert.Equal(t, StepQuestions, w.Step(), "a failed save must leave the wizard on the question step")

	// Walk back, fill the gap, save again.
	for {
		if d, i := w.Cursor(); d == game.Medium && i == 1 {
			break
		}
		w.Prev()
	}
	require.NoError(t, w.SetText("medium question 1"))

	c, err := w.Category()
	require.NoError(t, err)
	assert.Equal(t, "History", c.Name)
	require.Len(t, c.Questions, 6)
	require.NoError(t, game.ValidateCategory(c))

	for _, q := range c.Questions {
		assert.False(t, q.Visited)
		assert.Contains(t, q.ID, c.ID)
	}
}
