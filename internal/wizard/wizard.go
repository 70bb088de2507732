// Package wizard implements the multi-step game authoring flow: category
// name, question count, then one pass over every question slot.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"jpereira7/Trivia-Night/internal/game"
	"jpereira7/Trivia-Night/internal/validator"

	"github.com/google/uuid"
)

// Step is the wizard's current state.
type Step int

const (
	StepName Step = iota
	StepCount
	StepQuestions
)

var (
	ErrWrongStep = errors.New("operation not valid at this step")
)

// Wizard walks an author through one category. The question count is
// fixed once StepCount is left; there is no backward re-initialization.
type Wizard struct {
	step          Step
	categoryName  string
	perDifficulty int
	slots         map[string]string

	// cursor over (difficulty, index) in fixed order easy→medium→hard
	diffIdx int
	index   int
}

// New starts a wizard at the name step.
func New() *Wizard {
	return &Wizard{step: StepName}
}

// Step reports the wizard's current state.
func (w *Wizard) Step() Step {
	return w.step
}

// SetName records the category name and advances to the count step.
func (w *Wizard) SetName(name string) error {
	if w.step != StepName {
		return ErrWrongStep
	}
	if strings.TrimSpace(name) == "" {
		return game.ErrEmptyCategoryName
	}
	w.categoryName = name
	w.step = StepCount
	return nil
}

// SetCount fixes the question count per difficulty, initializes the N×3
// empty slots, and advances to the question step.
func (w *Wizard) SetCount(n int) error {
	if w.step != StepCount {
		return ErrWrongStep
	}
	if err := validator.GetValidator().Var(n, "gte=1,lte=10"); err != nil {
		return game.ErrQuestionCount
	}

	w.perDifficulty = n
	w.slots = make(map[string]string, n*len(game.Difficulties()))
	for _, d := range game.Difficulties() {
		for i := 0; i < n; i++ {
			w.slots[slotKey(d, i)] = ""
		}
	}
	w.diffIdx = 0
	w.index = 0
	w.step = StepQuestions
	return nil
}

func slotKey(d game.Difficulty, index int) string {
	return fmt.Sprintf("%s_%d", d, index)
}

// SlotCount reports how many question slots were initialized.
func (w *Wizard) SlotCount() int {
	return len(w.slots)
}

// Cursor reports the slot the author is on.
func (w *Wizard) Cursor() (game.Difficulty, int) {
	return game.Difficulties()[w.diffIdx], w.index
}

// Text returns the text entered for the current slot.
func (w *Wizard) Text() string {
	d, i := w.Cursor()
	return w.slots[slotKey(d, i)]
}

// SetText records text for the current slot.
func (w *Wizard) SetText(text string) error {
	if w.step != StepQuestions {
		return ErrWrongStep
	}
	d, i := w.Cursor()
	w.slots[slotKey(d, i)] = text
	return nil
}

// Next advances the cursor. From the last slot (hard, N-1) it does not
// move and reports true: the caller should attempt the save.
func (w *Wizard) Next() bool {
	if w.step != StepQuestions {
		return false
	}
	if w.index < w.perDifficulty-1 {
		w.index++
		return false
	}
	if w.diffIdx < len(game.Difficulties())-1 {
		w.diffIdx++
		w.index = 0
		return false
	}
	return true
}

// Prev retreats the cursor symmetrically, clamped at the very first slot.
func (w *Wizard) Prev() {
	if w.step != StepQuestions {
		return
	}
	if w.index > 0 {
		w.index--
		return
	}
	if w.diffIdx > 0 {
		w.diffIdx--
		w.index = w.perDifficulty - 1
	}
}

// Category assembles the authored category: one id, N questions per
// difficulty, all unvisited. It fails with game.ErrEmptyQuestionText if
// any slot is blank, leaving the wizard in the question step so the
// author can fill the gap.
func (w *Wizard) Category() (*game.Category, error) {
	if w.step != StepQuestions {
		return nil, ErrWrongStep
	}
	for _, text := range w.slots {
		if strings.TrimSpace(text) == "" {
			return nil, game.ErrEmptyQuestionText
		}
	}

	c := &game.Category{
		ID:   uuid.New().String(),
		Name: w.categoryName,
	}
	for _, d := range game.Difficulties() {
		for i := 0; i < w.perDifficulty; i++ {
			key := slotKey(d, i)
			c.Questions = append(c.Questions, game.Question{
				ID:         fmt.Sprintf("%s_%s", c.ID, key),
				Text:       w.slots[key],
				Difficulty: d,
				Visited:    false,
			})
		}
	}
	return c, nil
}
