package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty grades a question. The board always presents the three
// levels in the same order.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the three levels in board order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Bounds for the number of questions per difficulty in a category.
const (
	MinQuestionsPerDifficulty = 1
	MaxQuestionsPerDifficulty = 10
)

var (
	ErrEmptyGameName     = errors.New("game name is required")
	ErrNoCategories      = errors.New("a game needs at least one category")
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrEmptyQuestionText = errors.New("every question needs text")
	ErrQuestionCount     = fmt.Errorf("questions per difficulty must be between %d and %d",
		MinQuestionsPerDifficulty, MaxQuestionsPerDifficulty)
)

// Question is a single board cell. Visited flips to true the first time
// the question is opened during play and only flips back on restart.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Visited    bool       `json:"visited"`
}

// Category is an ordered run of questions sharing a theme.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Game is the persisted document: one owner, ordered categories.
type Game struct {
	ID         string     `json:"id"`
	OwnerID    int64      `json:"ownerUserId"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NewGame assembles a game document from already-authored categories.
// It is the single assembly path for both the one-category wizard flow
// and multi-category saves.
func NewGame(ownerID int64, name string, categories []Category) (*Game, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyGameName
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	for i := range categories {
		if err := ValidateCategory(&categories[i]); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	return &Game{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Name:       name,
		Categories: categories,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ValidateCategory checks the authoring invariant: a non-empty name, the
// same count N of questions for every difficulty with N in [1,10], and no
// blank question text.
func ValidateCategory(c *Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	counts := map[Difficulty]int{}
	for _, q := range c.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return ErrEmptyQuestionText
		}
		counts[q.Difficulty]++
	}
	n := counts[Easy]
	if n < MinQuestionsPerDifficulty || n > MaxQuestionsPerDifficulty {
		return ErrQuestionCount
	}
	for _, d := range Difficulties() {
		if counts[d] != n {
			return ErrQuestionCount
		}
	}
	return nil
}
