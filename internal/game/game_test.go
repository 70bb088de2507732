package game

import (
	"errors"
	"fmt"
	"testing"
)

// buildCategory makes a category with n questions per difficulty.
func buildCategory(name string, n int) Category {
	c := Category{ID: "cat1", Name: name}
	for _, d := range Difficulties() {
		for i := 0; i < n; i++ {
			c.Questions = append(c.Questions, Question{
				ID:         fmt.Sprintf("cat1_%s_%d", d, i),
				Text:       fmt.Sprintf("%s question %d", d, i),
				Difficulty: d,
			})
		}
	}
	return c
}

func TestValidateCategory(t *testing.T) {
	blankText := buildCategory("History", 2)
	blankText.Questions[3].Text = "   "

	uneven := buildCategory("History", 2)
	uneven.Questions = uneven.Questions[:len(uneven.Questions)-1]

	tooMany := buildCategory("History", MaxQuestionsPerDifficulty+1)

	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "Valid category with 2 per difficulty",
			category: buildCategory("History", 2),
			wantErr:  nil,
		},
		{
			name:     "Empty name",
			category: Category{ID: "c", Name: "  ", Questions: buildCategory("x", 1).Questions},
			wantErr:  ErrEmptyCategoryName,
		},
		{
			name:     "Blank question text",
			category: blankText,
			wantErr:  ErrEmptyQuestionText,
		},
		{
			name:     "Uneven difficulty counts",
			category: uneven,
			wantErr:  ErrQuestionCount,
		},
		{
			name:     "No questions at all",
			category: Category{ID: "c", Name: "Empty"},
			wantErr:  ErrQuestionCount,
		},
		{
			name:     "More than the maximum per difficulty",
			category: tooMany,
			wantErr:  ErrQuestionCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCategory(&tt.category); !errors.Is(got, tt.wantErr) {
				t.Errorf("ValidateCategory() got = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestNewGame(t *testing.T) {
	cat := buildCategory("Science", 3)

	g, err := NewGame(7, "Trivia Night", []Category{cat})
	if err != nil {
		t.Fatalf("NewGame() unexpected error: %v", err)
	}
	if g.ID == "" {
		t.Error("NewGame() did not assign an id")
	}
	if g.OwnerID != 7 {
		t.Errorf("NewGame() owner got = %d, want 7", g.OwnerID)
	}
	if !g.CreatedAt.Equal(g.UpdatedAt) {
		t.Error("NewGame() createdAt and updatedAt should start equal")
	}

	if _, err := NewGame(7, "   ", []Category{cat}); !errors.Is(err, ErrEmptyGameName) {
		t.Errorf("NewGame() blank name got = %v, want %v", err, ErrEmptyGameName)
	}
	if _, err := NewGame(7, "Trivia Night", nil); !errors.Is(err, ErrNoCategories) {
		t.Errorf("NewGame() no categories got = %v, want %v", err, ErrNoCategories)
	}
}

func TestQuestionsFor(t *testing.T) {
	cat := buildCategory("History", 3)

	for _, d := range Difficulties() {
		qs := QuestionsFor(&cat, d)
		if len(qs) != 3 {
			t.Errorf("QuestionsFor(%s) got %d questions, want 3", d, len(qs))
		}
		for _, q := range qs {
			if q.Difficulty != d {
				t.Errorf("QuestionsFor(%s) returned question with difficulty %s", d, q.Difficulty)
			}
		}
	}
}

func TestResetVisitedAndTracker(t *testing.T) {
	g, err := NewGame(1, "Board", []Category{buildCategory("History", 2)})
	if err != nil {
		t.Fatalf("NewGame() unexpected error: %v", err)
	}

	g.Categories[0].Questions[0].Visited = true // easy_0
	g.Categories[0].Questions[2].Visited = true // medium_0

	rows := g.Tracker()
	if len(rows) != 1 {
		t.Fatalf("Tracker() got %d rows, want 1", len(rows))
	}
	if rows[0].Visited[Easy] != 1 || rows[0].Visited[Medium] != 1 || rows[0].Visited[Hard] != 0 {
		t.Errorf("Tracker() visited counts wrong: %+v", rows[0].Visited)
	}
	if rows[0].Total[Easy] != 2 || rows[0].Total[Medium] != 2 || rows[0].Total[Hard] != 2 {
		t.Errorf("Tracker() totals wrong: %+v", rows[0].Total)
	}

	g.ResetVisited()
	for _, q := range g.Categories[0].Questions {
		if q.Visited {
			t.Errorf("ResetVisited() left question %s visited", q.ID)
		}
	}
}

func TestFindQuestionReturnsPointerIntoGame(t *testing.T) {
	g, err := NewGame(1, "Board", []Category{buildCategory("History", 1)})
	if err != nil {
		t.Fatalf("NewGame() unexpected error: %v", err)
	}

	q := g.FindQuestion("cat1_medium_0")
	if q == nil {
		t.Fatal("FindQuestion() did not find an existing question")
	}
	q.Visited = true
	if !g.FindQuestion("cat1_medium_0").Visited {
		t.Error("FindQuestion() should return a pointer into the game document")
	}

	if g.FindQuestion("missing") != nil {
		t.Error("FindQuestion() should return nil for an unknown id")
	}
}
