package game

// QuestionsFor filters a category's questions by difficulty in their
// stored order. Pure read, never mutates.
func QuestionsFor(c *Category, d Difficulty) []Question {
	var out []Question
	for _, q := range c.Questions {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// FindQuestion locates a question by id across all categories and returns
// a pointer into the game so callers can flip its visited flag in place.
func (g *Game) FindQuestion(questionID string) *Question {
	for i := range g.Categories {
		qs := g.Categories[i].Questions
		for j := range qs {
			if qs[j].ID == questionID {
				return &qs[j]
			}
		}
	}
	return nil
}

// FindCategory locates a category by id.
func (g *Game) FindCategory(categoryID string) *Category {
	for i := range g.Categories {
		if g.Categories[i].ID == categoryID {
			return &g.Categories[i]
		}
	}
	return nil
}

// ResetVisited clears the visited flag on every question.
func (g *Game) ResetVisited() {
	for i := range g.Categories {
		qs := g.Categories[i].Questions
		for j := range qs {
			qs[j].Visited = false
		}
	}
}

// TrackerRow is one line of the play tracker: visited/total per difficulty
// for a single category.
type TrackerRow struct {
	CategoryName string
	Visited      map[Difficulty]int
	Total        map[Difficulty]int
}

// Tracker summarizes play progress per category and difficulty.
func (g *Game) Tracker() []TrackerRow {
	rows := make([]TrackerRow, 0, len(g.Categories))
	for i := range g.Categories {
		row := TrackerRow{
			CategoryName: g.Categories[i].Name,
			Visited:      map[Difficulty]int{},
			Total:        map[Difficulty]int{},
		}
		for _, q := range g.Categories[i].Questions {
			row.Total[q.Difficulty]++
			if q.Visited {
				row.Visited[q.Difficulty]++
			}
		}
		rows = append(rows, row)
	}
	return rows
}
