package domain

import "time"

type Game struct {
	ID         string
	ClassID    string
	Question   string
	Outcome    *string    // set once resolved
	ResolvedAt *time.Time // nil while open
	CreatedAt  time.Time
}

func (g Game) Resolved() bool { return g.ResolvedAt != nil }

type Prediction struct {
	ID         string
	GameID     string
	StudentID  string
	Choice     string
	Confidence float64 // in [0,1]
	IsCorrect  *bool   // nil until the game resolves
	Points     *int
	CreatedAt  time.Time
}

// Outcome is the input to a scoring policy.
type Outcome struct {
	PredictionID string
	IsCorrect    bool
	Confidence   float64
}
