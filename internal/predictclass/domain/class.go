package domain

import "time"

// JoinCodeLength and JoinCodeAlphabet define the code students type to enrol.
const (
	JoinCodeLength   = 6
	JoinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Class struct {
	ID        string
	Name      string
	TeacherID string
	JoinCode  string // unique, immutable once assigned
	CreatedAt time.Time
}

type Enrollment struct {
	ClassID   string
	StudentID string
	JoinedAt  time.Time
}

// LeaderboardEntry is one student's total across every resolved game in a
// class.
type LeaderboardEntry struct {
	StudentID   string
	DisplayName string
	Points      int
	Predictions int
}
