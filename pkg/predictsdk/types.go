package predictsdk

import "time"

// Roles understood by the API.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}

// ============================================================================
// Users and sessions
// ============================================================================

// RegisterRequest creates a teacher or student account.
type RegisterRequest struct {
	// Username is 3-32 characters of a-z, 0-9, '.', '_' or '-' (case folded)
	Username string `json:"username" example:"tess"`

	// DisplayName defaults to the username (max 64 chars)
	DisplayName string `json:"display_name,omitempty" example:"Ms Tess"`

	// Password is 8-128 characters
	Password string `json:"password" example:"correct horse"`

	// Role is "teacher" or "student"
	Role string `json:"role" example:"teacher"`
}

// UserResponse is a user as exposed by the API. Password hashes never leave
// the server.
type UserResponse struct {
	ID          string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZA"`
	Username    string    `json:"username" example:"tess"`
	DisplayName string    `json:"display_name" example:"Ms Tess"`
	Role        string    `json:"role" example:"teacher"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginRequest exchanges a username and password for a session token.
type LoginRequest struct {
	Username string `json:"username" example:"tess"`
	Password string `json:"password" example:"correct horse"`
}

// SessionResponse is a freshly issued session token. The same token is set
// in the session cookie.
type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZA"`
	Role      string    `json:"role" example:"teacher"`
}

// IdentityResponse describes the caller of GET /v1/me.
type IdentityResponse struct {
	UserID    string    `json:"user_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZA"`
	Role      string    `json:"role" example:"student"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest asks for a reset token to be delivered for username.
type PasswordResetRequest struct {
	Username string `json:"username" example:"tess"`
}

// PasswordResetConfirmRequest redeems a reset token.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password" example:"battery staple"`
}

// ============================================================================
// Classes
// ============================================================================

type CreateClassRequest struct {
	Name string `json:"name" example:"Year 9 Science"`
}

type JoinClassRequest struct {
	JoinCode string `json:"join_code" example:"K7Q2ZP"`
}

type ClassResponse struct {
	ID        string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZA"`
	Name      string    `json:"name" example:"Year 9 Science"`
	TeacherID string    `json:"teacher_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZB"`
	JoinCode  string    `json:"join_code" example:"K7Q2ZP"`
	CreatedAt time.Time `json:"created_at"`
}

type ListClassesResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// LeaderboardEntry is one student's running total within a class.
type LeaderboardEntry struct {
	StudentID   string `json:"student_id"`
	DisplayName string `json:"display_name" example:"Sam"`
	Points      int    `json:"points" example:"42"`
	Predictions int    `json:"predictions" example:"3"`
}

type LeaderboardResponse struct {
	ClassID string             `json:"class_id"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ============================================================================
// Games and predictions
// ============================================================================

type CreateGameRequest struct {
	Question string `json:"question" example:"Will it rain tomorrow?"`
}

type GameResponse struct {
	ID         string     `json:"id"`
	ClassID    string     `json:"class_id"`
	Question   string     `json:"question" example:"Will it rain tomorrow?"`
	Outcome    *string    `json:"outcome,omitempty" example:"yes"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PredictionRequest submits a choice with a confidence in [0, 1].
type PredictionRequest struct {
	Choice     string   `json:"choice" example:"yes"`
	Confidence *float64 `json:"confidence" example:"0.75"`
}

type PredictionResponse struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	StudentID  string    `json:"student_id"`
	Choice     string    `json:"choice" example:"yes"`
	Confidence float64   `json:"confidence" example:"0.75"`
	IsCorrect  *bool     `json:"is_correct,omitempty"`
	Points     *int      `json:"points,omitempty" example:"18"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResolveGameRequest struct {
	Outcome string `json:"outcome" example:"yes"`
}

type ResolveGameResponse struct {
	Game        GameResponse         `json:"game"`
	Predictions []PredictionResponse `json:"predictions"`
}

// ============================================================================
// Bootstrap
// ============================================================================

// BootstrapRequest creates the first admin account.
type BootstrapRequest struct {
	Username    string `json:"username" example:"admin"`
	DisplayName string `json:"display_name,omitempty" example:"Administrator"`
	Password    string `json:"password" example:"Admin123!"`
}

type BootstrapResponse struct {
	AdminUserID string `json:"admin_user_id"`
}
