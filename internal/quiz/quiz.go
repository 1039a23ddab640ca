package quiz

import "time"

// Role is a user's role in the system.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// User is an identity from the fixed demo directory. Users are selected
// at login, never created.
type User struct {
	ID   string
	Name string
	Role Role
}

// Kind is the question format.
type Kind string

const (
	KindMultipleChoice Kind = "MULTIPLE_CHOICE"
	KindTrueFalse      Kind = "TRUE_FALSE"
)

// TrueFalseOptions is the fixed option list for true/false questions.
var TrueFalseOptions = []string{"True", "False"}

// Question is a single quiz question. Once added to a saved quiz it is
// immutable; edits replace the quiz's whole question list.
type Question struct {
	ID            string   `validate:"required"`
	Text          string   `validate:"required"`
	Kind          Kind     `validate:"required,oneof=MULTIPLE_CHOICE TRUE_FALSE"`
	Options       []string `validate:"required,min=2,dive,required"`
	CorrectAnswer string   `validate:"required"`
}

// Quiz is a teacher-authored quiz.
type Quiz struct {
	ID              string
	Title           string     `validate:"required"`
	DurationMinutes int        `validate:"required,min=1"`
	Questions       []Question `validate:"required,min=1,dive"`
	CreatedBy       string     `validate:"required"`
}

// Attempt is one completed or timed-out run of a student through a
// quiz. Immutable once written.
type Attempt struct {
	ID             string
	QuizID         string
	StudentID      string
	Answers        map[string]string // question ID → selected option; skips absent
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}
