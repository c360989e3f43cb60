package task

import (
	"errors"
	"strings"
	"time"
)

// Type partitions tasks by how their submission is judged. Only trivia
// answers are validated here; the other kinds hand off to other subsystems
// and any submission counts as complete.
type Type string

const (
	TypeTrivia        Type = "trivia"
	TypePrediction    Type = "prediction"
	TypeContentUpload Type = "content_upload"
)

var (
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrInactive         = errors.New("task is not active")
)

type Task struct {
	ID            string
	Title         string
	Description   string
	Type          Type
	CorrectAnswer string
	Points        int64
	Active        bool
	CreatedAt     time.Time
}

// Judge decides correctness and payout for a submitted answer. Trivia answers
// match the stored answer case-insensitively after trimming; every other
// task type is treated as correct in full.
func (t Task) Judge(answer string) (bool, int64) {
	if t.Type != TypeTrivia {
		return true, t.Points
	}

	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(t.CorrectAnswer)) {
		return true, t.Points
	}

	return false, 0
}

// Completion is the at-most-once record of a fan finishing a task.
type Completion struct {
	FanID        string
	TaskID       string
	Answer       string
	IsCorrect    bool
	PointsEarned int64
	CompletedAt  time.Time
}
