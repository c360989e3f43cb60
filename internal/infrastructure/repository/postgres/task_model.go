package postgres

import (
	"database/sql"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/task"
)

type taskTableModel struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	TaskType      string         `db:"task_type"`
	CorrectAnswer sql.NullString `db:"correct_answer"`
	Points        int64          `db:"points"`
	Active        bool           `db:"active"`
	CreatedAt     time.Time      `db:"created_at"`
}

func taskFromRow(row taskTableModel) task.Task {
	return task.Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Type:          task.Type(row.TaskType),
		CorrectAnswer: row.CorrectAnswer.String,
		Points:        row.Points,
		Active:        row.Active,
		CreatedAt:     row.CreatedAt,
	}
}

type taskCompletionTableModel struct {
	FanID        string    `db:"fan_id"`
	TaskID       string    `db:"task_id"`
	Answer       string    `db:"answer"`
	IsCorrect    bool      `db:"is_correct"`
	PointsEarned int64     `db:"points_earned"`
	CompletedAt  time.Time `db:"completed_at"`
}
