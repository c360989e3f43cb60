package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/task"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListActive(ctx context.Context) ([]task.Task, error) {
	query, args, err := qb.Select("*").From("tasks").
		Where(qb.IsTrue("active")).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tasks query: %w", err)
	}

	var rows []taskTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active tasks: %w", err)
	}

	out := make([]task.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromRow(row))
	}

	return out, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (task.Task, bool, error) {
	query, args, err := qb.Select("*").From("tasks").
		Where(qb.Eq("id", taskID)).
		ToSQL()
	if err != nil {
		return task.Task{}, false, fmt.Errorf("build get task query: %w", err)
	}

	var row taskTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return task.Task{}, false, nil
		}
		return task.Task{}, false, fmt.Errorf("get task: %w", err)
	}

	return taskFromRow(row), true, nil
}

func (r *TaskRepository) CreateCompletion(ctx context.Context, item task.Completion) error {
	const query = `
INSERT INTO task_completions (fan_id, task_id, answer, is_correct, points_earned, completed_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		item.FanID, item.TaskID, item.Answer, item.IsCorrect, item.PointsEarned, item.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return task.ErrAlreadyCompleted
		}
		return fmt.Errorf("insert task completion: %w", err)
	}

	return nil
}

func (r *TaskRepository) ListCompletionsByFan(ctx context.Context, fanID string) ([]task.Completion, error) {
	query, args, err := qb.Select("*").From("task_completions").
		Where(qb.Eq("fan_id", fanID)).
		OrderBy("completed_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select task completions query: %w", err)
	}

	var rows []taskCompletionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select task completions: %w", err)
	}

	out := make([]task.Completion, 0, len(rows))
	for _, row := range rows {
		out = append(out, task.Completion{
			FanID:        row.FanID,
			TaskID:       row.TaskID,
			Answer:       row.Answer,
			IsCorrect:    row.IsCorrect,
			PointsEarned: row.PointsEarned,
			CompletedAt:  row.CompletedAt,
		})
	}

	return out, nil
}
