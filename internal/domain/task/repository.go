package task

import "context"

// Repository describes task reference data and completion persistence.
type Repository interface {
	ListActive(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, taskID string) (Task, bool, error)

	// CreateCompletion persists a completion row. Returns
	// ErrAlreadyCompleted when the (fan, task) pair already has one.
	CreateCompletion(ctx context.Context, item Completion) error

	ListCompletionsByFan(ctx context.Context, fanID string) ([]Completion, error)
}
