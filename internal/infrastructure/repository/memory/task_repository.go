package memory

import (
	"context"
	"sync"

	"github.com/cricvibe/cricvibe-api/internal/domain/task"
)

type TaskRepository struct {
	mu          sync.RWMutex
	items       map[string]task.Task
	orders      []string
	completions []task.Completion
}

func NewTaskRepository(tasks []task.Task) *TaskRepository {
	items := make(map[string]task.Task, len(tasks))
	orders := make([]string, 0, len(tasks))
	for _, t := range tasks {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TaskRepository{items: items, orders: orders}
}

func (r *TaskRepository) ListActive(_ context.Context) ([]task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Task, 0, len(r.orders))
	for _, id := range r.orders {
		if r.items[id].Active {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *TaskRepository) GetByID(_ context.Context, taskID string) (task.Task, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[taskID]
	if !ok {
		return task.Task{}, false, nil
	}

	return t, true, nil
}

func (r *TaskRepository) CreateCompletion(_ context.Context, item task.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.completions {
		if existing.FanID == item.FanID && existing.TaskID == item.TaskID {
			return task.ErrAlreadyCompleted
		}
	}

	r.completions = append(r.completions, item)

	return nil
}

func (r *TaskRepository) ListCompletionsByFan(_ context.Context, fanID string) ([]task.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Completion, 0)
	for _, item := range r.completions {
		if item.FanID == fanID {
			out = append(out, item)
		}
	}

	return out, nil
}
