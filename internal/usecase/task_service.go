package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/task"
)

// SubmitTaskInput is the incoming payload for completing a task.
type SubmitTaskInput struct {
	FanID  string
	TaskID string
	Answer string
}

// TaskSubmissionResult reports how a submission was judged.
type TaskSubmissionResult struct {
	Task         task.Task
	IsCorrect    bool
	PointsEarned int64
	CompletedAt  time.Time
}

// TaskService lists engagement tasks and judges submissions. Each fan can
// complete a task once; an incorrect trivia answer still consumes the
// attempt.
type TaskService struct {
	taskRepo task.Repository
	ledger   *LedgerService
	badges   *BadgeService
	logger   *slog.Logger
	now      func() time.Time
}

func NewTaskService(
	taskRepo task.Repository,
	ledger *LedgerService,
	badges *BadgeService,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		taskRepo: taskRepo,
		ledger:   ledger,
		badges:   badges,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TaskService) ListActive(ctx context.Context) ([]task.Task, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TaskService.ListActive")
	defer span.End()

	items, err := s.taskRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active tasks: %w", err)
	}

	return items, nil
}

// Submit judges the fan's answer and records the completion. Points are
// credited only when the submission is judged correct.
func (s *TaskService) Submit(ctx context.Context, input SubmitTaskInput) (TaskSubmissionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TaskService.Submit")
	defer span.End()

	input.FanID = strings.TrimSpace(input.FanID)
	input.TaskID = strings.TrimSpace(input.TaskID)

	if input.FanID == "" {
		return TaskSubmissionResult{}, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}
	if input.TaskID == "" {
		return TaskSubmissionResult{}, fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}

	item, exists, err := s.taskRepo.GetByID(ctx, input.TaskID)
	if err != nil {
		return TaskSubmissionResult{}, fmt.Errorf("get task: %w", err)
	}
	if !exists {
		return TaskSubmissionResult{}, fmt.Errorf("%w: task=%s", ErrNotFound, input.TaskID)
	}
	if !item.Active {
		return TaskSubmissionResult{}, fmt.Errorf("%w: task %s is not active", ErrInvalidInput, input.TaskID)
	}
	if item.Type == task.TypeTrivia && strings.TrimSpace(input.Answer) == "" {
		return TaskSubmissionResult{}, fmt.Errorf("%w: answer is required for trivia tasks", ErrInvalidInput)
	}

	isCorrect, points := item.Judge(input.Answer)
	completedAt := s.now().UTC()
	completion := task.Completion{
		FanID:        input.FanID,
		TaskID:       item.ID,
		Answer:       input.Answer,
		IsCorrect:    isCorrect,
		PointsEarned: points,
		CompletedAt:  completedAt,
	}

	if err := s.taskRepo.CreateCompletion(ctx, completion); err != nil {
		if errors.Is(err, task.ErrAlreadyCompleted) {
			return TaskSubmissionResult{}, fmt.Errorf("%w: task already completed", ErrDuplicate)
		}
		return TaskSubmissionResult{}, fmt.Errorf("create task completion: %w", err)
	}

	if isCorrect && points > 0 {
		if err := s.ledger.AddPoints(ctx, input.FanID, points); err != nil {
			s.logger.ErrorContext(ctx, "task points credit failed",
				slog.String("fan_id", input.FanID),
				slog.String("task_id", item.ID),
				slog.String("error", err.Error()),
			)
		} else {
			s.badges.EvaluateBestEffort(ctx, input.FanID)
		}
	}

	return TaskSubmissionResult{
		Task:         item,
		IsCorrect:    isCorrect,
		PointsEarned: points,
		CompletedAt:  completedAt,
	}, nil
}

// ListCompletionsByFan returns the fan's completion history.
func (s *TaskService) ListCompletionsByFan(ctx context.Context, fanID string) ([]task.Completion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TaskService.ListCompletionsByFan")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return nil, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	items, err := s.taskRepo.ListCompletionsByFan(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("list task completions by fan: %w", err)
	}

	return items, nil
}
