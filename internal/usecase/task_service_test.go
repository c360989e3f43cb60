package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/task"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func newTaskFixture(tasks []task.Task) (*TaskService, *memory.FanRepository) {
	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})
	ledger := NewLedgerService(fanRepo)
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, memory.NewPredictionRepository(nil), discardLogger())

	return NewTaskService(memory.NewTaskRepository(tasks), ledger, badges, discardLogger()), fanRepo
}

func TestTaskService_Submit_TriviaJudging(t *testing.T) {
	t.Parallel()

	service, fanRepo := newTaskFixture([]task.Task{
		{ID: "task-1", Type: task.TypeTrivia, CorrectAnswer: "India", Points: 20, Active: true},
	})

	got, err := service.Submit(context.Background(), SubmitTaskInput{
		FanID:  "fan-1",
		TaskID: "task-1",
		Answer: "  inDIA ",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if !got.IsCorrect || got.PointsEarned != 20 {
		t.Fatalf("expected correct trivia answer worth 20, got %+v", got)
	}

	f, _, err := fanRepo.GetByID(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if f.Points != 20 {
		t.Fatalf("expected 20 points credited, got %d", f.Points)
	}
}

func TestTaskService_Submit_WrongTriviaConsumesAttempt(t *testing.T) {
	t.Parallel()

	service, fanRepo := newTaskFixture([]task.Task{
		{ID: "task-1", Type: task.TypeTrivia, CorrectAnswer: "India", Points: 20, Active: true},
	})

	got, err := service.Submit(context.Background(), SubmitTaskInput{
		FanID:  "fan-1",
		TaskID: "task-1",
		Answer: "Australia",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got.IsCorrect || got.PointsEarned != 0 {
		t.Fatalf("expected incorrect zero-point result, got %+v", got)
	}

	f, _, err := fanRepo.GetByID(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if f.Points != 0 {
		t.Fatalf("expected no points, got %d", f.Points)
	}

	// The wrong answer still burned the single attempt.
	_, err = service.Submit(context.Background(), SubmitTaskInput{
		FanID:  "fan-1",
		TaskID: "task-1",
		Answer: "India",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate on retry, got %v", err)
	}
}

func TestTaskService_Submit_NonTriviaAlwaysCorrect(t *testing.T) {
	t.Parallel()

	service, _ := newTaskFixture([]task.Task{
		{ID: "task-1", Type: task.TypeContentUpload, Points: 35, Active: true},
	})

	got, err := service.Submit(context.Background(), SubmitTaskInput{
		FanID:  "fan-1",
		TaskID: "task-1",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if !got.IsCorrect || got.PointsEarned != 35 {
		t.Fatalf("expected full points for upload task, got %+v", got)
	}
}

func TestTaskService_Submit_InactiveTask(t *testing.T) {
	t.Parallel()

	service, _ := newTaskFixture([]task.Task{
		{ID: "task-1", Type: task.TypeTrivia, CorrectAnswer: "India", Points: 20, Active: false},
	})

	_, err := service.Submit(context.Background(), SubmitTaskInput{
		FanID:  "fan-1",
		TaskID: "task-1",
		Answer: "India",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inactive task, got %v", err)
	}
}
