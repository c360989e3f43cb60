package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/user"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func TestAuthService_SignIn_UpsertsByGoogleID(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository(nil)
	service := NewAuthService(fanRepo, &sequenceIDGenerator{}, discardLogger())

	input := SignInInput{
		GoogleID:  "google-123",
		Email:     "one@example.com",
		Name:      "Fan One",
		AvatarURL: "https://example.com/a.png",
	}

	first, err := service.SignIn(context.Background(), input)
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if first.ID == "" || first.GoogleID != "google-123" {
		t.Fatalf("unexpected created fan: %+v", first)
	}
	if first.Points != 0 || first.CurrentStreak != 0 {
		t.Fatalf("new fan must start with zero points and streak: %+v", first)
	}

	second, err := service.SignIn(context.Background(), input)
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same fan on repeat sign-in, got %s and %s", first.ID, second.ID)
	}
}

func TestAuthService_SignIn_Validation(t *testing.T) {
	t.Parallel()

	service := NewAuthService(memory.NewFanRepository(nil), &sequenceIDGenerator{}, discardLogger())

	_, err := service.SignIn(context.Background(), SignInInput{Email: "one@example.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without google id, got %v", err)
	}

	_, err = service.SignIn(context.Background(), SignInInput{GoogleID: "google-123"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without email, got %v", err)
	}
}

func TestAuthService_GetMe(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", Points: 250},
		{ID: "fan-2", Email: "two@example.com", Points: 900},
	})
	service := NewAuthService(fanRepo, &sequenceIDGenerator{}, discardLogger())

	got, err := service.GetMe(context.Background(), user.Principal{UserID: "fan-1", Role: user.RoleFan})
	if err != nil {
		t.Fatalf("GetMe error: %v", err)
	}
	if got.Fan.ID != "fan-1" || got.Rank != 2 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	_, err = service.GetMe(context.Background(), user.Principal{UserID: "player-1", Role: user.RolePlayer})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for player principal, got %v", err)
	}
}
