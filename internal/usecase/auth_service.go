package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/user"
	idgen "github.com/cricvibe/cricvibe-api/internal/platform/id"
)

// SignInInput carries the identity fields the account service verified from
// the fan's Google sign-in.
type SignInInput struct {
	GoogleID  string
	Email     string
	Name      string
	AvatarURL string
}

// AuthService turns verified identities into fan records. Token
// verification itself happens in the account service client; this layer
// only upserts and reads profiles.
type AuthService struct {
	fanRepo fan.Repository
	idGen   idgen.Generator
	logger  *slog.Logger
	now     func() time.Time
}

func NewAuthService(fanRepo fan.Repository, idGen idgen.Generator, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		fanRepo: fanRepo,
		idGen:   idGen,
		logger:  logger,
		now:     time.Now,
	}
}

// SignIn returns the fan for a verified Google identity, creating the
// record on first sign-in.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (fan.Fan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SignIn")
	defer span.End()

	input.GoogleID = strings.TrimSpace(input.GoogleID)
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if input.GoogleID == "" {
		return fan.Fan{}, fmt.Errorf("%w: google id is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return fan.Fan{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	existing, exists, err := s.fanRepo.GetByGoogleID(ctx, input.GoogleID)
	if err != nil {
		return fan.Fan{}, fmt.Errorf("get fan by google id: %w", err)
	}
	if exists {
		return existing, nil
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return fan.Fan{}, fmt.Errorf("generate fan id: %w", err)
	}

	now := s.now().UTC()
	item := fan.Fan{
		ID:        newID,
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		GoogleID:  input.GoogleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.ValidateBasic(); err != nil {
		return fan.Fan{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.fanRepo.Create(ctx, item)
	if err != nil {
		return fan.Fan{}, fmt.Errorf("create fan: %w", err)
	}

	s.logger.InfoContext(ctx, "fan registered",
		slog.String("fan_id", created.ID),
	)

	return created, nil
}

// GetMe resolves the authenticated principal to their fan profile with rank.
func (s *AuthService) GetMe(ctx context.Context, principal user.Principal) (RankedFan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.GetMe")
	defer span.End()

	if !principal.IsFan() {
		return RankedFan{}, fmt.Errorf("%w: fan identity required", ErrUnauthorized)
	}

	item, rank, exists, err := s.fanRepo.GetWithRank(ctx, principal.UserID)
	if err != nil {
		return RankedFan{}, fmt.Errorf("get fan with rank: %w", err)
	}
	if !exists {
		return RankedFan{}, fmt.Errorf("%w: fan=%s", ErrNotFound, principal.UserID)
	}

	return RankedFan{Fan: item, Rank: rank}, nil
}
