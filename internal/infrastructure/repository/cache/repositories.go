// Package cache wraps the read-mostly reference repositories with a TTL
// store. Write paths (awards, completions) pass through uncached so the
// uniqueness guarantees stay with storage.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/task"
	basecache "github.com/cricvibe/cricvibe-api/internal/platform/cache"
)

type BadgeRepository struct {
	next  badge.Repository
	cache *basecache.Store
}

func NewBadgeRepository(next badge.Repository, cache *basecache.Store) *BadgeRepository {
	return &BadgeRepository{next: next, cache: cache}
}

func (r *BadgeRepository) List(ctx context.Context) ([]badge.Badge, error) {
	v, err := r.cache.GetOrLoad(ctx, "badge:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]badge.Badge(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]badge.Badge)
	return append([]badge.Badge(nil), items...), nil
}

// ListAwardsByFan stays uncached: awards change on every evaluation and a
// stale read would re-trigger award attempts.
func (r *BadgeRepository) ListAwardsByFan(ctx context.Context, fanID string) ([]badge.Award, error) {
	return r.next.ListAwardsByFan(ctx, fanID)
}

func (r *BadgeRepository) Award(ctx context.Context, fanID, badgeID string, earnedAt time.Time) (bool, error) {
	return r.next.Award(ctx, fanID, badgeID, earnedAt)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatch{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatch)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, limit int) ([]match.Match, error) {
	return r.listMatches(ctx, "match:upcoming:"+strconv.Itoa(limit), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListUpcoming(ctx, limit)
	})
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Match, error) {
	return r.listMatches(ctx, "match:recent:"+strconv.Itoa(limit), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListRecent(ctx, limit)
	})
}

func (r *MatchRepository) listMatches(ctx context.Context, key string, load func(ctx context.Context) ([]match.Match, error)) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

type cachedMatch struct {
	value  match.Match
	exists bool
}

type TaskRepository struct {
	next  task.Repository
	cache *basecache.Store
}

func NewTaskRepository(next task.Repository, cache *basecache.Store) *TaskRepository {
	return &TaskRepository{next: next, cache: cache}
}

func (r *TaskRepository) ListActive(ctx context.Context) ([]task.Task, error) {
	v, err := r.cache.GetOrLoad(ctx, "task:active", func(ctx context.Context) (any, error) {
		items, err := r.next.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return append([]task.Task(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]task.Task)
	return append([]task.Task(nil), items...), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (task.Task, bool, error) {
	key := "task:id:" + taskID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, taskID)
		if err != nil {
			return nil, err
		}
		return cachedTask{value: item, exists: exists}, nil
	})
	if err != nil {
		return task.Task{}, false, err
	}

	cached, _ := v.(cachedTask)
	return cached.value, cached.exists, nil
}

func (r *TaskRepository) CreateCompletion(ctx context.Context, item task.Completion) error {
	return r.next.CreateCompletion(ctx, item)
}

func (r *TaskRepository) ListCompletionsByFan(ctx context.Context, fanID string) ([]task.Completion, error) {
	return r.next.ListCompletionsByFan(ctx, fanID)
}

type cachedTask struct {
	value  task.Task
	exists bool
}
