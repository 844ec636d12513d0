package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	dom "github.com/katiepdx/todo-app-be/internal/domain"
	"github.com/katiepdx/todo-app-be/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// ListCache is what TodoService needs from the cache layer.
// *cache.TodoCache implements it.
type ListCache interface {
	GetList(ctx context.Context, userID int64) ([]dom.Todo, error)
	SetList(ctx context.Context, userID int64, list []dom.Todo) error
	Invalidate(ctx context.Context, userID int64) error
}

var (
	// ErrNotFound covers both "no such row" and "row owned by someone
	// else": the two are indistinguishable on purpose.
	ErrNotFound  = errors.New("not found")
	ErrEmptyTodo = errors.New("todo text required")
)

// TodoService owns the todo CRUD logic. The authenticated user id is a
// parameter on every call and is the only owner id ever used; nothing a
// client sends can widen the scope.
type TodoService struct {
	repo  repo.TodoRepo
	cache ListCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c ListCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, userID int64, todo string, completed bool) (dom.Todo, error) {
	todo = strings.TrimSpace(todo)
	if todo == "" {
		return dom.Todo{}, ErrEmptyTodo
	}
	t, err := s.repo.Create(ctx, userID, todo, completed)
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			if list == nil {
				list = []dom.Todo{}
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *TodoService) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, userID, id int64, todo string, completed bool) (dom.Todo, error) {
	todo = strings.TrimSpace(todo)
	if todo == "" {
		return dom.Todo{}, ErrEmptyTodo
	}
	t, err := s.repo.Update(ctx, userID, id, todo, completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Delete removes the row if owned by userID and returns the deleted rows.
// Deleting a foreign or missing id is a no-op with an empty result.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) ([]dom.Todo, error) {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		s.invalidateCache(ctx, userID)
	}
	return deleted, nil
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
