package repo

import (
	"context"

	dom "github.com/katiepdx/todo-app-be/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence. Every method scopes by the owning
// user id in the SQL predicate itself: there is no way to reach another
// user's rows through this interface.
type TodoRepo interface {
	Create(ctx context.Context, userID int64, todo string, completed bool) (dom.Todo, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Todo, error)
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Update(ctx context.Context, userID, id int64, todo string, completed bool) (dom.Todo, error)
	Delete(ctx context.Context, userID, id int64) ([]dom.Todo, error)
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, userID int64, todo string, completed bool) (dom.Todo, error) {
	query := `
		INSERT INTO todos (todo, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, todo, completed, user_id`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, todo, completed, userID).Scan(
		&out.ID, &out.Todo, &out.Completed, &out.UserID,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	query := `
		SELECT id, todo, completed, user_id
		FROM todos WHERE id = $1 AND user_id = $2`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.Todo, &t.Completed, &t.UserID,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `
		SELECT id, todo, completed, user_id
		FROM todos WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Todo, &t.Completed, &t.UserID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id int64, todo string, completed bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET todo = $3, completed = $4
		WHERE id = $1 AND user_id = $2
		RETURNING id, todo, completed, user_id`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, userID, todo, completed).Scan(
		&t.ID, &t.Todo, &t.Completed, &t.UserID,
	)
	return t, err
}

// Delete removes the row matching both id and owner and returns the
// deleted rows, so a caller can tell a real delete from a no-op.
func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) ([]dom.Todo, error) {
	query := `
		DELETE FROM todos WHERE id = $1 AND user_id = $2
		RETURNING id, todo, completed, user_id`
	rows, err := r.db.Query(ctx, query, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var deleted []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Todo, &t.Completed, &t.UserID); err != nil {
			return nil, err
		}
		deleted = append(deleted, t)
	}
	return deleted, rows.Err()
}
