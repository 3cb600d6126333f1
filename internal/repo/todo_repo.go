package repo

import (
	"context"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGTodoRepo persists todos in Postgres, owner-scoped like PGNoteRepo.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

const todoColumns = `id, user_id, text, completed, deadline, created_at, updated_at`

func scanTodo(row pgxRow, t *dom.Todo) error {
	return row.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.Deadline, &t.CreatedAt, &t.UpdatedAt)
}

func (r *PGTodoRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := scanTodo(rows, &t); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos WHERE id = $1 AND user_id = $2`
	var t dom.Todo
	err := scanTodo(r.db.QueryRow(ctx, query, id, userID), &t)
	return t, err
}

func (r *PGTodoRepo) Insert(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (user_id, text, completed, deadline)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + todoColumns
	var out dom.Todo
	err := scanTodo(r.db.QueryRow(ctx, query, t.UserID, t.Text, t.Completed, t.Deadline), &out)
	return out, err
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id int64, t dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET text = $3, completed = $4, deadline = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	var out dom.Todo
	err := scanTodo(r.db.QueryRow(ctx, query, id, userID, t.Text, t.Completed, t.Deadline), &out)
	return out, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
