package repo

import (
	"context"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGNoteRepo persists notes in Postgres. Every query is scoped by user_id so
// a row belonging to another user behaves exactly like a missing row.
type PGNoteRepo struct {
	db *pgxpool.Pool
}

func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

const noteColumns = `id, user_id, title, content, category, created_at, updated_at`

func scanNote(row pgxRow, n *dom.Note) error {
	return row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.CreatedAt, &n.UpdatedAt)
}

func (r *PGNoteRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Note
	for rows.Next() {
		var n dom.Note
		if err := scanNote(rows, &n); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNoteRepo) GetByID(ctx context.Context, userID, id int64) (dom.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes WHERE id = $1 AND user_id = $2`
	var n dom.Note
	err := scanNote(r.db.QueryRow(ctx, query, id, userID), &n)
	return n, err
}

func (r *PGNoteRepo) Insert(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + noteColumns
	var out dom.Note
	err := scanNote(r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Content, n.Category), &out)
	return out, err
}

func (r *PGNoteRepo) Update(ctx context.Context, userID, id int64, n dom.Note) (dom.Note, error) {
	query := `
		UPDATE notes SET title = $3, content = $4, category = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + noteColumns
	var out dom.Note
	err := scanNote(r.db.QueryRow(ctx, query, id, userID, n.Title, n.Content, n.Category), &out)
	return out, err
}

func (r *PGNoteRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
