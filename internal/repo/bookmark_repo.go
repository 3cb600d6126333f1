package repo

import (
	"context"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGBookmarkRepo persists bookmarks in Postgres, owner-scoped like PGNoteRepo.
type PGBookmarkRepo struct {
	db *pgxpool.Pool
}

func NewPGBookmarkRepo(db *pgxpool.Pool) *PGBookmarkRepo {
	return &PGBookmarkRepo{db: db}
}

const bookmarkColumns = `id, user_id, title, url, description, tags, created_at, updated_at`

func scanBookmark(row pgxRow, b *dom.Bookmark) error {
	return row.Scan(&b.ID, &b.UserID, &b.Title, &b.URL, &b.Description, &b.Tags, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PGBookmarkRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Bookmark
	for rows.Next() {
		var b dom.Bookmark
		if err := scanBookmark(rows, &b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PGBookmarkRepo) GetByID(ctx context.Context, userID, id int64) (dom.Bookmark, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks WHERE id = $1 AND user_id = $2`
	var b dom.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, id, userID), &b)
	return b, err
}

func (r *PGBookmarkRepo) Insert(ctx context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	query := `
		INSERT INTO bookmarks (user_id, title, url, description, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bookmarkColumns
	var out dom.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, b.UserID, b.Title, b.URL, b.Description, b.Tags), &out)
	return out, err
}

func (r *PGBookmarkRepo) Update(ctx context.Context, userID, id int64, b dom.Bookmark) (dom.Bookmark, error) {
	query := `
		UPDATE bookmarks SET title = $3, url = $4, description = $5, tags = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bookmarkColumns
	var out dom.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, id, userID, b.Title, b.URL, b.Description, b.Tags), &out)
	return out, err
}

func (r *PGBookmarkRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
