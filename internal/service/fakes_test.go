package service

import (
	"context"
	"sort"
	"time"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory fakes implementing the repo contracts: wrong-owner lookups
// surface pgx.ErrNoRows and deletes report zero rows, same as Postgres.

type fakeNoteRepo struct {
	seq   int64
	items map[int64]dom.Note
}

func newFakeNoteRepo() *fakeNoteRepo { return &fakeNoteRepo{items: map[int64]dom.Note{}} }

func (f *fakeNoteRepo) ListByOwner(_ context.Context, userID int64) ([]dom.Note, error) {
	var out []dom.Note
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, userID, id int64) (dom.Note, error) {
	n, ok := f.items[id]
	if !ok || n.UserID != userID {
		return dom.Note{}, pgx.ErrNoRows
	}
	return n, nil
}

func (f *fakeNoteRepo) Insert(_ context.Context, n dom.Note) (dom.Note, error) {
	f.seq++
	now := time.Now().UTC()
	n.ID = f.seq
	n.CreatedAt = now
	n.UpdatedAt = now
	f.items[n.ID] = n
	return n, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, userID, id int64, n dom.Note) (dom.Note, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return dom.Note{}, pgx.ErrNoRows
	}
	n.ID = id
	n.UserID = userID
	n.CreatedAt = cur.CreatedAt
	n.UpdatedAt = time.Now().UTC()
	f.items[id] = n
	return n, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, userID, id int64) (int64, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

type fakeBookmarkRepo struct {
	seq   int64
	items map[int64]dom.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo { return &fakeBookmarkRepo{items: map[int64]dom.Bookmark{}} }

func (f *fakeBookmarkRepo) ListByOwner(_ context.Context, userID int64) ([]dom.Bookmark, error) {
	var out []dom.Bookmark
	for _, b := range f.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeBookmarkRepo) GetByID(_ context.Context, userID, id int64) (dom.Bookmark, error) {
	b, ok := f.items[id]
	if !ok || b.UserID != userID {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	return b, nil
}

func (f *fakeBookmarkRepo) Insert(_ context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	f.seq++
	now := time.Now().UTC()
	b.ID = f.seq
	b.CreatedAt = now
	b.UpdatedAt = now
	f.items[b.ID] = b
	return b, nil
}

func (f *fakeBookmarkRepo) Update(_ context.Context, userID, id int64, b dom.Bookmark) (dom.Bookmark, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	b.ID = id
	b.UserID = userID
	b.CreatedAt = cur.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	f.items[id] = b
	return b, nil
}

func (f *fakeBookmarkRepo) Delete(_ context.Context, userID, id int64) (int64, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

type fakeTodoRepo struct {
	seq   int64
	items map[int64]dom.Todo
}

func newFakeTodoRepo() *fakeTodoRepo { return &fakeTodoRepo{items: map[int64]dom.Todo{}} }

func (f *fakeTodoRepo) ListByOwner(_ context.Context, userID int64) ([]dom.Todo, error) {
	var out []dom.Todo
	for _, t := range f.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, userID, id int64) (dom.Todo, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeTodoRepo) Insert(_ context.Context, t dom.Todo) (dom.Todo, error) {
	f.seq++
	now := time.Now().UTC()
	t.ID = f.seq
	t.CreatedAt = now
	t.UpdatedAt = now
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, userID, id int64, t dom.Todo) (dom.Todo, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.ID = id
	t.UserID = userID
	t.CreatedAt = cur.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	f.items[id] = t
	return t, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, userID, id int64) (int64, error) {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

type fakeUserRepo struct {
	seq     int64
	byEmail map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{byEmail: map[string]dom.User{}} }

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash, name, provider string) (dom.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	f.seq++
	now := time.Now().UTC()
	u := dom.User{
		ID:           f.seq,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Provider:     provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.byEmail[email] = u
	return u, nil
}
