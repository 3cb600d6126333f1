package repo

// pgxRow is the least interface shared by pgx.Row and pgx.Rows, so one scan
// helper per entity covers both single-row and list queries.
type pgxRow interface {
	Scan(dest ...any) error
}
