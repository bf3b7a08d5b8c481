package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/curiata/coreiq/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS audits (
	id         TEXT PRIMARY KEY,
	client     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'DRAFT',
	archived   INTEGER NOT NULL DEFAULT 0,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_audits_client ON audits(client);
CREATE INDEX IF NOT EXISTS idx_audits_archived ON audits(archived);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAudit(ctx context.Context, a *model.Audit) error {
	data, err := json.Marshal(a)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal audit")
	}

	archived := 0
	if a.Archived {
		archived = 1
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audits (id, client, status, archived, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET client = excluded.client, status = excluded.status,
		   archived = excluded.archived, data = excluded.data, updated_at = excluded.updated_at`,
		a.ID, a.Client, string(a.Status), archived, string(data), a.UpdatedAt,
	)
	return eris.Wrapf(err, "sqlite: save audit %s", a.ID)
}

func (s *SQLiteStore) GetAudit(ctx context.Context, id string) (*model.Audit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT data FROM audits WHERE id = ?`,
		id,
	)

	var data string
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("audit not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get audit %s", id)
	}
	return unpackAudit([]byte(data))
}

func (s *SQLiteStore) ListAudits(ctx context.Context, filter AuditFilter) ([]model.Audit, error) {
	query := `SELECT data FROM audits WHERE 1=1`
	var args []any

	if filter.Client != "" {
		query += ` AND client = ?`
		args = append(args, filter.Client)
	}
	if !filter.IncludeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY updated_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list audits")
	}
	defer rows.Close()

	var audits []model.Audit
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan audit")
		}
		a, err := unpackAudit([]byte(data))
		if err != nil {
			return nil, err
		}
		audits = append(audits, *a)
	}
	return audits, eris.Wrap(rows.Err(), "sqlite: list audits iterate")
}

// unpackAudit decodes the stored JSON document. Answer decoding tolerates
// malformed scores, so old rows with bad values still load.
func unpackAudit(data []byte) (*model.Audit, error) {
	var a model.Audit
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal audit")
	}
	return &a, nil
}
