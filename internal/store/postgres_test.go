package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresWithPool(mock), mock
}

func TestPostgresStore_SaveAudit(t *testing.T) {
	st, mock := newMockPostgres(t)

	a := testAudit(t, "Acme")
	mock.ExpectExec(`INSERT INTO audits .+ ON CONFLICT`).
		WithArgs(a.ID, a.Client, string(a.Status), a.Archived, pgxmock.AnyArg(), a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, st.SaveAudit(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAudit(t *testing.T) {
	st, mock := newMockPostgres(t)

	a := testAudit(t, "Acme")
	data, err := json.Marshal(a)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT data FROM audits WHERE id`).
		WithArgs(a.ID).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	got, err := st.GetAudit(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Acme", got.Client)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAuditMissing(t *testing.T) {
	st, mock := newMockPostgres(t)

	mock.ExpectQuery(`SELECT data FROM audits WHERE id`).
		WithArgs("no-such-id").
		WillReturnError(pgx.ErrNoRows)

	_, err := st.GetAudit(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAudits(t *testing.T) {
	st, mock := newMockPostgres(t)

	a := testAudit(t, "Acme")
	b := testAudit(t, "Acme")
	aData, err := json.Marshal(a)
	require.NoError(t, err)
	bData, err := json.Marshal(b)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT data FROM audits WHERE true AND client = \$1 AND archived = false ORDER BY updated_at DESC LIMIT \$2`).
		WithArgs("Acme", 100).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(bData).AddRow(aData))

	audits, err := st.ListAudits(context.Background(), AuditFilter{Client: "Acme"})
	require.NoError(t, err)
	require.Len(t, audits, 2)
	assert.Equal(t, b.ID, audits[0].ID)
	assert.Equal(t, a.ID, audits[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	st, mock := newMockPostgres(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS audits`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, st.Migrate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
