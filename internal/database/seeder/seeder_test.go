package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"jobmatch/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	execs      []string
	committed  bool
	rolledBack bool
	failOn     string
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	if t.failOn != "" && strings.Contains(query, t.failOn) {
		return 0, errors.New("boom")
	}
	t.execs = append(t.execs, query)
	return 1, nil
}
func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row        { return nil }
func (t *fakeTx) Commit(context.Context) error                                 { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error                               { t.rolledBack = true; return nil }

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error)          { return 0, nil }
func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row        { return nil }
func (d *fakeDB) Ping(context.Context) error                                   { return nil }
func (d *fakeDB) Close() error                                                 { return nil }
func (d *fakeDB) Begin(context.Context) (database.Tx, error)                   { return d.tx, nil }
func (d *fakeDB) SQLDB() *sql.DB                                               { return nil }

func TestDemoJobsSeeder_InsertsCompaniesAndJobs(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}

	err := Runner{Seeders: Defaults()}.Run(context.Background(), db)
	require.NoError(t, err)

	assert.True(t, db.tx.committed)
	assert.Len(t, db.tx.execs, 2*len(demoJobs))
}

func TestDemoJobsSeeder_PropagatesErrors(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{failOn: "INSERT INTO jobs"}}

	err := Runner{Seeders: Defaults()}.Run(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed demo_jobs")
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestRunner_NilDB(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
}
