package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, "")
	assert.Equal(t, defaultMigrationsPath, runner.migrationsPath)

	runner = NewMigrationRunner(db, "/opt/bankpulse/migrations")
	assert.Equal(t, "/opt/bankpulse/migrations", runner.migrationsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, "").WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, "").WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db, "").WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewMigrationRunner(db, "/nonexistent/path/to/migrations").RunMigrations()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRun_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db, "").Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestSetupTestDB_CreatesAggregateTables(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range aggregateTables {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestWaitForDatabase_StopsOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	cancel()

	err = NewMigrationRunner(db, "").WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
