package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestDocumentPostgresRepository_Load(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDocumentPostgresRepository(db, "")

	mock.ExpectQuery(`SELECT body FROM ledger_documents WHERE name = \$1`).
		WithArgs(DefaultDocumentName).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow(`{"users":[{"id":1,"wallet_address":"0xABC","balance":10000,"created_at":"2025-01-01T00:00:00Z"}]}`))

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "0xABC", doc.Users[0].WalletAddress)
	assert.NotNil(t, doc.Transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgresRepository_LoadMissingRowInserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDocumentPostgresRepository(db, "ledger")

	mock.ExpectQuery(`SELECT body FROM ledger_documents`).
		WithArgs("ledger").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))
	mock.ExpectExec(`INSERT INTO ledger_documents`).
		WithArgs("ledger", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgresRepository_Errors(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("load", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT body FROM ledger_documents`).WillReturnError(dbErr)

		_, err := NewDocumentPostgresRepository(db, "").Load(context.Background())
		assert.ErrorIs(t, err, models.ErrStoreIO)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("save", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO ledger_documents`).WillReturnError(dbErr)

		err := NewDocumentPostgresRepository(db, "").Save(context.Background(), models.NewDocument())
		assert.ErrorIs(t, err, models.ErrStoreIO)
	})

	t.Run("migrate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ledger_documents`).WillReturnError(dbErr)

		err := NewDocumentPostgresRepository(db, "").Migrate(context.Background())
		assert.ErrorIs(t, err, models.ErrStoreIO)
	})
}

func TestDocumentPostgresRepository_Migrate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ledger_documents`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewDocumentPostgresRepository(db, "").Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDocumentPostgresRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	db := setupPostgres(t)
	ctx := context.Background()

	repo := NewDocumentPostgresRepository(db, "")
	require.NoError(t, repo.Migrate(ctx))

	uow := NewUnitOfWork(repo)
	accounts := NewAccountRepository(uow, models.DefaultInitialBalance)

	user, err := accounts.GetOrCreate(ctx, "0xABC")
	require.NoError(t, err)
	_, err = accounts.UpdateBalance(ctx, "0xABC", decimal.NewFromInt(5500))
	require.NoError(t, err)

	reloaded, err := NewAccountRepository(NewUnitOfWork(repo), models.DefaultInitialBalance).
		GetByWalletAddress(ctx, "0xABC")
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, user.ID, reloaded.ID)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(5500)))
}
