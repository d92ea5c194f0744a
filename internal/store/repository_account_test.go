package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/models"
	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	findAccountSQL = regexp.QuoteMeta("SELECT username, password_hash, created_at FROM accounts WHERE username = ")
	insertSQL      = regexp.QuoteMeta("INSERT INTO accounts (username,password_hash) VALUES (")
)

func newTestAccountRepo(t *testing.T, driver string) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, driver: driver, logger: logger.Nop()}
	switch driver {
	case config.DriverMySQL:
		db.placeholder = squirrel.Question
		db.errorClassificator = NewMySQLErrorClassifier()
	case config.DriverSQLite:
		db.placeholder = squirrel.Question
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.placeholder = squirrel.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	repo := NewAccountRepository(db, logger.Nop()).(*accountRepository)
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestFindAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"username", "password_hash", "created_at"}).
		AddRow("alice", "$2a$10$hash", created)
	mock.ExpectQuery(findAccountSQL + regexp.QuoteMeta("$1")).
		WithArgs("alice").
		WillReturnRows(rows)

	account, err := repo.FindAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Account{Username: "alice", PasswordHash: "$2a$10$hash", CreatedAt: created}, account)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccount_QuestionPlaceholder(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverMySQL)

	rows := sqlmock.NewRows([]string{"username", "password_hash", "created_at"}).
		AddRow("alice", "hash", time.Now())
	mock.ExpectQuery(findAccountSQL + regexp.QuoteMeta("?")).
		WithArgs("alice").
		WillReturnRows(rows)

	_, err := repo.FindAccount(context.Background(), "alice")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccount_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectQuery(findAccountSQL).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "created_at"}))

	_, err := repo.FindAccount(context.Background(), "bob")
	require.ErrorIs(t, err, ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccount_StoreUnavailable(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectQuery(findAccountSQL).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindAccount(context.Background(), "alice")
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFindAccount_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectQuery(findAccountSQL).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindAccount(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.False(t, errors.Is(err, ErrAccountNotFound))
	assert.False(t, errors.Is(err, ErrStoreUnavailable))
}

func TestFindAccount_ScanError(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"username"}).AddRow("alice")
	mock.ExpectQuery(findAccountSQL).WillReturnRows(rows)

	_, err := repo.FindAccount(context.Background(), "alice")
	require.Error(t, err)
}

func TestInsertAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectExec(insertSQL + regexp.QuoteMeta("$1,$2)")).
		WithArgs("alice", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertAccount(context.Background(), models.Account{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAccount_Conflict(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		err    error
	}{
		{name: "postgres unique violation", driver: config.DriverPostgres, err: pgError(pgerrcode.UniqueViolation)},
		{name: "mysql duplicate entry", driver: config.DriverMySQL, err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'PRIMARY'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t, tt.driver)

			mock.ExpectExec(insertSQL).
				WithArgs("alice", sqlmock.AnyArg()).
				WillReturnError(tt.err)

			err := repo.InsertAccount(context.Background(), models.Account{Username: "alice", PasswordHash: "other"})
			require.ErrorIs(t, err, ErrUsernameTaken)
		})
	}
}

func TestInsertAccount_StoreUnavailable(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverMySQL)

	mock.ExpectExec(insertSQL).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1040, Message: "Too many connections"})

	err := repo.InsertAccount(context.Background(), models.Account{Username: "alice", PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestInsertAccount_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectExec(insertSQL).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("syntax"))

	err := repo.InsertAccount(context.Background(), models.Account{Username: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindAccount_ContextDeadline(t *testing.T) {
	repo, mock := newTestAccountRepo(t, config.DriverPostgres)

	mock.ExpectQuery(findAccountSQL).
		WithArgs("alice").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.FindAccount(context.Background(), "alice")
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}
