package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var userColumns = []string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}

func newStoreWithMock(t *testing.T) (*Storage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewStorage(sqlx.NewDb(db, "sqlmock")), mock, db
}

func TestCreateUser_Success(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(email,\s*password_hash,\s*name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+.+$`

	mock.ExpectQuery(q).
		WithArgs("a@x.com", "hashed", "Alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "a@x.com", "hashed", "Alice", "user", time.Now(), time.Now()))

	user, err := store.CreateUser(context.Background(), "a@x.com", "hashed", "Alice")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if user.ID != 1 || user.Email != "a@x.com" || user.Role != "user" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", "Alice").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.CreateUser(context.Background(), "a@x.com", "hashed", "Alice")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateUser_OtherDBError(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", "Alice").
		WillReturnError(errors.New("db down"))

	_, err := store.CreateUser(context.Background(), "a@x.com", "hashed", "Alice")
	if err == nil || errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected plain db error, got %v", err)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.+\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "a@x.com", "hashed", "Alice", "user", time.Now(), time.Now()))

	user, err := store.GetUserByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if user.ID != 1 || user.PasswordHash != "hashed" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM users`).
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := store.GetUserByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUser_EmptyNameStoredAsNull(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "hashed", nil).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "a@x.com", "hashed", nil, "user", time.Now(), time.Now()))

	user, err := store.CreateUser(context.Background(), "a@x.com", "hashed", "")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if user.Name != nil {
		t.Fatalf("expected nil name, got %v", *user.Name)
	}
}
