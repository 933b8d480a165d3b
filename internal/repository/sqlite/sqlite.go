package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/repository/sqlite/migrations"
)

// DB bundles the SQLite connection with its repositories.
type DB struct {
	SqlDB *sql.DB

	users    *UserRepository
	profiles *ProfileRepository
	posts    *PostRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign key enforcement; the cascade deletes on
// account removal depend on the latter.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = &UserRepository{db: sqlDB}
	db.profiles = &ProfileRepository{db: sqlDB}
	db.posts = &PostRepository{db: sqlDB}
	return db, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Users() domain.UserRepository       { return db.users }
func (db *DB) Profiles() domain.ProfileRepository { return db.profiles }
func (db *DB) Posts() domain.PostRepository       { return db.posts }
