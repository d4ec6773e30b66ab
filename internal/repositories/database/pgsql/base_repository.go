package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/middleware"
)

// DBConn is the subset of pgxpool.Pool the repositories use. Tests substitute
// a fault-injecting implementation to exercise transaction failure paths.
type DBConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ DBConn = (*pgxpool.Pool)(nil)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool DBConn
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrPersistence, err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to defer after a successful commit:
// pgx reports ErrTxClosed then, which is expected and ignored. Any other
// rollback failure is logged, since the caller is already unwinding an error.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		middleware.GetLoggerFromCtx(ctx).Warn("Transaction rollback failed", slog.String("error", err.Error()))
	}
}

// mapWriteError translates a postgres write failure into the error taxonomy.
// Integrity violations (SQLSTATE class 23: unique, foreign key, not null,
// check) surface as ErrConstraintViolation; everything else is a generic
// persistence failure. Writes are never retried here.
func mapWriteError(err error, operation string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s: %s", apperrors.ErrConstraintViolation, operation, pgErr.Message)
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrPersistence, operation, err)
}

// mapReadError translates a read failure, turning pgx.ErrNoRows into the
// shared not-found sentinel.
func mapReadError(err error, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrPersistence, operation, err)
}
