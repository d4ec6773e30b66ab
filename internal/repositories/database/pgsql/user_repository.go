package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, password_hash, last_company_id,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.LastCompanyID,
		&u.RefreshTokenHash, &u.RefreshTokenExpiryTime,
		&u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapReadError(err, "find user by id")
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, mapReadError(err, "find user by email")
	}
	return user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	).Scan(&user.UserID)
	if err != nil {
		return nil, mapWriteError(err, "insert user")
	}
	return &user, nil
}

func (r *PgxUserRepository) UpdateLastCompany(ctx context.Context, userID int64, companyID int64) error {
	query := `UPDATE users SET last_company_id = $1, last_updated_at = now() WHERE user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, companyID, userID)
	if err != nil {
		return mapWriteError(err, "update last company")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = now()
		WHERE user_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, tokenHash, expiresAt, userID)
	if err != nil {
		return mapWriteError(err, "update refresh token")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
