package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"safeindiatransport/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

const userColumns = `id, name, email, phone, role, party_id, password_hash, is_active, created_at`

func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().UnixMilli()
	}
	user.IsActive = true

	_, err := r.DB.ExecContext(ctx, `INSERT INTO app_user (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		user.ID, user.Name, user.Email, user.Phone, user.Role, user.PartyID,
		user.Password, user.IsActive, user.CreatedAt)
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM app_user WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id string) (*models.AppUser, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row rowScanner) (*models.AppUser, error) {
	var u models.AppUser
	var phone, partyID sql.NullString

	err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &u.Role, &partyID,
		&u.Password, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if phone.Valid {
		u.Phone = &phone.String
	}
	if partyID.Valid {
		u.PartyID = &partyID.String
	}
	return &u, nil
}
