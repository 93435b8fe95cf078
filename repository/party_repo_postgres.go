package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"safeindiatransport/models"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

const partyColumns = `id, name, contact_person, phone, email, gstin,
	address_line1, address_line2, city, state, pincode, type, is_active, created_at, updated_at`

func (r *PostgresPartyRepo) Create(ctx context.Context, party *models.Party) error {
	if err := prepareParty(party); err != nil {
		return err
	}
	party.ID = uuid.NewString()

	_, err := r.DB.ExecContext(ctx, `INSERT INTO party (`+partyColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		party.ID, party.Name, party.ContactPerson, party.Phone, party.Email, party.GSTIN,
		party.AddressLine1, party.AddressLine2, party.City, party.State, party.Pincode,
		party.Type, party.IsActive, party.CreatedAt, party.UpdatedAt)
	return err
}

func (r *PostgresPartyRepo) GetByID(ctx context.Context, id string) (*models.Party, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+partyColumns+` FROM party WHERE id = $1`, id)
	party, err := scanParty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return party, nil
}

func (r *PostgresPartyRepo) List(ctx context.Context, onlyActive bool) ([]*models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM party ORDER BY name`
	if onlyActive {
		query = `SELECT ` + partyColumns + ` FROM party WHERE is_active ORDER BY name`
	}
	return r.listQuery(ctx, query)
}

func (r *PostgresPartyRepo) ListCustomers(ctx context.Context) ([]*models.Party, error) {
	return r.listQuery(ctx, `SELECT `+partyColumns+` FROM party
		WHERE is_active AND type IN ($1, $2) ORDER BY name`,
		models.PartyConsignee, models.PartyBoth)
}

func (r *PostgresPartyRepo) listQuery(ctx context.Context, query string, args ...interface{}) ([]*models.Party, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Party
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, party)
	}
	return out, rows.Err()
}

func (r *PostgresPartyRepo) Update(ctx context.Context, id string, party *models.Party) (*models.Party, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.ErrNotFound
	}

	if party.Name == "" {
		return nil, models.NewValidationError("party name is required")
	}
	if party.Type != "" && !models.ValidPartyType(party.Type) {
		return nil, models.NewValidationError("unknown party type: " + party.Type)
	}

	party.ID = id
	party.IsActive = existing.IsActive
	party.CreatedAt = existing.CreatedAt
	party.UpdatedAt = time.Now().UnixMilli()
	if party.Type == "" {
		party.Type = existing.Type
	}

	_, err = r.DB.ExecContext(ctx, `UPDATE party SET
		name=$1, contact_person=$2, phone=$3, email=$4, gstin=$5,
		address_line1=$6, address_line2=$7, city=$8, state=$9, pincode=$10,
		type=$11, updated_at=$12 WHERE id=$13`,
		party.Name, party.ContactPerson, party.Phone, party.Email, party.GSTIN,
		party.AddressLine1, party.AddressLine2, party.City, party.State, party.Pincode,
		party.Type, party.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (r *PostgresPartyRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE party SET is_active = FALSE, updated_at = $1 WHERE id = $2`,
		time.Now().UnixMilli(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanParty(row rowScanner) (*models.Party, error) {
	var p models.Party
	var contactPerson, phone, email, gstin sql.NullString
	var addr1, addr2, city, state, pincode sql.NullString

	err := row.Scan(&p.ID, &p.Name, &contactPerson, &phone, &email, &gstin,
		&addr1, &addr2, &city, &state, &pincode, &p.Type, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	setIfValid := func(dst **string, src sql.NullString) {
		if src.Valid {
			s := src.String
			*dst = &s
		}
	}
	setIfValid(&p.ContactPerson, contactPerson)
	setIfValid(&p.Phone, phone)
	setIfValid(&p.Email, email)
	setIfValid(&p.GSTIN, gstin)
	setIfValid(&p.AddressLine1, addr1)
	setIfValid(&p.AddressLine2, addr2)
	setIfValid(&p.City, city)
	setIfValid(&p.State, state)
	setIfValid(&p.Pincode, pincode)
	return &p, nil
}
