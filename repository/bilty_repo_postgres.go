package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"safeindiatransport/models"
)

type PostgresBiltyRepo struct {
	DB *sql.DB
}

func NewPostgresBiltyRepo(db *sql.DB) *PostgresBiltyRepo {
	return &PostgresBiltyRepo{DB: db}
}

const biltyColumns = `id, bilty_number, date, consignor_id, consignee_id, origin, destination,
	vehicle_id, driver_id, goods_description, no_of_packages, total_weight_kg,
	freight_amount, other_charges, gst_amount, total_amount, payment_type,
	expected_delivery_at, status, public_share_id, created_by, created_at, updated_at`

func (r *PostgresBiltyRepo) Create(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error) {
	bilty, err := buildNewBilty(input)
	if err != nil {
		return nil, err
	}
	bilty.ID = uuid.NewString()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO bilty (`+biltyColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)`,
		bilty.ID, bilty.BiltyNumber, bilty.Date, bilty.ConsignorID, bilty.ConsigneeID,
		bilty.Origin, bilty.Destination, bilty.VehicleID, bilty.DriverID,
		bilty.GoodsDescription, bilty.NoOfPackages, bilty.TotalWeightKg,
		bilty.FreightAmount, bilty.OtherCharges, bilty.GSTAmount, bilty.TotalAmount,
		bilty.PaymentType, bilty.ExpectedDeliveryAt, bilty.Status, bilty.PublicShareID,
		bilty.CreatedBy, bilty.CreatedAt, bilty.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := insertHistory(ctx, tx, bilty.ID, bilty.StatusHistory); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *PostgresBiltyRepo) GetByID(ctx context.Context, id string) (*models.Bilty, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+biltyColumns+` FROM bilty WHERE id = $1`, id)
	bilty, err := scanBilty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if bilty.StatusHistory, err = r.loadHistory(ctx, id); err != nil {
		return nil, err
	}
	r.populateParties(ctx, bilty)
	return bilty, nil
}

func (r *PostgresBiltyRepo) List(ctx context.Context) ([]*models.Bilty, error) {
	return r.list(ctx, `SELECT `+biltyColumns+` FROM bilty ORDER BY date DESC`)
}

func (r *PostgresBiltyRepo) ListByConsignee(ctx context.Context, partyID string) ([]*models.Bilty, error) {
	return r.list(ctx, `SELECT `+biltyColumns+` FROM bilty WHERE consignee_id = $1 ORDER BY date DESC`, partyID)
}

func (r *PostgresBiltyRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Bilty, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Bilty
	for rows.Next() {
		bilty, err := scanBilty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bilty)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, b := range out {
		if b.StatusHistory, err = r.loadHistory(ctx, b.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresBiltyRepo) Update(ctx context.Context, id string, fields *models.EditableBiltyFields) (*models.Bilty, error) {
	bilty, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	historyLen := len(bilty.StatusHistory)
	if err := applyEdit(bilty, fields); err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE bilty SET
		consignor_id=$1, consignee_id=$2, origin=$3, destination=$4,
		goods_description=$5, no_of_packages=$6, total_weight_kg=$7,
		freight_amount=$8, other_charges=$9, gst_amount=$10, total_amount=$11,
		payment_type=$12, vehicle_id=$13, driver_id=$14,
		expected_delivery_at=$15, status=$16, updated_at=$17
		WHERE id=$18`,
		bilty.ConsignorID, bilty.ConsigneeID, bilty.Origin, bilty.Destination,
		bilty.GoodsDescription, bilty.NoOfPackages, bilty.TotalWeightKg,
		bilty.FreightAmount, bilty.OtherCharges, bilty.GSTAmount, bilty.TotalAmount,
		bilty.PaymentType, bilty.VehicleID, bilty.DriverID,
		bilty.ExpectedDeliveryAt, bilty.Status, bilty.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	if err := insertHistory(ctx, tx, id, bilty.StatusHistory[historyLen:]); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *PostgresBiltyRepo) UpdateStatus(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error) {
	bilty, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	historyLen := len(bilty.StatusHistory)
	if err := applyTransition(bilty, status, note, location); err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE bilty SET status=$1, updated_at=$2 WHERE id=$3`,
		bilty.Status, bilty.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	if err := insertHistory(ctx, tx, id, bilty.StatusHistory[historyLen:]); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *PostgresBiltyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bilty WHERE id = $1`, id)
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

func (r *PostgresBiltyRepo) EnsurePublicLink(ctx context.Context, biltyID string) (*models.PublicLink, error) {
	bilty, err := r.GetByID(ctx, biltyID)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	if bilty.PublicShareID != nil && *bilty.PublicShareID != "" {
		return &models.PublicLink{PublicID: *bilty.PublicShareID, BiltyID: biltyID}, nil
	}

	link := &models.PublicLink{
		PublicID:  uuid.NewString(),
		BiltyID:   biltyID,
		CreatedAt: time.Now().UnixMilli(),
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO bilty_public_link (public_id, bilty_id, created_at)
		VALUES ($1,$2,$3)`, link.PublicID, link.BiltyID, link.CreatedAt)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx, `UPDATE bilty SET public_share_id=$1 WHERE id=$2`, link.PublicID, biltyID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return link, nil
}

func (r *PostgresBiltyRepo) ResolvePublicLink(ctx context.Context, publicID string) (*models.Bilty, error) {
	var biltyID string
	err := r.DB.QueryRowContext(ctx,
		`SELECT bilty_id FROM bilty_public_link WHERE public_id = $1`, publicID).Scan(&biltyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, biltyID)
}

func (r *PostgresBiltyRepo) loadHistory(ctx context.Context, biltyID string) ([]models.StatusChange, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, note, location, changed_at
		FROM bilty_status_history WHERE bilty_id = $1 ORDER BY changed_at, id`, biltyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StatusChange
	for rows.Next() {
		var entry models.StatusChange
		var note, location sql.NullString
		if err := rows.Scan(&entry.Status, &note, &location, &entry.ChangedAt); err != nil {
			return nil, err
		}
		if note.Valid {
			entry.Note = &note.String
		}
		if location.Valid {
			entry.Location = &location.String
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *PostgresBiltyRepo) populateParties(ctx context.Context, b *models.Bilty) {
	parties := NewPostgresPartyRepo(r.DB)
	if p, err := parties.GetByID(ctx, b.ConsignorID); err == nil && p != nil {
		b.Consignor = p
	}
	if p, err := parties.GetByID(ctx, b.ConsigneeID); err == nil && p != nil {
		b.Consignee = p
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertHistory(ctx context.Context, tx execer, biltyID string, entries []models.StatusChange) error {
	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `INSERT INTO bilty_status_history
			(bilty_id, status, note, location, changed_at) VALUES ($1,$2,$3,$4,$5)`,
			biltyID, e.Status, e.Note, e.Location, e.ChangedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBilty(row rowScanner) (*models.Bilty, error) {
	var b models.Bilty
	var vehicleID, driverID, publicShareID sql.NullString
	var otherCharges, gstAmount sql.NullFloat64

	err := row.Scan(&b.ID, &b.BiltyNumber, &b.Date, &b.ConsignorID, &b.ConsigneeID,
		&b.Origin, &b.Destination, &vehicleID, &driverID,
		&b.GoodsDescription, &b.NoOfPackages, &b.TotalWeightKg,
		&b.FreightAmount, &otherCharges, &gstAmount, &b.TotalAmount,
		&b.PaymentType, &b.ExpectedDeliveryAt, &b.Status, &publicShareID,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if vehicleID.Valid {
		b.VehicleID = &vehicleID.String
	}
	if driverID.Valid {
		b.DriverID = &driverID.String
	}
	if publicShareID.Valid {
		b.PublicShareID = &publicShareID.String
	}
	if otherCharges.Valid {
		b.OtherCharges = &otherCharges.Float64
	}
	if gstAmount.Valid {
		b.GSTAmount = &gstAmount.Float64
	}
	b.Attachments = []string{}
	return &b, nil
}
