package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"safeindiatransport/models"
)

type PostgresVehicleRepo struct {
	DB *sql.DB
}

func NewPostgresVehicleRepo(db *sql.DB) *PostgresVehicleRepo {
	return &PostgresVehicleRepo{DB: db}
}

const vehicleColumns = `id, vehicle_number, type, capacity_kg, owner_name, is_active`

func (r *PostgresVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := prepareVehicle(vehicle); err != nil {
		return err
	}
	vehicle.ID = uuid.NewString()

	_, err := r.DB.ExecContext(ctx, `INSERT INTO vehicle (`+vehicleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		vehicle.ID, vehicle.VehicleNumber, vehicle.Type, vehicle.CapacityKg,
		vehicle.OwnerName, vehicle.IsActive)
	return err
}

func (r *PostgresVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicle WHERE id = $1`, id)
	vehicle, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *PostgresVehicleRepo) List(ctx context.Context, onlyActive bool) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicle ORDER BY vehicle_number`
	if onlyActive {
		query = `SELECT ` + vehicleColumns + ` FROM vehicle WHERE is_active ORDER BY vehicle_number`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, vehicle)
	}
	return out, rows.Err()
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	var v models.Vehicle
	var vtype, owner sql.NullString
	var capacity sql.NullFloat64

	err := row.Scan(&v.ID, &v.VehicleNumber, &vtype, &capacity, &owner, &v.IsActive)
	if err != nil {
		return nil, err
	}

	if vtype.Valid {
		v.Type = &vtype.String
	}
	if capacity.Valid {
		v.CapacityKg = &capacity.Float64
	}
	if owner.Valid {
		v.OwnerName = &owner.String
	}
	return &v, nil
}
