package repository

import (
	"context"
	"strings"

	"safeindiatransport/models"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context, onlyActive bool) ([]*models.Vehicle, error)
}

func prepareVehicle(v *models.Vehicle) error {
	if strings.TrimSpace(v.VehicleNumber) == "" {
		return models.NewValidationError("vehicle number is required")
	}
	v.IsActive = true
	return nil
}
