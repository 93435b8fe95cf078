package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

type BiltyRepository interface {
	Create(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error)
	GetByID(ctx context.Context, id string) (*models.Bilty, error)
	List(ctx context.Context) ([]*models.Bilty, error)
	ListByConsignee(ctx context.Context, partyID string) ([]*models.Bilty, error)
	Update(ctx context.Context, id string, fields *models.EditableBiltyFields) (*models.Bilty, error)
	UpdateStatus(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error)
	Delete(ctx context.Context, id string) error
	EnsurePublicLink(ctx context.Context, biltyID string) (*models.PublicLink, error)
	ResolvePublicLink(ctx context.Context, publicID string) (*models.Bilty, error)
}

// buildNewBilty validates a create payload and assembles the full record:
// number, date, initial status and first history entry. Nothing is written
// if validation fails.
func buildNewBilty(input *models.NewBiltyInput) (*models.Bilty, error) {
	if input.ConsignorID == "" || input.ConsigneeID == "" {
		return nil, models.NewValidationError("consignor and consignee are required")
	}
	if strings.TrimSpace(input.Origin) == "" || strings.TrimSpace(input.Destination) == "" {
		return nil, models.NewValidationError("origin and destination are required")
	}
	if input.NoOfPackages < 0 {
		return nil, models.NewValidationError("noOfPackages cannot be negative")
	}
	if !validPaymentType(input.PaymentType) {
		return nil, models.NewValidationError("unknown payment type: " + input.PaymentType)
	}

	total, err := models.ComputeTotal(input.FreightAmount, input.OtherCharges, input.GSTAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	note := "Bilty created"
	return &models.Bilty{
		BiltyNumber:        fmt.Sprintf("BLTY-%d", now),
		Date:               now,
		ConsignorID:        input.ConsignorID,
		ConsigneeID:        input.ConsigneeID,
		Origin:             input.Origin,
		Destination:        input.Destination,
		VehicleID:          input.VehicleID,
		DriverID:           input.DriverID,
		GoodsDescription:   input.GoodsDescription,
		NoOfPackages:       input.NoOfPackages,
		TotalWeightKg:      input.TotalWeightKg,
		FreightAmount:      input.FreightAmount,
		OtherCharges:       input.OtherCharges,
		GSTAmount:          input.GSTAmount,
		TotalAmount:        total,
		PaymentType:        input.PaymentType,
		ExpectedDeliveryAt: input.ExpectedDeliveryAt,
		Status:             workflow.StatusCreated,
		StatusHistory: []models.StatusChange{
			{Status: workflow.StatusCreated, Note: &note, ChangedAt: now},
		},
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attachments: []string{},
	}, nil
}

// applyEdit merges an edit payload into an existing bilty. The total is
// recomputed and a status change appends exactly one history entry, same
// as the dedicated transition path.
func applyEdit(b *models.Bilty, fields *models.EditableBiltyFields) error {
	if fields.ConsignorID == "" || fields.ConsigneeID == "" {
		return models.NewValidationError("consignor and consignee are required")
	}
	if strings.TrimSpace(fields.Origin) == "" || strings.TrimSpace(fields.Destination) == "" {
		return models.NewValidationError("origin and destination are required")
	}
	if fields.NoOfPackages < 0 {
		return models.NewValidationError("noOfPackages cannot be negative")
	}
	if !validPaymentType(fields.PaymentType) {
		return models.NewValidationError("unknown payment type: " + fields.PaymentType)
	}

	total, err := models.ComputeTotal(fields.FreightAmount, fields.OtherCharges, fields.GSTAmount)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	if fields.Status != b.Status {
		if !workflow.Valid(fields.Status) {
			return models.NewValidationError("unknown status: " + fields.Status)
		}
		if !workflow.CanTransition(b.Status, fields.Status) {
			return models.NewValidationError(
				fmt.Sprintf("cannot move bilty from %s to %s", b.Status, fields.Status))
		}
		note := "Status changed via edit"
		b.StatusHistory = append(b.StatusHistory, models.StatusChange{
			Status:    fields.Status,
			Note:      &note,
			ChangedAt: now,
		})
		b.Status = fields.Status
	}

	b.ConsignorID = fields.ConsignorID
	b.ConsigneeID = fields.ConsigneeID
	b.Origin = fields.Origin
	b.Destination = fields.Destination
	b.GoodsDescription = fields.GoodsDescription
	b.NoOfPackages = fields.NoOfPackages
	b.TotalWeightKg = fields.TotalWeightKg
	b.FreightAmount = fields.FreightAmount
	b.OtherCharges = fields.OtherCharges
	b.GSTAmount = fields.GSTAmount
	b.TotalAmount = total
	b.PaymentType = fields.PaymentType
	b.VehicleID = fields.VehicleID
	b.DriverID = fields.DriverID
	b.ExpectedDeliveryAt = fields.ExpectedDeliveryAt
	b.UpdatedAt = now
	return nil
}

// applyTransition performs a status-only move with an optional note/location.
func applyTransition(b *models.Bilty, status string, note, location *string) error {
	if !workflow.Valid(status) {
		return models.NewValidationError("unknown status: " + status)
	}
	if !workflow.CanTransition(b.Status, status) {
		return models.NewValidationError(
			fmt.Sprintf("cannot move bilty from %s to %s", b.Status, status))
	}

	now := time.Now().UnixMilli()
	b.StatusHistory = append(b.StatusHistory, models.StatusChange{
		Status:    status,
		Note:      note,
		Location:  location,
		ChangedAt: now,
	})
	b.Status = status
	b.UpdatedAt = now
	return nil
}

func validPaymentType(t string) bool {
	return t == models.PaymentToPay || t == models.PaymentPaid || t == models.PaymentToBeBilled
}
