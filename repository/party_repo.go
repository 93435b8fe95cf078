package repository

import (
	"context"
	"strings"
	"time"

	"safeindiatransport/models"
)

type PartyRepository interface {
	Create(ctx context.Context, party *models.Party) error
	GetByID(ctx context.Context, id string) (*models.Party, error)
	List(ctx context.Context, onlyActive bool) ([]*models.Party, error)
	ListCustomers(ctx context.Context) ([]*models.Party, error)
	Update(ctx context.Context, id string, party *models.Party) (*models.Party, error)
	Deactivate(ctx context.Context, id string) error
}

// prepareParty validates and stamps a party before its first write.
func prepareParty(p *models.Party) error {
	if strings.TrimSpace(p.Name) == "" {
		return models.NewValidationError("party name is required")
	}
	if p.Type == "" {
		p.Type = models.PartyBoth
	}
	if !models.ValidPartyType(p.Type) {
		return models.NewValidationError("unknown party type: " + p.Type)
	}

	now := time.Now().UnixMilli()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}
