package repository

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

func f(v float64) *float64 { return &v }

func validInput() *models.NewBiltyInput {
	return &models.NewBiltyInput{
		ConsignorID:      "party-1",
		ConsigneeID:      "party-2",
		Origin:           "Delhi",
		Destination:      "Mumbai",
		GoodsDescription: "Machinery",
		NoOfPackages:     12,
		TotalWeightKg:    840,
		FreightAmount:    15000,
		OtherCharges:     f(500),
		GSTAmount:        f(2800),
		PaymentType:      models.PaymentToPay,
		CreatedBy:        "user-1",
	}
}

func TestBuildNewBilty(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bilty.BiltyNumber, "BLTY-"))
	assert.Equal(t, workflow.StatusCreated, bilty.Status)
	assert.Equal(t, 18300.0, bilty.TotalAmount)
	assert.Equal(t, bilty.Date, bilty.CreatedAt)

	require.Len(t, bilty.StatusHistory, 1)
	assert.Equal(t, workflow.StatusCreated, bilty.StatusHistory[0].Status)
	assert.Equal(t, bilty.CreatedAt, bilty.StatusHistory[0].ChangedAt)
}

func TestBuildNewBiltyValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.NewBiltyInput)
	}{
		{"missing consignor", func(in *models.NewBiltyInput) { in.ConsignorID = "" }},
		{"missing consignee", func(in *models.NewBiltyInput) { in.ConsigneeID = "" }},
		{"blank origin", func(in *models.NewBiltyInput) { in.Origin = "  " }},
		{"blank destination", func(in *models.NewBiltyInput) { in.Destination = "" }},
		{"negative packages", func(in *models.NewBiltyInput) { in.NoOfPackages = -1 }},
		{"bad payment type", func(in *models.NewBiltyInput) { in.PaymentType = "cheque" }},
		{"nan freight", func(in *models.NewBiltyInput) { in.FreightAmount = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(in)
			_, err := buildNewBilty(in)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func editFrom(b *models.Bilty) *models.EditableBiltyFields {
	return &models.EditableBiltyFields{
		ConsignorID:      b.ConsignorID,
		ConsigneeID:      b.ConsigneeID,
		Origin:           b.Origin,
		Destination:      b.Destination,
		GoodsDescription: b.GoodsDescription,
		NoOfPackages:     b.NoOfPackages,
		TotalWeightKg:    b.TotalWeightKg,
		FreightAmount:    b.FreightAmount,
		OtherCharges:     b.OtherCharges,
		GSTAmount:        b.GSTAmount,
		PaymentType:      b.PaymentType,
		Status:           b.Status,
	}
}

func TestApplyEditRecomputesTotal(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)

	fields := editFrom(bilty)
	fields.FreightAmount = 20000
	fields.OtherCharges = nil
	fields.GSTAmount = f(3600)

	require.NoError(t, applyEdit(bilty, fields))
	assert.Equal(t, 23600.0, bilty.TotalAmount)
	assert.Len(t, bilty.StatusHistory, 1, "no status change, no history entry")
}

func TestApplyEditStatusChangeAppendsHistory(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)

	fields := editFrom(bilty)
	fields.Status = workflow.StatusLoaded

	require.NoError(t, applyEdit(bilty, fields))
	assert.Equal(t, workflow.StatusLoaded, bilty.Status)
	require.Len(t, bilty.StatusHistory, 2)
	assert.Equal(t, workflow.StatusLoaded, bilty.StatusHistory[1].Status)
	assert.GreaterOrEqual(t, bilty.StatusHistory[1].ChangedAt, bilty.StatusHistory[0].ChangedAt)
}

func TestApplyEditRejectsBackwardTransition(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)
	require.NoError(t, applyTransition(bilty, workflow.StatusInTransit, nil, nil))

	fields := editFrom(bilty)
	fields.Status = workflow.StatusCreated

	err = applyEdit(bilty, fields)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Equal(t, workflow.StatusInTransit, bilty.Status, "failed edit leaves state untouched")
}

func TestApplyTransition(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)

	note := "picked up"
	loc := "Delhi depot"
	require.NoError(t, applyTransition(bilty, workflow.StatusLoaded, &note, &loc))

	assert.Equal(t, workflow.StatusLoaded, bilty.Status)
	require.Len(t, bilty.StatusHistory, 2)
	last := bilty.StatusHistory[1]
	assert.Equal(t, &note, last.Note)
	assert.Equal(t, &loc, last.Location)
}

func TestApplyTransitionTerminal(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)
	require.NoError(t, applyTransition(bilty, workflow.StatusCancelled, nil, nil))

	err = applyTransition(bilty, workflow.StatusLoaded, nil, nil)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Len(t, bilty.StatusHistory, 2)
}

func TestApplyTransitionUnknownStatus(t *testing.T) {
	bilty, err := buildNewBilty(validInput())
	require.NoError(t, err)

	err = applyTransition(bilty, "misplaced", nil, nil)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}
