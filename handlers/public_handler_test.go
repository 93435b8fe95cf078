package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

func TestTrackBilty(t *testing.T) {
	h := &PublicHandler{Repo: &trackStubRepo{bilty: &models.Bilty{
		BiltyNumber: "BLTY-42",
		Origin:      "Delhi",
		Destination: "Mumbai",
		Status:      workflow.StatusInTransit,
		TotalAmount: 18300,
		StatusHistory: []models.StatusChange{
			{Status: workflow.StatusCreated, ChangedAt: 100},
			{Status: workflow.StatusLoaded, ChangedAt: 200},
			{Status: workflow.StatusInTransit, ChangedAt: 300},
		},
		Consignee: &models.Party{Name: "Sharma Traders"},
	}}}

	rec := httptest.NewRecorder()
	h.TrackBilty(rec, httptest.NewRequest(http.MethodGet, "/public/bilty/pub-1", nil), "pub-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data publicBiltyView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "BLTY-42", resp.Data.BiltyNumber)
	assert.Equal(t, "Sharma Traders", resp.Data.ConsigneeName)
	assert.Empty(t, resp.Data.ConsignorName)

	require.Len(t, resp.Data.Timeline, len(workflow.Order))
	states := map[string]workflow.StepState{}
	for _, step := range resp.Data.Timeline {
		states[step.Status] = step.State
	}
	assert.Equal(t, workflow.StepDone, states[workflow.StatusCreated])
	assert.Equal(t, workflow.StepDone, states[workflow.StatusLoaded])
	assert.Equal(t, workflow.StepCurrent, states[workflow.StatusInTransit])
	assert.Equal(t, workflow.StepPending, states[workflow.StatusDelivered])
}

func TestTrackBiltyUnknownLink(t *testing.T) {
	h := &PublicHandler{Repo: &trackStubRepo{}}

	rec := httptest.NewRecorder()
	h.TrackBilty(rec, httptest.NewRequest(http.MethodGet, "/public/bilty/nope", nil), "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// trackStubRepo resolves every public id to one fixed bilty (or none).
type trackStubRepo struct {
	stubBiltyRepo
	bilty *models.Bilty
}

func (s *trackStubRepo) ResolvePublicLink(ctx context.Context, publicID string) (*models.Bilty, error) {
	return s.bilty, nil
}
