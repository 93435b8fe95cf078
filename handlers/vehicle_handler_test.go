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
)

// stubVehicleRepo keeps vehicles in insertion order.
type stubVehicleRepo struct {
	vehicles []*models.Vehicle
}

func (s *stubVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = "v-1"
	vehicle.IsActive = true
	s.vehicles = append(s.vehicles, vehicle)
	return nil
}

func (s *stubVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (s *stubVehicleRepo) List(ctx context.Context, onlyActive bool) ([]*models.Vehicle, error) {
	if !onlyActive {
		return s.vehicles, nil
	}
	var out []*models.Vehicle
	for _, v := range s.vehicles {
		if v.IsActive {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestCreateVehicleRequiresAdmin(t *testing.T) {
	h := &VehicleHandler{Repo: &stubVehicleRepo{}}

	rec := httptest.NewRecorder()
	h.CreateVehicle(rec, requestWithSession(http.MethodPost, "/vehicle", `{"vehicleNumber":"MH12AB1234"}`, customerSession("party-1")))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateVehicle(t *testing.T) {
	repo := &stubVehicleRepo{}
	h := &VehicleHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.CreateVehicle(rec, requestWithSession(http.MethodPost, "/vehicle", `{"vehicleNumber":"MH12AB1234","ownerName":"R. Singh"}`, adminSession()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.vehicles, 1)
	assert.Equal(t, "MH12AB1234", repo.vehicles[0].VehicleNumber)
}

func TestGetAllVehicles(t *testing.T) {
	owner := "R. Singh"
	repo := &stubVehicleRepo{vehicles: []*models.Vehicle{
		{ID: "v-1", VehicleNumber: "MH12AB1234", OwnerName: &owner, IsActive: true},
		{ID: "v-2", VehicleNumber: "DL8CX4821", IsActive: false},
	}}
	h := &VehicleHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.GetAllVehicles(rec, requestWithSession(http.MethodGet, "/vehicle", "", adminSession()))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []*models.Vehicle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1, "retired vehicles are hidden by default")
	assert.Equal(t, "MH12AB1234", resp.Data[0].VehicleNumber)
}

func TestGetVehicleByIDNotFound(t *testing.T) {
	h := &VehicleHandler{Repo: &stubVehicleRepo{}}

	rec := httptest.NewRecorder()
	h.GetVehicleByID(rec, requestWithSession(http.MethodGet, "/vehicle/missing", "", adminSession()), "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
