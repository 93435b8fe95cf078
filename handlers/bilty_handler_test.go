package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeindiatransport/auth"
	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

// stubBiltyRepo lets each test wire just the methods it exercises.
type stubBiltyRepo struct {
	create        func(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error)
	getByID       func(ctx context.Context, id string) (*models.Bilty, error)
	list          func(ctx context.Context) ([]*models.Bilty, error)
	listConsignee func(ctx context.Context, partyID string) ([]*models.Bilty, error)
	updateStatus  func(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error)
}

func (s *stubBiltyRepo) Create(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error) {
	return s.create(ctx, input)
}

func (s *stubBiltyRepo) GetByID(ctx context.Context, id string) (*models.Bilty, error) {
	return s.getByID(ctx, id)
}

func (s *stubBiltyRepo) List(ctx context.Context) ([]*models.Bilty, error) {
	return s.list(ctx)
}

func (s *stubBiltyRepo) ListByConsignee(ctx context.Context, partyID string) ([]*models.Bilty, error) {
	return s.listConsignee(ctx, partyID)
}

func (s *stubBiltyRepo) Update(ctx context.Context, id string, fields *models.EditableBiltyFields) (*models.Bilty, error) {
	return nil, models.ErrNotFound
}

func (s *stubBiltyRepo) UpdateStatus(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error) {
	return s.updateStatus(ctx, id, status, note, location)
}

func (s *stubBiltyRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubBiltyRepo) EnsurePublicLink(ctx context.Context, biltyID string) (*models.PublicLink, error) {
	return &models.PublicLink{PublicID: "pub-1", BiltyID: biltyID}, nil
}

func (s *stubBiltyRepo) ResolvePublicLink(ctx context.Context, publicID string) (*models.Bilty, error) {
	return nil, nil
}

func adminSession() *auth.Session {
	return &auth.Session{UserID: "user-1", Role: models.RoleAdmin}
}

func customerSession(partyID string) *auth.Session {
	return &auth.Session{UserID: "user-2", Role: models.RoleCustomer, PartyID: partyID}
}

func requestWithSession(method, target string, body string, sess *auth.Session) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if sess != nil {
		r = r.WithContext(auth.WithSession(r.Context(), sess))
	}
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateBiltyRequiresAdmin(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{}}

	rec := httptest.NewRecorder()
	h.CreateBilty(rec, requestWithSession(http.MethodPost, "/bilty", `{}`, customerSession("party-1")))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.CreateBilty(rec, requestWithSession(http.MethodPost, "/bilty", `{}`, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateBiltyStampsCreator(t *testing.T) {
	var got *models.NewBiltyInput
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		create: func(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error) {
			got = input
			return &models.Bilty{ID: "b-1", BiltyNumber: "BLTY-1"}, nil
		},
	}}

	body := `{"consignorId":"p-1","consigneeId":"p-2","origin":"Delhi","destination":"Mumbai","freightAmount":15000,"paymentType":"to_pay","createdBy":"spoofed"}`
	rec := httptest.NewRecorder()
	h.CreateBilty(rec, requestWithSession(http.MethodPost, "/bilty", body, adminSession()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.CreatedBy, "creator comes from the session, not the payload")

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestGetAllBiltyScopesCustomers(t *testing.T) {
	var askedParty string
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		listConsignee: func(ctx context.Context, partyID string) ([]*models.Bilty, error) {
			askedParty = partyID
			return []*models.Bilty{{BiltyNumber: "BLTY-1", ConsigneeID: partyID}}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.GetAllBilty(rec, requestWithSession(http.MethodGet, "/bilty", "", customerSession("party-7")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "party-7", askedParty)
}

func TestGetAllBiltyCustomerWithoutParty(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{}}

	rec := httptest.NewRecorder()
	h.GetAllBilty(rec, requestWithSession(http.MethodGet, "/bilty", "", customerSession("")))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestGetAllBiltyAppliesFilters(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		list: func(ctx context.Context) ([]*models.Bilty, error) {
			return []*models.Bilty{
				{BiltyNumber: "BLTY-1", Status: workflow.StatusInTransit},
				{BiltyNumber: "BLTY-2", Status: workflow.StatusDelivered},
			}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.GetAllBilty(rec, requestWithSession(http.MethodGet, "/bilty?status=in_transit", "", adminSession()))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []*models.Bilty `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "BLTY-1", resp.Data[0].BiltyNumber)
}

func TestGetAllBiltyRejectsAnonymous(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{}}

	rec := httptest.NewRecorder()
	h.GetAllBilty(rec, requestWithSession(http.MethodGet, "/bilty", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetBiltyByIDCustomerScope(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		getByID: func(ctx context.Context, id string) (*models.Bilty, error) {
			return &models.Bilty{ID: id, ConsigneeID: "party-1"}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.GetBiltyByID(rec, requestWithSession(http.MethodGet, "/bilty/b-1", "", customerSession("party-1")), "b-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetBiltyByID(rec, requestWithSession(http.MethodGet, "/bilty/b-1", "", customerSession("party-2")), "b-1")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetBiltyByIDNotFound(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		getByID: func(ctx context.Context, id string) (*models.Bilty, error) {
			return nil, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.GetBiltyByID(rec, requestWithSession(http.MethodGet, "/bilty/missing", "", adminSession()), "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusValidationError(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{
		updateStatus: func(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error) {
			return nil, models.NewValidationError("cannot move bilty from delivered to loaded")
		},
	}}

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, requestWithSession(http.MethodPost, "/bilty/b-1/status", `{"status":"loaded"}`, adminSession()), "b-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "cannot move bilty")
}

func TestShareBiltyBuildsPublicURL(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{}, PublicBaseURL: "https://track.example.com"}

	rec := httptest.NewRecorder()
	h.ShareBilty(rec, requestWithSession(http.MethodPost, "/bilty/b-1/share", "", adminSession()), "b-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pub-1", resp.Data["publicId"])
	assert.Equal(t, "https://track.example.com/public/bilty/pub-1", resp.Data["url"])
}

func TestDeleteBiltyMissingID(t *testing.T) {
	h := &BiltyHandler{Repo: &stubBiltyRepo{}}

	rec := httptest.NewRecorder()
	h.DeleteBilty(rec, requestWithSession(http.MethodDelete, "/bilty", "", adminSession()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
