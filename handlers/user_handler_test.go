package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeindiatransport/models"
)

// stubUserRepo keeps users in memory, keyed by email.
type stubUserRepo struct {
	users map[string]*models.AppUser
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.AppUser{}}
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	stored := *user
	s.users[user.Email] = &stored
	return nil
}

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	return s.users[email], nil
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id string) (*models.AppUser, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestSignupIgnoresRoleWithoutAdminSession(t *testing.T) {
	repo := newStubUserRepo()
	h := &UserHandler{Repo: repo}

	// Anonymous caller asks for an admin account.
	body := `{"name":"Mallory","email":"mallory@example.com","password":"secret","role":"admin"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, requestWithSession(http.MethodPost, "/signup", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	stored := repo.users["mallory@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleCustomer, stored.Role, "open signup never grants admin")
}

func TestSignupCustomerSessionCannotEscalate(t *testing.T) {
	repo := newStubUserRepo()
	h := &UserHandler{Repo: repo}

	body := `{"name":"Mallory","email":"mallory@example.com","password":"secret","role":"admin"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, requestWithSession(http.MethodPost, "/signup", body, customerSession("party-1")))

	assert.Equal(t, http.StatusCreated, rec.Code)
	stored := repo.users["mallory@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleCustomer, stored.Role)
}

func TestSignupAdminSessionAssignsRole(t *testing.T) {
	repo := newStubUserRepo()
	h := &UserHandler{Repo: repo}

	body := `{"name":"New Admin","email":"ops2@example.com","password":"secret","role":"admin"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, requestWithSession(http.MethodPost, "/signup", body, adminSession()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	stored := repo.users["ops2@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestSignupAdminSessionRejectsUnknownRole(t *testing.T) {
	h := &UserHandler{Repo: newStubUserRepo()}

	body := `{"name":"X","email":"x@example.com","password":"secret","role":"superuser"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, requestWithSession(http.MethodPost, "/signup", body, adminSession()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["taken@example.com"] = &models.AppUser{ID: "u-1", Email: "taken@example.com"}
	h := &UserHandler{Repo: repo}

	body := `{"name":"Dup","email":"taken@example.com","password":"secret"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, requestWithSession(http.MethodPost, "/signup", body, nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
