package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/chamados-hub/apiserver/internal/services"
	"github.com/chamados-hub/apiserver/internal/store"
	"github.com/chamados-hub/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	nextID int
	users  map[int]types.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int]types.User)}
}

func (m *memUserRepo) List(ctx context.Context) ([]types.User, error) {
	users := make([]types.User, 0, len(m.users))
	for id := 1; id < m.nextID; id++ {
		if user, ok := m.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = nowStamp()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return user, nil
}

func newUserTestRouter(repo *memUserRepo) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/api/usuarios", func(r chi.Router) {
		UserRouter(r, services.NewUserService(repo))
	})
	return router
}

func TestCreateUser(t *testing.T) {
	repo := newMemUserRepo()
	router := newUserTestRouter(repo)

	rec := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]any{
		"name":     "Maria Souza",
		"email":    "maria@example.com",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Maria Souza", created.Name)
	assert.Equal(t, types.RoleStandard, created.Role)
	assert.Empty(t, created.PasswordHash, "hash must never be serialized")

	stored := repo.users[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	router := newUserTestRouter(repo)

	body := map[string]any{"name": "Maria", "email": "maria@example.com", "password": "x1"}
	rec := doRequest(t, router, http.MethodPost, "/api/usuarios", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/usuarios", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email já cadastrado", decodeError(t, rec).Erro)
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"email": "a@b.com", "password": "x"}},
		{name: "missing email", body: map[string]any{"name": "A", "password": "x"}},
		{name: "missing password", body: map[string]any{"name": "A", "email": "a@b.com"}},
		{name: "invalid role", body: map[string]any{"name": "A", "email": "a@b.com", "password": "x", "role": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemUserRepo()
			router := newUserTestRouter(repo)

			rec := doRequest(t, router, http.MethodPost, "/api/usuarios", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, repo.users)
		})
	}
}

func TestGetUser(t *testing.T) {
	repo := newMemUserRepo()
	router := newUserTestRouter(repo)

	rec := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]any{
		"name":     "João",
		"email":    "joao@example.com",
		"password": "x1",
		"role":     types.RoleElevated,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/usuarios/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user types.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, "João", user.Name)
	assert.Equal(t, types.RoleElevated, user.Role)

	rec = doRequest(t, router, http.MethodGet, "/api/usuarios/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/usuarios/zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
