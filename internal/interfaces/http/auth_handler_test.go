package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el login
// ──────────────────────────────────────────────────────────────────────────────

type stubProfileRepo struct{}

func (stubProfileRepo) Create(context.Context, *entity.Profile) error { return nil }
func (stubProfileRepo) GetByUserID(context.Context, string) (*entity.Profile, error) {
	return nil, nil
}
func (stubProfileRepo) Update(context.Context, *entity.Profile) error { return nil }

type stubTokenRepo struct {
	byUser map[string]*entity.AuthToken
}

func (s *stubTokenRepo) Create(_ context.Context, tok *entity.AuthToken) error {
	if _, ok := s.byUser[tok.UserID]; ok {
		return domain.ErrDuplicate
	}
	s.byUser[tok.UserID] = tok
	return nil
}
func (s *stubTokenRepo) GetByUser(_ context.Context, userID string) (*entity.AuthToken, error) {
	return s.byUser[userID], nil
}
func (s *stubTokenRepo) GetByKey(_ context.Context, key string) (*entity.AuthToken, error) {
	for _, tok := range s.byUser {
		if tok.Key == key {
			return tok, nil
		}
	}
	return nil, nil
}

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &stubUserRepo{user: &entity.User{
		ID:           testEmployeeID,
		Username:     "jdoe",
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
	}}
	uc := auth.NewUseCase(users, stubProfileRepo{}, &stubTokenRepo{byUser: map[string]*entity.AuthToken{}})

	app := fiber.New()
	handler := apphttp.NewAuthHandler(uc)
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"username":"jdoe","password":"s3cret"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Username string      `json:"username"`
			Profile  interface{} `json:"profile"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Token, 40)
	assert.Equal(t, "jdoe", body.User.Username)
	assert.Nil(t, body.User.Profile, "sin fila de perfil el campo viaja como null")
}

// Usuario desconocido y contraseña errada producen exactamente la misma
// respuesta: 400 "Invalid Credentials".
func TestLogin_CredencialesInvalidas_Indistinguibles(t *testing.T) {
	app := buildLoginApp(t)

	unknown := postLogin(t, app, `{"username":"nadie","password":"s3cret"}`)
	defer unknown.Body.Close()
	wrongPw := postLogin(t, app, `{"username":"jdoe","password":"otra"}`)
	defer wrongPw.Body.Close()

	assert.Equal(t, http.StatusBadRequest, unknown.StatusCode)
	assert.Equal(t, http.StatusBadRequest, wrongPw.StatusCode)

	bodyUnknown, _ := io.ReadAll(unknown.Body)
	bodyWrongPw, _ := io.ReadAll(wrongPw.Body)
	assert.JSONEq(t, string(bodyUnknown), string(bodyWrongPw),
		"ambos fallos deben ser indistinguibles para el cliente")
	assert.Contains(t, string(bodyUnknown), "Invalid Credentials")
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"username":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
