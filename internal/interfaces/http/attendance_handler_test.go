package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/attendance"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/geo"
	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el motor de asistencia
// ──────────────────────────────────────────────────────────────────────────────

// Coordenada de la oficina usada en los tests del handler.
var testOffice = geo.Point{Lat: 13.0360406, Lng: 80.2181952}

type stubUserRepo struct{ user *entity.User }

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) ListByRole(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) Delete(context.Context, string) error       { return nil }

type stubAttendanceRepo struct {
	records map[string]*entity.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: map[string]*entity.Attendance{}}
}

func (s *stubAttendanceRepo) GetOrCreate(_ context.Context, userID string, date time.Time) (*entity.Attendance, error) {
	key := userID + "|" + date.Format("2006-01-02")
	if rec, ok := s.records[key]; ok {
		return rec, nil
	}
	rec := &entity.Attendance{
		ID:     fmt.Sprintf("att-%d", len(s.records)+1),
		UserID: userID,
		Date:   date,
		Status: entity.AttendanceAbsent,
	}
	s.records[key] = rec
	return rec, nil
}

func (s *stubAttendanceRepo) Update(context.Context, *entity.Attendance) error { return nil }
func (s *stubAttendanceRepo) ListByUser(context.Context, string) ([]*entity.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListByUserMonth(context.Context, string, int, time.Month) ([]*entity.Attendance, error) {
	return nil, nil
}

// buildAttendanceApp arma la ruta /api/attendance/mark ya autenticada.
func buildAttendanceApp() *fiber.App {
	users := &stubUserRepo{user: &entity.User{ID: testEmployeeID, Username: "jdoe", Role: entity.RoleEmployee}}
	uc := attendance.NewUseCase(users, newStubAttendanceRepo(), attendance.Config{
		Office:       testOffice,
		RadiusMeters: 200,
	})
	app := fiber.New()
	handler := apphttp.NewAttendanceHandler(uc)
	app.Post("/api/attendance/mark", apphttp.AuthMiddleware(newFakeResolver()), handler.Mark)
	return app
}

func postMark(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/mark", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testEmployeeToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handler de marcación
// ──────────────────────────────────────────────────────────────────────────────

// Marcación desde la oficina: 200 con mensaje de check-in y distancia 0.
func TestMark_CheckInDesdeOficina(t *testing.T) {
	app := buildAttendanceApp()
	payload := fmt.Sprintf(`{"user_id":%q,"latitude":13.0360406,"longitude":80.2181952}`, testEmployeeID)
	resp := postMark(t, app, payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message  string `json:"message"`
		Distance int    `json:"distance"`
		Data     struct {
			Status           string `json:"status"`
			LocationVerified bool   `json:"location_verified"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Check-in successful.", body.Message)
	assert.Equal(t, 0, body.Distance)
	assert.Equal(t, entity.AttendancePresent, body.Data.Status)
	assert.True(t, body.Data.LocationVerified)
}

// Marcación fuera del perímetro: 403 con código GEOFENCE y la distancia
// truncada en metros en el cuerpo.
func TestMark_FueraDelPerimetro_Retorna403ConDistancia(t *testing.T) {
	app := buildAttendanceApp()
	// ~996 m al norte de la oficina.
	payload := fmt.Sprintf(`{"user_id":%q,"latitude":13.0450,"longitude":80.2181952}`, testEmployeeID)
	resp := postMark(t, app, payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body struct {
		Code     string `json:"code"`
		Distance int    `json:"distance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "GEOFENCE", body.Code)
	assert.InDelta(t, 996, body.Distance, 3, "la distancia reportada debe ser ~996 m")
}

// Coordenadas ausentes: 400 VALIDATION (el cero explícito sí es válido).
func TestMark_SinCoordenadas_Retorna400(t *testing.T) {
	app := buildAttendanceApp()
	payload := fmt.Sprintf(`{"user_id":%q}`, testEmployeeID)
	resp := postMark(t, app, payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Usuario inexistente dentro del perímetro: 404.
func TestMark_UsuarioInexistente_Retorna404(t *testing.T) {
	app := buildAttendanceApp()
	payload := `{"user_id":"no-existe","latitude":13.0360406,"longitude":80.2181952}`
	resp := postMark(t, app, payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Check-in seguido de check-out en el mismo día avanza la máquina de estados.
func TestMark_SecuenciaCheckInCheckOut(t *testing.T) {
	app := buildAttendanceApp()
	payload := fmt.Sprintf(`{"user_id":%q,"latitude":13.0360406,"longitude":80.2181952}`, testEmployeeID)

	first := postMark(t, app, payload)
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)

	second := postMark(t, app, payload)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&body))
	assert.Equal(t, "Check-out successful.", body.Message)

	third := postMark(t, app, payload)
	defer third.Body.Close()
	require.NoError(t, json.NewDecoder(third.Body).Decode(&body))
	assert.Equal(t, "Already checked out for today.", body.Message)
}
