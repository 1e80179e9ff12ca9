package attendance

import (
	"context"
	"time"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/geo"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// Mensajes de la máquina de estados diaria. Forman parte del contrato con el
// frontend: no cambiar el texto sin coordinarlo.
const (
	MsgCheckIn    = "Check-in successful."
	MsgCheckOut   = "Check-out successful."
	MsgAlreadyOut = "Already checked out for today."
)

// Config geoperímetro inyectado: coordenada de la oficina y radio permitido.
type Config struct {
	Office       geo.Point
	RadiusMeters float64
}

// UseCase motor de asistencia: valida el geoperímetro y avanza la máquina de
// estados por (usuario, día): sin registro → check-in → check-out.
type UseCase struct {
	users   repository.UserRepository
	records repository.AttendanceRepository
	cfg     Config
}

// NewUseCase construye el motor de asistencia.
func NewUseCase(users repository.UserRepository, records repository.AttendanceRepository, cfg Config) *UseCase {
	return &UseCase{users: users, records: records, cfg: cfg}
}

// Mark procesa una marcación. Orden estricto:
//
//  1. validación de entrada (user_id y ambas coordenadas presentes);
//  2. distancia Haversine contra la oficina; si excede el radio se rechaza
//     ANTES de tocar usuario o registro, para no crear filas espurias de
//     intentos fuera de rango;
//  3. resolución del usuario;
//  4. get-or-create atómico del registro del día y transición.
//
// Marcaciones repetidas el mismo día degradan al mensaje terminal sin mutar
// nada: la unicidad por (usuario, día) hace la operación idempotente.
func (uc *UseCase) Mark(ctx context.Context, in dto.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	if in.UserID == "" || in.Latitude == nil || in.Longitude == nil {
		return nil, domain.ErrInvalidInput
	}

	distance := geo.Distance(uc.cfg.Office, geo.Point{Lat: *in.Latitude, Lng: *in.Longitude})
	meters := int(distance) // truncado, es lo que expone la API
	if distance > uc.cfg.RadiusMeters {
		return nil, &domain.GeofenceViolationError{DistanceMeters: meters}
	}

	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	rec, err := uc.records.GetOrCreate(ctx, user.ID, dateOnly(now))
	if err != nil {
		return nil, err
	}

	var message string
	switch {
	case !rec.CheckedIn():
		rec.CheckInTime = &now
		rec.Status = entity.AttendancePresent
		rec.LocationVerified = true
		if err := uc.records.Update(ctx, rec); err != nil {
			return nil, err
		}
		message = MsgCheckIn
	case !rec.CheckedOut():
		rec.CheckOutTime = &now
		if err := uc.records.Update(ctx, rec); err != nil {
			return nil, err
		}
		message = MsgCheckOut
	default:
		// Día cerrado: no se muta nada.
		message = MsgAlreadyOut
	}

	return &dto.MarkAttendanceResponse{
		Message:  message,
		Distance: meters,
		Data:     toResponse(rec),
	}, nil
}

// History devuelve el historial de asistencia del usuario, fecha descendente.
// Falla con ErrUserNotFound si el id no resuelve.
func (uc *UseCase) History(ctx context.Context, userID string) ([]dto.AttendanceResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	records, err := uc.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toResponse(a *entity.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		Date:             a.Date.Format(dto.DateLayout),
		CheckInTime:      a.CheckInTime,
		CheckOutTime:     a.CheckOutTime,
		Status:           a.Status,
		LocationVerified: a.LocationVerified,
	}
}
