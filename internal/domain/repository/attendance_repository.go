package repository

import (
	"context"
	"time"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// AttendanceRepository puerto de persistencia para Attendance.
type AttendanceRepository interface {
	// GetOrCreate devuelve el registro del día para el usuario, creándolo en
	// blanco (Absent, sin horas) si no existe. La implementación debe ser
	// atómica frente a la restricción UNIQUE (user, date): dos marcaciones
	// concurrentes del mismo día nunca producen dos filas.
	GetOrCreate(ctx context.Context, userID string, date time.Time) (*entity.Attendance, error)
	Update(ctx context.Context, att *entity.Attendance) error
	// ListByUser devuelve el historial ordenado por fecha descendente.
	ListByUser(ctx context.Context, userID string) ([]*entity.Attendance, error)
	// ListByUserMonth devuelve los registros de un mes calendario, fecha
	// ascendente (para el reporte mensual).
	ListByUserMonth(ctx context.Context, userID string, year int, month time.Month) ([]*entity.Attendance, error)
}
