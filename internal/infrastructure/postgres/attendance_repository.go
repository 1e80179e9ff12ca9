package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, user_id, date, check_in_time, check_out_time, status, location_verified`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	db Querier
}

// NewAttendanceRepository construye el adaptador de persistencia de asistencia.
func NewAttendanceRepository(db Querier) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

// GetOrCreate devuelve el registro del día, creándolo en blanco si no existe.
// El upsert contra el UNIQUE (user_id, date) resuelve la carrera de dos
// marcaciones concurrentes en una sola sentencia: quien pierda el insert
// recibe la misma fila vía DO UPDATE ... RETURNING, nunca una fila duplicada.
func (r *AttendanceRepo) GetOrCreate(ctx context.Context, userID string, date time.Time) (*entity.Attendance, error) {
	query := `
		INSERT INTO attendance (id, user_id, date, status, location_verified)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT ON CONSTRAINT attendance_user_date_key
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + attendanceColumns
	var a entity.Attendance
	err := r.db.QueryRow(ctx, query, uuid.New().String(), userID, date, entity.AttendanceAbsent).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.Status, &a.LocationVerified,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create attendance: %w", err)
	}
	return &a, nil
}

// Update persiste las horas y el estado del registro del día.
func (r *AttendanceRepo) Update(ctx context.Context, att *entity.Attendance) error {
	query := `
		UPDATE attendance
		SET check_in_time = $2, check_out_time = $3, status = $4, location_verified = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		att.ID, att.CheckInTime, att.CheckOutTime, att.Status, att.LocationVerified,
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// ListByUser devuelve el historial del usuario, fecha descendente.
func (r *AttendanceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return collectAttendance(rows)
}

// ListByUserMonth devuelve los registros de un mes calendario, fecha ascendente.
func (r *AttendanceRepo) ListByUserMonth(ctx context.Context, userID string, year int, month time.Month) ([]*entity.Attendance, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance by month: %w", err)
	}
	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]*entity.Attendance, error) {
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.Status, &a.LocationVerified); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
