// Package report genera el reporte mensual de asistencia de un empleado en
// PDF (la vista "Reports" del frontend lo descarga tal cual).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// AttendanceSheet datos ya resueltos que recibe el generador de PDF.
type AttendanceSheet struct {
	User    *entity.User
	Profile *entity.Profile // puede ser nil
	Year    int
	Month   time.Month
	Records []*entity.Attendance // fecha ascendente

	Present  int
	HalfDays int
}

// AttendancePDFGenerator puerto del render del reporte (lo implementa el
// adaptador Maroto).
type AttendancePDFGenerator interface {
	GenerateAttendanceSheet(ctx context.Context, sheet *AttendanceSheet) ([]byte, error)
}

// UseCase arma la hoja mensual de asistencia y delega el render.
type UseCase struct {
	users      repository.UserRepository
	profiles   repository.ProfileRepository
	attendance repository.AttendanceRepository
	generator  AttendancePDFGenerator
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	attendance repository.AttendanceRepository,
	generator AttendancePDFGenerator,
) *UseCase {
	return &UseCase{users: users, profiles: profiles, attendance: attendance, generator: generator}
}

// MonthlyAttendancePDF genera el PDF del mes indicado para el usuario.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrInvalidInput      si el mes o el año no son válidos.
//   - domain.ErrUserNotFound      si el usuario no existe.
func (uc *UseCase) MonthlyAttendancePDF(ctx context.Context, userID string, year, month int) (pdfBytes []byte, filename string, err error) {
	if userID == "" || month < 1 || month > 12 || year < 2000 {
		return nil, "", domain.ErrInvalidInput
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener perfil: %w", err)
	}

	records, err := uc.attendance.ListByUserMonth(ctx, userID, year, time.Month(month))
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener asistencia: %w", err)
	}

	sheet := &AttendanceSheet{
		User:    user,
		Profile: profile,
		Year:    year,
		Month:   time.Month(month),
		Records: records,
	}
	for _, rec := range records {
		switch rec.Status {
		case entity.AttendancePresent:
			sheet.Present++
		case entity.AttendanceHalfDay:
			sheet.HalfDays++
		}
	}

	pdf, err := uc.generator.GenerateAttendanceSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("attendance_%s_%04d-%02d.pdf", user.Username, year, month)
	return pdf, filename, nil
}
