package entity

import "time"

// Estados válidos para Attendance.
const (
	AttendanceAbsent  = "Absent"
	AttendancePresent = "Present"
	AttendanceHalfDay = "Half-Day"
)

// Attendance es el registro de asistencia de un usuario para un día
// calendario. Única por (user, date). La máquina de estados avanza
// check-in → check-out; un día sin registro se interpreta como ausencia
// (no se materializan filas 'Absent').
type Attendance struct {
	ID               string
	UserID           string
	Date             time.Time // día calendario, sin hora
	CheckInTime      *time.Time
	CheckOutTime     *time.Time // invariante: solo se fija si CheckInTime ya existe
	Status           string     // Absent, Present, Half-Day
	LocationVerified bool
}

// CheckedIn indica si ya hay check-in registrado para el día.
func (a *Attendance) CheckedIn() bool { return a.CheckInTime != nil }

// CheckedOut indica si el día ya quedó cerrado con check-out.
func (a *Attendance) CheckedOut() bool { return a.CheckOutTime != nil }
