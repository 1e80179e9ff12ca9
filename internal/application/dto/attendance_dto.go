package dto

import "time"

// MarkAttendanceRequest entrada para marcar asistencia. Latitude/Longitude
// son punteros para distinguir "no enviado" de 0.0 en la validación.
type MarkAttendanceRequest struct {
	UserID    string   `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MarkAttendanceResponse salida de una marcación aceptada: mensaje del paso
// de la máquina de estados, distancia calculada (metros, entero truncado) y
// el registro del día.
type MarkAttendanceResponse struct {
	Message  string             `json:"message"`
	Distance int                `json:"distance"`
	Data     AttendanceResponse `json:"data"`
}

// AttendanceResponse salida de un registro de asistencia.
type AttendanceResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Date             string     `json:"date"` // YYYY-MM-DD
	CheckInTime      *time.Time `json:"check_in_time"`
	CheckOutTime     *time.Time `json:"check_out_time"`
	Status           string     `json:"status"`
	LocationVerified bool       `json:"location_verified"`
}
