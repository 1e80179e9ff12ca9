package dto

// DateLayout formato de fechas-sin-hora en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GeofenceErrorResponse cuerpo de error para marcaciones fuera del perímetro:
// además del código incluye la distancia calculada en metros (entero truncado).
type GeofenceErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Distance int    `json:"distance"`
}
