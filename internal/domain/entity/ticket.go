package entity

import "time"

// Estados válidos para Ticket. El flujo no impone orden entre ellos.
const (
	TicketOpen       = "Open"
	TicketInProgress = "In_Progress"
	TicketReview     = "Review"
	TicketCompleted  = "Completed"
)

// Ticket es un issue liviano del tablero interno. CreatedBy es inmutable;
// AssigneeID es reasignable y puede quedar en nil (pool sin asignar).
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      string // Open, In_Progress, Review, Completed
	AssigneeID  *string
	CreatedBy   string
	Month       string // etiqueta de agrupación (month, year)
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketUpdate es un comentario del hilo de un ticket, append-only,
// con captura de pantalla opcional.
type TicketUpdate struct {
	ID         string
	TicketID   string
	UserID     string
	UpdateText string
	Screenshot *string // ruta en el storage de archivos
	CreatedAt  time.Time
}
