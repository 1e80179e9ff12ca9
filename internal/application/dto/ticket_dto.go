package dto

import (
	"encoding/json"
	"time"
)

// CreateTicketRequest entrada para abrir un ticket. El creador siempre es el
// usuario autenticado.
type CreateTicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssigneeID  *string `json:"assignee"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
}

// PatchTicketRequest entrada para editar un ticket. Assignee admite tres
// estados: ausente (no tocar), null explícito (desasignar) y valor (asignar);
// se guarda el JSON crudo para poder distinguirlos.
type PatchTicketRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	AssigneeID  json.RawMessage `json:"assignee"`
	Month       *string         `json:"month"`
	Year        *int            `json:"year"`
}

// Assignee interpreta el campo crudo: (touched=false) si no vino en el body,
// (touched=true, id=nil) si vino null y (touched=true, id=&v) si vino un id.
func (r *PatchTicketRequest) Assignee() (id *string, touched bool, err error) {
	if len(r.AssigneeID) == 0 {
		return nil, false, nil
	}
	if string(r.AssigneeID) == "null" {
		return nil, true, nil
	}
	var v string
	if err := json.Unmarshal(r.AssigneeID, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssigneeID  *string   `json:"assignee"`
	CreatedBy   string    `json:"created_by"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TicketUpdateResponse salida de un comentario del hilo de un ticket.
type TicketUpdateResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket"`
	UserID     string    `json:"user"`
	UpdateText string    `json:"update_text"`
	Screenshot *string   `json:"screenshot"`
	CreatedAt  time.Time `json:"created_at"`
}
