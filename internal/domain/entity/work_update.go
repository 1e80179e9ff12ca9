package entity

import "time"

// Estados válidos para WorkUpdate.
const (
	WorkStatusInProgress = "In Progress"
	WorkStatusCompleted  = "Completed"
	WorkStatusOnHold     = "On Hold"
)

// WorkUpdate es una entrada de bitácora diaria de trabajo de un usuario.
type WorkUpdate struct {
	ID          string
	UserID      string
	Date        time.Time // solo fecha, sin hora
	ProjectName string
	Description string
	Status      string // In Progress, Completed, On Hold
}
