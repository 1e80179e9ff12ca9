package dto

// CreateWorkUpdateRequest entrada para registrar una entrada de bitácora.
// El dueño siempre es el usuario autenticado; cualquier user enviado en el
// body se ignora.
type CreateWorkUpdateRequest struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PatchWorkUpdateRequest entrada para editar una entrada existente.
type PatchWorkUpdateRequest struct {
	ProjectName *string `json:"project_name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// WorkUpdateResponse salida de una entrada de bitácora.
type WorkUpdateResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user"`
	Date        string `json:"date"` // YYYY-MM-DD
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
