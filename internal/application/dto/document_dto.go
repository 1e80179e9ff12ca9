package dto

import "time"

// DocumentResponse salida de un documento subido.
type DocumentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user"`
	DocumentType string    `json:"document_type"`
	File         string    `json:"file"`
	FileName     string    `json:"file_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
