package entity

import "time"

// Document es un archivo subido por (o para) un usuario: hoja de vida,
// identificación, carta de oferta, etc. Inmutable salvo eliminación.
type Document struct {
	ID           string
	UserID       string
	DocumentType string // etiqueta libre: 'Resume', 'ID Proof', 'Offer Letter'...
	FilePath     string // ruta relativa dentro del storage
	FileName     string // nombre original del archivo subido
	UploadedAt   time.Time
}
