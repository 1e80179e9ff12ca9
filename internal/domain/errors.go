package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProfileNotFound    = errors.New("perfil no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// GeofenceViolationError indica que la coordenada enviada queda fuera del
// radio permitido alrededor de la oficina. Lleva la distancia calculada
// (metros, truncada a entero) porque la API la expone al cliente.
type GeofenceViolationError struct {
	DistanceMeters int
}

func (e *GeofenceViolationError) Error() string {
	return fmt.Sprintf("fuera del perímetro de la oficina: %d m", e.DistanceMeters)
}
