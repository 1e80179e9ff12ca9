// Package token genera las claves de los bearer tokens opacos. La clave es
// hex de 40 caracteres (20 bytes de crypto/rand); no codifica nada: la
// asociación token→usuario vive en la base de datos.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyLength longitud de la clave en caracteres hex.
const KeyLength = 40

// NewKey genera una clave aleatoria de KeyLength caracteres hex.
func NewKey() (string, error) {
	b := make([]byte, KeyLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
