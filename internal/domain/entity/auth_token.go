package entity

import "time"

// AuthToken es el bearer token opaco de un usuario. Hay a lo sumo uno por
// usuario: se crea en el primer login y los logins siguientes lo reutilizan
// en vez de rotarlo.
type AuthToken struct {
	Key       string // 40 caracteres hex
	UserID    string
	CreatedAt time.Time
}
