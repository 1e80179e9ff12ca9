package entity

import "time"

// Profile extiende a un User (1:1) con metadatos de RRHH. La relación es
// opcional: un usuario puede existir sin perfil y todo consumidor debe
// contemplar su ausencia.
type Profile struct {
	ID               string
	UserID           string
	Department       string
	Designation      string
	PhoneNumber      string
	Location         string
	Status           string // On-Site, Remote, etc.
	IsActiveEmployee bool
	JoinedDate       time.Time
	DateOfBirth      *time.Time

	// Formación académica
	SchoolName       *string
	SchoolYear       *string
	SchoolPercentage *string
	CollegeName      *string
	CollegeYear      *string
	CollegeCGPA      *string

	// Dirección
	AddressLine1 *string
	City         *string
	State        *string
	ZipCode      *string

	Skills         *string
	Interests      *string
	Hobbies        *string
	ProfilePicture *string // ruta en el storage de archivos
}
