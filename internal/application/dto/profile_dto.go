package dto

import "github.com/jhoicas/empleados-api/internal/domain/entity"

// ProfileResponse salida del perfil de RRHH de un usuario.
type ProfileResponse struct {
	Department       string  `json:"department"`
	Designation      string  `json:"designation"`
	PhoneNumber      string  `json:"phone_number"`
	Location         string  `json:"location"`
	Status           string  `json:"status"`
	IsActiveEmployee bool    `json:"is_active_employee"`
	JoinedDate       string  `json:"joined_date"`   // YYYY-MM-DD
	DateOfBirth      *string `json:"date_of_birth"` // YYYY-MM-DD

	SchoolName       *string `json:"school_name"`
	SchoolYear       *string `json:"school_year"`
	SchoolPercentage *string `json:"school_percentage"`
	CollegeName      *string `json:"college_name"`
	CollegeYear      *string `json:"college_year"`
	CollegeCGPA      *string `json:"college_cgpa"`

	AddressLine1 *string `json:"address_line1"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`

	Skills         *string `json:"skills"`
	Interests      *string `json:"interests"`
	Hobbies        *string `json:"hobbies"`
	ProfilePicture *string `json:"profile_picture"`
}

// NewProfileResponse mapea la entidad a su salida JSON. El mapeo vive aquí
// porque auth y employees serializan el mismo perfil anidado.
func NewProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	out := &ProfileResponse{
		Department:       p.Department,
		Designation:      p.Designation,
		PhoneNumber:      p.PhoneNumber,
		Location:         p.Location,
		Status:           p.Status,
		IsActiveEmployee: p.IsActiveEmployee,
		JoinedDate:       p.JoinedDate.Format(DateLayout),
		SchoolName:       p.SchoolName,
		SchoolYear:       p.SchoolYear,
		SchoolPercentage: p.SchoolPercentage,
		CollegeName:      p.CollegeName,
		CollegeYear:      p.CollegeYear,
		CollegeCGPA:      p.CollegeCGPA,
		AddressLine1:     p.AddressLine1,
		City:             p.City,
		State:            p.State,
		ZipCode:          p.ZipCode,
		Skills:           p.Skills,
		Interests:        p.Interests,
		Hobbies:          p.Hobbies,
		ProfilePicture:   p.ProfilePicture,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format(DateLayout)
		out.DateOfBirth = &dob
	}
	return out
}

// UpdateProfileRequest entrada para PATCH parcial del perfil propio.
// Punteros nil = "no tocar el campo".
type UpdateProfileRequest struct {
	Department       *string `json:"department"`
	Designation      *string `json:"designation"`
	PhoneNumber      *string `json:"phone_number"`
	Location         *string `json:"location"`
	Status           *string `json:"status"`
	IsActiveEmployee *bool   `json:"is_active_employee"`
	DateOfBirth      *string `json:"date_of_birth"` // YYYY-MM-DD

	SchoolName       *string `json:"school_name"`
	SchoolYear       *string `json:"school_year"`
	SchoolPercentage *string `json:"school_percentage"`
	CollegeName      *string `json:"college_name"`
	CollegeYear      *string `json:"college_year"`
	CollegeCGPA      *string `json:"college_cgpa"`

	AddressLine1 *string `json:"address_line1"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`

	Skills    *string `json:"skills"`
	Interests *string `json:"interests"`
	Hobbies   *string `json:"hobbies"`
}
