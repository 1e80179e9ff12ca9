package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, user_id, department, designation, phone_number, location, status,
	is_active_employee, joined_date, date_of_birth,
	school_name, school_year, school_percentage,
	college_name, college_year, college_cgpa,
	address_line1, city, state, zip_code,
	skills, interests, hobbies, profile_picture`

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create persiste un nuevo perfil. ErrDuplicate si el usuario ya tiene uno.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Department, p.Designation, p.PhoneNumber, p.Location, p.Status,
		p.IsActiveEmployee, p.JoinedDate, p.DateOfBirth,
		p.SchoolName, p.SchoolYear, p.SchoolPercentage,
		p.CollegeName, p.CollegeYear, p.CollegeCGPA,
		p.AddressLine1, p.City, p.State, p.ZipCode,
		p.Skills, p.Interests, p.Hobbies, p.ProfilePicture,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario; (nil, nil) si no tiene.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Department, &p.Designation, &p.PhoneNumber, &p.Location, &p.Status,
		&p.IsActiveEmployee, &p.JoinedDate, &p.DateOfBirth,
		&p.SchoolName, &p.SchoolYear, &p.SchoolPercentage,
		&p.CollegeName, &p.CollegeYear, &p.CollegeCGPA,
		&p.AddressLine1, &p.City, &p.State, &p.ZipCode,
		&p.Skills, &p.Interests, &p.Hobbies, &p.ProfilePicture,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by user: %w", err)
	}
	return &p, nil
}

// Update actualiza todos los campos mutables del perfil.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE profiles
		SET department = $2, designation = $3, phone_number = $4, location = $5, status = $6,
		    is_active_employee = $7, date_of_birth = $8,
		    school_name = $9, school_year = $10, school_percentage = $11,
		    college_name = $12, college_year = $13, college_cgpa = $14,
		    address_line1 = $15, city = $16, state = $17, zip_code = $18,
		    skills = $19, interests = $20, hobbies = $21, profile_picture = $22
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Department, p.Designation, p.PhoneNumber, p.Location, p.Status,
		p.IsActiveEmployee, p.DateOfBirth,
		p.SchoolName, p.SchoolYear, p.SchoolPercentage,
		p.CollegeName, p.CollegeYear, p.CollegeCGPA,
		p.AddressLine1, p.City, p.State, p.ZipCode,
		p.Skills, p.Interests, p.Hobbies, p.ProfilePicture,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
