package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// Defaults del perfil inicial cuando el alta no los trae.
const (
	defaultDepartment  = "Unassigned"
	defaultDesignation = "Trainee"
	defaultLocation    = "Head Office"
	defaultStatus      = "On-Site"
)

// EmployeeUseCase altas, consultas y bajas de empleados, y edición del
// perfil propio.
type EmployeeUseCase struct {
	txRunner TxRunner
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(txRunner TxRunner, users repository.UserRepository, profiles repository.ProfileRepository) *EmployeeUseCase {
	return &EmployeeUseCase{txRunner: txRunner, users: users, profiles: profiles}
}

// List devuelve todas las cuentas con rol EMPLOYEE, con su perfil anidado
// (null cuando no existe).
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.ListByRole(ctx, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		profile, err := uc.profiles.GetByUserID(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toUserResponse(u, profile))
	}
	return out, nil
}

// Create da de alta un empleado: cuenta (rol EMPLOYEE, password bcrypt) y
// perfil inicial, en una sola transacción. ErrDuplicate si el username o el
// employee_id ya existen.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.EmployeeID == "" || in.PhoneNumber == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var dob *time.Time
	if in.DateOfBirth != nil && *in.DateOfBirth != "" {
		d, err := time.Parse(dto.DateLayout, *in.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dob = &d
	}

	now := time.Now()
	employeeID := in.EmployeeID
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleEmployee,
		EmployeeID:   &employeeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		Department:       orDefault(in.Department, defaultDepartment),
		Designation:      orDefault(in.Designation, defaultDesignation),
		PhoneNumber:      in.PhoneNumber,
		Location:         orDefault(in.Location, defaultLocation),
		Status:           defaultStatus,
		IsActiveEmployee: true,
		JoinedDate:       now,
		DateOfBirth:      dob,
	}

	err = uc.txRunner.Run(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return profiles.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, profile), nil
}

// Get devuelve un usuario por id con su perfil; ErrUserNotFound si no existe.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, profile), nil
}

// Delete elimina la cuenta; el esquema cascadea perfil, documentos,
// asistencia, bitácora y tickets creados.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(ctx, id)
}

// UpdateProfile aplica un PATCH parcial al perfil del propio usuario.
// ErrProfileNotFound cuando la cuenta no tiene perfil creado.
func (uc *EmployeeUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&profile.Department, in.Department)
	applyString(&profile.Designation, in.Designation)
	applyString(&profile.PhoneNumber, in.PhoneNumber)
	applyString(&profile.Location, in.Location)
	applyString(&profile.Status, in.Status)
	if in.IsActiveEmployee != nil {
		profile.IsActiveEmployee = *in.IsActiveEmployee
	}
	if in.DateOfBirth != nil {
		if *in.DateOfBirth == "" {
			profile.DateOfBirth = nil
		} else {
			d, err := time.Parse(dto.DateLayout, *in.DateOfBirth)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			profile.DateOfBirth = &d
		}
	}

	applyOpt := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	applyOpt(&profile.SchoolName, in.SchoolName)
	applyOpt(&profile.SchoolYear, in.SchoolYear)
	applyOpt(&profile.SchoolPercentage, in.SchoolPercentage)
	applyOpt(&profile.CollegeName, in.CollegeName)
	applyOpt(&profile.CollegeYear, in.CollegeYear)
	applyOpt(&profile.CollegeCGPA, in.CollegeCGPA)
	applyOpt(&profile.AddressLine1, in.AddressLine1)
	applyOpt(&profile.City, in.City)
	applyOpt(&profile.State, in.State)
	applyOpt(&profile.ZipCode, in.ZipCode)
	applyOpt(&profile.Skills, in.Skills)
	applyOpt(&profile.Interests, in.Interests)
	applyOpt(&profile.Hobbies, in.Hobbies)

	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user, profile), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func toUserResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		Profile:    dto.NewProfileResponse(p),
	}
}
