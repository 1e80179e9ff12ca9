package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
	"github.com/jhoicas/empleados-api/pkg/token"
)

// UseCase autenticación por credenciales con bearer token opaco estable:
// un token por usuario, creado en el primer login y reutilizado después.
type UseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   repository.TokenRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, profiles repository.ProfileRepository, tokens repository.TokenRepository) *UseCase {
	return &UseCase{users: users, profiles: profiles, tokens: tokens}
}

// Login verifica username/password y devuelve el token del usuario más su
// registro serializado (perfil anidado, null si no tiene).
//
// Usuario desconocido y contraseña incorrecta devuelven exactamente el mismo
// error: la respuesta no permite enumerar cuentas.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := uc.getOrCreateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: tok.Key,
		User:  *toUserResponse(user, profile),
	}, nil
}

// ResolveToken resuelve un bearer token a su usuario (para el middleware).
// Devuelve ErrUnauthorized si el token no existe.
func (uc *UseCase) ResolveToken(ctx context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, domain.ErrUnauthorized
	}
	tok, err := uc.tokens.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, tok.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token huérfano (usuario eliminado sin cascada): tratar como inválido.
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (uc *UseCase) getOrCreateToken(ctx context.Context, userID string) (*entity.AuthToken, error) {
	tok, err := uc.tokens.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tok != nil {
		return tok, nil
	}
	key, err := token.NewKey()
	if err != nil {
		return nil, err
	}
	tok = &entity.AuthToken{Key: key, UserID: userID, CreatedAt: time.Now()}
	if err := uc.tokens.Create(ctx, tok); err != nil {
		// Dos primeros logins concurrentes: perdió la carrera del UNIQUE
		// (user_id); el token ya existe, usarlo.
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.tokens.GetByUser(ctx, userID)
		}
		return nil, err
	}
	return tok, nil
}

func toUserResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
	}
	if p != nil {
		out.Profile = dto.NewProfileResponse(p)
	}
	return out
}
