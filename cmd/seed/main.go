// seed puebla la base de datos con la cuenta admin de RRHH y un grupo de
// empleados de demostración con su perfil. Es idempotente: los usernames
// que ya existen se saltan sin tocar sus datos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/empleados-api/pkg/config"
	"github.com/jhoicas/empleados-api/pkg/logger"
)

type demoEmployee struct {
	username    string
	email       string
	firstName   string
	lastName    string
	employeeID  string
	department  string
	designation string
	phone       string
}

var demoEmployees = []demoEmployee{
	{"jdoe", "jdoe@example.com", "John", "Doe", "EMP001", "Engineering", "Software Engineer", "+91-9000000001"},
	{"asmith", "asmith@example.com", "Alice", "Smith", "EMP002", "Engineering", "QA Engineer", "+91-9000000002"},
	{"rkumar", "rkumar@example.com", "Ravi", "Kumar", "EMP003", "Human Resources", "HR Executive", "+91-9000000003"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	profiles := postgres.NewProfileRepository(pool)
	employees := usecase.NewEmployeeUseCase(postgres.NewTxRunner(pool), users, profiles)

	if err := seedAdmin(ctx, users); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("username", "hr_admin").Msg("cuenta admin lista")

	for _, e := range demoEmployees {
		_, err := employees.Create(ctx, dto.CreateEmployeeRequest{
			Username:    e.username,
			Email:       e.email,
			Password:    "changeme123",
			FirstName:   e.firstName,
			LastName:    e.lastName,
			EmployeeID:  e.employeeID,
			Department:  e.department,
			Designation: e.designation,
			PhoneNumber: e.phone,
			Location:    "Head Office",
		})
		switch err {
		case nil:
			log.Info().Str("username", e.username).Msg("empleado creado")
		case domain.ErrDuplicate:
			log.Info().Str("username", e.username).Msg("empleado ya existe, se salta")
		default:
			log.Fatal().Err(err).Str("username", e.username).Msg("crear empleado")
		}
	}

	log.Info().Msg("seed completado")
}

// seedAdmin crea la cuenta de administración si no existe. El admin no lleva
// perfil ni employee_id.
func seedAdmin(ctx context.Context, users *postgres.UserRepo) error {
	existing, err := users.GetByUsername(ctx, "hr_admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return users.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     "hr_admin",
		Email:        "hr_admin@example.com",
		PasswordHash: string(hash),
		FirstName:    "HR",
		LastName:     "Admin",
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
