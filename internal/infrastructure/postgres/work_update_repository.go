package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.WorkUpdateRepository = (*WorkUpdateRepo)(nil)

const workUpdateColumns = `id, user_id, date, project_name, description, status`

// WorkUpdateRepo implementación del puerto WorkUpdateRepository sobre PostgreSQL.
type WorkUpdateRepo struct {
	db Querier
}

// NewWorkUpdateRepository construye el adaptador de persistencia de la bitácora.
func NewWorkUpdateRepository(db Querier) *WorkUpdateRepo {
	return &WorkUpdateRepo{db: db}
}

// Create persiste una entrada de bitácora.
func (r *WorkUpdateRepo) Create(ctx context.Context, wu *entity.WorkUpdate) error {
	query := `
		INSERT INTO work_updates (` + workUpdateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		wu.ID, wu.UserID, wu.Date, wu.ProjectName, wu.Description, wu.Status,
	)
	if err != nil {
		return fmt.Errorf("insert work update: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada; (nil, nil) si no existe.
func (r *WorkUpdateRepo) GetByID(ctx context.Context, id string) (*entity.WorkUpdate, error) {
	query := `SELECT ` + workUpdateColumns + ` FROM work_updates WHERE id = $1`
	var wu entity.WorkUpdate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wu.ID, &wu.UserID, &wu.Date, &wu.ProjectName, &wu.Description, &wu.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work update: %w", err)
	}
	return &wu, nil
}

// ListByUser lista la bitácora de un usuario, más reciente primero.
func (r *WorkUpdateRepo) ListByUser(ctx context.Context, userID string) ([]*entity.WorkUpdate, error) {
	query := `SELECT ` + workUpdateColumns + ` FROM work_updates WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list work updates: %w", err)
	}
	return collectWorkUpdates(rows)
}

// ListAll lista toda la bitácora, más reciente primero.
func (r *WorkUpdateRepo) ListAll(ctx context.Context) ([]*entity.WorkUpdate, error) {
	query := `SELECT ` + workUpdateColumns + ` FROM work_updates ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list work updates: %w", err)
	}
	return collectWorkUpdates(rows)
}

// Update actualiza una entrada existente.
func (r *WorkUpdateRepo) Update(ctx context.Context, wu *entity.WorkUpdate) error {
	query := `
		UPDATE work_updates
		SET project_name = $2, description = $3, status = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, wu.ID, wu.ProjectName, wu.Description, wu.Status)
	if err != nil {
		return fmt.Errorf("update work update: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *WorkUpdateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM work_updates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work update: %w", err)
	}
	return nil
}

func collectWorkUpdates(rows pgx.Rows) ([]*entity.WorkUpdate, error) {
	defer rows.Close()
	var list []*entity.WorkUpdate
	for rows.Next() {
		var wu entity.WorkUpdate
		if err := rows.Scan(&wu.ID, &wu.UserID, &wu.Date, &wu.ProjectName, &wu.Description, &wu.Status); err != nil {
			return nil, fmt.Errorf("scan work update: %w", err)
		}
		list = append(list, &wu)
	}
	return list, rows.Err()
}
