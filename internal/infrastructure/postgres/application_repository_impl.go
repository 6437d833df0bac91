package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/repository"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `id::text, job_title, candidate_name, resume, status, applied_date, updated_date, created_by`

func scanApplication(row pgx.Row) (*entity.Application, error) {
	a := &entity.Application{}
	if err := row.Scan(&a.ID, &a.JobTitle, &a.CandidateName, &a.Resume, &a.Status,
		&a.AppliedDate, &a.UpdatedDate, &a.CreatedBy); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO applications (id, job_title, candidate_name, resume, status, applied_date, updated_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, a.JobTitle, a.CandidateName, a.Resume, a.Status, a.AppliedDate, a.UpdatedDate, a.CreatedBy)
	if err != nil {
		return translate(err)
	}
	a.ID = id
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
}

func (r *ApplicationRepository) Update(ctx context.Context, a *entity.Application) error {
	if !validID(a.ID) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE applications
		SET job_title = $1, candidate_name = $2, resume = $3, status = $4,
		    applied_date = $5, updated_date = $6, created_by = $7, updated_at = $8
		WHERE id = $9
	`, a.JobTitle, a.CandidateName, a.Resume, a.Status, a.AppliedDate, a.UpdatedDate, a.CreatedBy, time.Now(), a.ID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
