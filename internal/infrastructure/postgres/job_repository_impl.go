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

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id::text, name, type, description, requirements, location, salary, company_name, created_by, status`

func scanJob(row pgx.Row) (*entity.Job, error) {
	j := &entity.Job{}
	if err := row.Scan(&j.ID, &j.Name, &j.Type, &j.Description, &j.Requirements, &j.Location,
		&j.Salary, &j.CompanyName, &j.CreatedBy, &j.Status); err != nil {
		return nil, translate(err)
	}
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, name, type, description, requirements, location, salary, company_name, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, j.Name, j.Type, j.Description, j.Requirements, j.Location, j.Salary, j.CompanyName, j.CreatedBy, j.Status)
	if err != nil {
		return translate(err)
	}
	j.ID = id
	return nil
}

func (r *JobRepository) List(ctx context.Context) ([]entity.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
}

func (r *JobRepository) FindByName(ctx context.Context, name string) (*entity.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE name = $1 ORDER BY seq LIMIT 1`, name))
}

func (r *JobRepository) Update(ctx context.Context, j *entity.Job) error {
	if !validID(j.ID) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE jobs
		SET name = $1, type = $2, description = $3, requirements = $4, location = $5,
		    salary = $6, company_name = $7, created_by = $8, status = $9, updated_at = $10
		WHERE id = $11
	`, j.Name, j.Type, j.Description, j.Requirements, j.Location, j.Salary, j.CompanyName, j.CreatedBy, j.Status, time.Now(), j.ID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

var _ repository.JobRepository = (*JobRepository)(nil)
