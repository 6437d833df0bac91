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

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `id::text, name, registration_no, type, nature, address, contact_no, email`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	c := &entity.Company{}
	if err := row.Scan(&c.ID, &c.Name, &c.RegistrationNo, &c.Type, &c.Nature, &c.Address, &c.ContactNo, &c.Email); err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO companies (id, name, registration_no, type, nature, address, contact_no, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, c.Name, c.RegistrationNo, c.Type, c.Nature, c.Address, c.ContactNo, c.Email)
	if err != nil {
		return translate(err)
	}
	c.ID = id
	return nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanCompany(r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	if !validID(c.ID) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE companies
		SET name = $1, registration_no = $2, type = $3, nature = $4, address = $5,
		    contact_no = $6, email = $7, updated_at = $8
		WHERE id = $9
	`, c.Name, c.RegistrationNo, c.Type, c.Nature, c.Address, c.ContactNo, c.Email, time.Now(), c.ID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
