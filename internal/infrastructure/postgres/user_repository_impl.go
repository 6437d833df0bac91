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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id::text, full_name, email, phone_no, address, pincode, password_hash, role`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PhoneNo, &u.Address, &u.Pincode, &u.PasswordHash, &role); err != nil {
		return nil, translate(err)
	}
	u.Role = entity.ParseRole(role)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, full_name, email, phone_no, address, pincode, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, u.FullName, u.Email, u.PhoneNo, u.Address, u.Pincode, u.PasswordHash, string(u.Role))
	if err != nil {
		return translate(err)
	}
	u.ID = id
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	if !validID(u.ID) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET full_name = $1, email = $2, phone_no = $3, address = $4, pincode = $5,
		    password_hash = $6, role = $7, updated_at = $8
		WHERE id = $9
	`, u.FullName, u.Email, u.PhoneNo, u.Address, u.Pincode, u.PasswordHash, string(u.Role), time.Now(), u.ID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

var _ repository.UserRepository = (*UserRepository)(nil)
