package memory

import (
	"context"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/repository"
)

type UserRepository struct{ c *collection[entity.User] }

func NewUserRepository() *UserRepository {
	return &UserRepository{c: newCollection[entity.User]()}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	u.ID = newID()
	if !r.c.insert(u.ID, *u, func(e entity.User) bool { return e.Email == u.Email }) {
		u.ID = ""
		return repository.ErrDuplicate
	}
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	return r.c.list(), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.c.first(func(e entity.User) bool { return e.Email == email })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	return replaceErr(r.c.replace(u.ID, *u, func(e entity.User) bool { return e.Email == u.Email }))
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	return removeErr(r.c.remove(id))
}

type JobRepository struct{ c *collection[entity.Job] }

func NewJobRepository() *JobRepository {
	return &JobRepository{c: newCollection[entity.Job]()}
}

func (r *JobRepository) Create(_ context.Context, j *entity.Job) error {
	j.ID = newID()
	r.c.insert(j.ID, *j, nil)
	return nil
}

func (r *JobRepository) List(_ context.Context) ([]entity.Job, error) {
	return r.c.list(), nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (*entity.Job, error) {
	j, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &j, nil
}

func (r *JobRepository) FindByName(_ context.Context, name string) (*entity.Job, error) {
	j, ok := r.c.first(func(e entity.Job) bool { return e.Name == name })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &j, nil
}

func (r *JobRepository) Update(_ context.Context, j *entity.Job) error {
	return replaceErr(r.c.replace(j.ID, *j, nil))
}

func (r *JobRepository) Delete(_ context.Context, id string) error {
	return removeErr(r.c.remove(id))
}

type ApplicationRepository struct{ c *collection[entity.Application] }

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{c: newCollection[entity.Application]()}
}

func (r *ApplicationRepository) Create(_ context.Context, a *entity.Application) error {
	a.ID = newID()
	r.c.insert(a.ID, *a, nil)
	return nil
}

func (r *ApplicationRepository) List(_ context.Context) ([]entity.Application, error) {
	return r.c.list(), nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (*entity.Application, error) {
	a, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *ApplicationRepository) Update(_ context.Context, a *entity.Application) error {
	return replaceErr(r.c.replace(a.ID, *a, nil))
}

func (r *ApplicationRepository) Delete(_ context.Context, id string) error {
	return removeErr(r.c.remove(id))
}

type CompanyRepository struct{ c *collection[entity.Company] }

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{c: newCollection[entity.Company]()}
}

func (r *CompanyRepository) Create(_ context.Context, c *entity.Company) error {
	c.ID = newID()
	if !r.c.insert(c.ID, *c, func(e entity.Company) bool { return e.RegistrationNo == c.RegistrationNo }) {
		c.ID = ""
		return repository.ErrDuplicate
	}
	return nil
}

func (r *CompanyRepository) List(_ context.Context) ([]entity.Company, error) {
	return r.c.list(), nil
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CompanyRepository) Update(_ context.Context, c *entity.Company) error {
	return replaceErr(r.c.replace(c.ID, *c, func(e entity.Company) bool { return e.RegistrationNo == c.RegistrationNo }))
}

func (r *CompanyRepository) Delete(_ context.Context, id string) error {
	return removeErr(r.c.remove(id))
}

func replaceErr(found, ok bool) error {
	switch {
	case !found:
		return repository.ErrNotFound
	case !ok:
		return repository.ErrDuplicate
	}
	return nil
}

func removeErr(found bool) error {
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

var (
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.JobRepository         = (*JobRepository)(nil)
	_ repository.ApplicationRepository = (*ApplicationRepository)(nil)
	_ repository.CompanyRepository     = (*CompanyRepository)(nil)
)
