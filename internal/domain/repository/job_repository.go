package repository

import (
	"context"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	List(ctx context.Context) ([]entity.Job, error)
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	// FindByName returns the first job, in store order, whose name equals name.
	FindByName(ctx context.Context, name string) (*entity.Job, error)
	Update(ctx context.Context, j *entity.Job) error
	Delete(ctx context.Context, id string) error
}
