package repository

import (
	"context"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *entity.Application) error
	List(ctx context.Context) ([]entity.Application, error)
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	Update(ctx context.Context, a *entity.Application) error
	Delete(ctx context.Context, id string) error
}
