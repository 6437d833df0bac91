package repository

import (
	"context"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	List(ctx context.Context) ([]entity.Company, error)
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, c *entity.Company) error
	Delete(ctx context.Context, id string) error
}
