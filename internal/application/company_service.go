package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	repo "github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

// CompanyService is plain CRUD over companies.
type CompanyService struct {
	Companies repo.CompanyRepository
	Logger    *logrus.Logger
}

func NewCompanyService(companies repo.CompanyRepository, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Companies: companies, Logger: logger}
}

type CompanyInput struct {
	Name           string `json:"CompanyName" validate:"required"`
	RegistrationNo string `json:"RegistrationNo" validate:"required"`
	Type           string `json:"CompanyType" validate:"required"`
	Nature         string `json:"CompanyNature" validate:"required"`
	Address        string `json:"CompanyAddress" validate:"required"`
	ContactNo      *int64 `json:"ContactNo" validate:"required"`
	Email          string `json:"Email" validate:"required"`
}

type CompanyPatch struct {
	Name           *string `json:"CompanyName"`
	RegistrationNo *string `json:"RegistrationNo"`
	Type           *string `json:"CompanyType"`
	Nature         *string `json:"CompanyNature"`
	Address        *string `json:"CompanyAddress"`
	ContactNo      *int64  `json:"ContactNo"`
	Email          *string `json:"Email"`
}

func (p CompanyPatch) apply(c *entity.Company) {
	setString(&c.Name, p.Name)
	setString(&c.RegistrationNo, p.RegistrationNo)
	setString(&c.Type, p.Type)
	setString(&c.Nature, p.Nature)
	setString(&c.Address, p.Address)
	if p.ContactNo != nil {
		c.ContactNo = *p.ContactNo
	}
	setString(&c.Email, p.Email)
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*entity.Company, error) {
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
	}
	c := &entity.Company{
		Name:           in.Name,
		RegistrationNo: in.RegistrationNo,
		Type:           in.Type,
		Nature:         in.Nature,
		Address:        in.Address,
		ContactNo:      *in.ContactNo,
		Email:          in.Email,
	}
	if err := s.Companies.Create(ctx, c); err != nil {
		return nil, storeErr("create company", "company", err)
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]entity.Company, error) {
	companies, err := s.Companies.List(ctx)
	if err != nil {
		return nil, storeErr("list companies", "company", err)
	}
	if companies == nil {
		companies = []entity.Company{}
	}
	return companies, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, patch CompanyPatch) (*entity.Company, error) {
	c, err := s.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get company", "company", err)
	}
	patch.apply(c)
	if err := s.Companies.Update(ctx, c); err != nil {
		return nil, storeErr("update company", "company", err)
	}
	return c, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return storeErr("delete company", "company", s.Companies.Delete(ctx, id))
}
