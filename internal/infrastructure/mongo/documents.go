package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	FullName string             `bson:"FullName"`
	Email    string             `bson:"Email"`
	PhoneNo  *int64             `bson:"PhoneNo,omitempty"`
	Address  string             `bson:"Address,omitempty"`
	Pincode  *int64             `bson:"Pincode,omitempty"`
	Password string             `bson:"Password"`
	Role     string             `bson:"role"`
}

func newUserDocument(u *entity.User) userDocument {
	return userDocument{
		FullName: u.FullName,
		Email:    u.Email,
		PhoneNo:  u.PhoneNo,
		Address:  u.Address,
		Pincode:  u.Pincode,
		Password: u.PasswordHash,
		Role:     string(u.Role),
	}
}

func (d *userDocument) entity() entity.User {
	return entity.User{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		PhoneNo:      d.PhoneNo,
		Address:      d.Address,
		Pincode:      d.Pincode,
		PasswordHash: d.Password,
		Role:         entity.ParseRole(d.Role),
	}
}

type jobDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"JobsName"`
	Type         string             `bson:"JobsType"`
	Description  string             `bson:"JobDesc"`
	Requirements string             `bson:"Requirements"`
	Location     string             `bson:"Location"`
	Salary       float64            `bson:"Salary"`
	CompanyName  string             `bson:"CompanyName,omitempty"`
	CreatedBy    string             `bson:"createdBy,omitempty"`
	Status       string             `bson:"status"`
}

func newJobDocument(j *entity.Job) jobDocument {
	return jobDocument{
		Name:         j.Name,
		Type:         j.Type,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Salary:       j.Salary,
		CompanyName:  j.CompanyName,
		CreatedBy:    j.CreatedBy,
		Status:       j.Status,
	}
}

func (d *jobDocument) entity() entity.Job {
	return entity.Job{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Type:         d.Type,
		Description:  d.Description,
		Requirements: d.Requirements,
		Location:     d.Location,
		Salary:       d.Salary,
		CompanyName:  d.CompanyName,
		CreatedBy:    d.CreatedBy,
		Status:       d.Status,
	}
}

type applicationDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	JobTitle      string             `bson:"JobTitle"`
	CandidateName string             `bson:"CandidateName"`
	Resume        string             `bson:"Resume"`
	Status        string             `bson:"Status"`
	AppliedDate   string             `bson:"AppliedDate"`
	UpdatedDate   string             `bson:"UpdatedDate"`
	CreatedBy     string             `bson:"createdBy,omitempty"`
}

func newApplicationDocument(a *entity.Application) applicationDocument {
	return applicationDocument{
		JobTitle:      a.JobTitle,
		CandidateName: a.CandidateName,
		Resume:        a.Resume,
		Status:        a.Status,
		AppliedDate:   a.AppliedDate,
		UpdatedDate:   a.UpdatedDate,
		CreatedBy:     a.CreatedBy,
	}
}

func (d *applicationDocument) entity() entity.Application {
	return entity.Application{
		ID:            d.ID.Hex(),
		JobTitle:      d.JobTitle,
		CandidateName: d.CandidateName,
		Resume:        d.Resume,
		Status:        d.Status,
		AppliedDate:   d.AppliedDate,
		UpdatedDate:   d.UpdatedDate,
		CreatedBy:     d.CreatedBy,
	}
}

type companyDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"CompanyName"`
	RegistrationNo string             `bson:"RegistrationNo"`
	Type           string             `bson:"CompanyType"`
	Nature         string             `bson:"CompanyNature"`
	Address        string             `bson:"CompanyAddress"`
	ContactNo      int64              `bson:"ContactNo"`
	Email          string             `bson:"Email"`
}

func newCompanyDocument(c *entity.Company) companyDocument {
	return companyDocument{
		Name:           c.Name,
		RegistrationNo: c.RegistrationNo,
		Type:           c.Type,
		Nature:         c.Nature,
		Address:        c.Address,
		ContactNo:      c.ContactNo,
		Email:          c.Email,
	}
}

func (d *companyDocument) entity() entity.Company {
	return entity.Company{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		RegistrationNo: d.RegistrationNo,
		Type:           d.Type,
		Nature:         d.Nature,
		Address:        d.Address,
		ContactNo:      d.ContactNo,
		Email:          d.Email,
	}
}
