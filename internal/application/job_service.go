package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/policy"
	repo "github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

type JobService struct {
	Jobs   repo.JobRepository
	Logger *logrus.Logger
}

func NewJobService(jobs repo.JobRepository, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, Logger: logger}
}

type JobInput struct {
	Name         string   `json:"JobsName" validate:"required"`
	Type         string   `json:"JobsType" validate:"required"`
	Description  string   `json:"JobDesc" validate:"required"`
	Requirements string   `json:"Requirements" validate:"required"`
	Location     string   `json:"Location" validate:"required"`
	Salary       *float64 `json:"Salary" validate:"required"`
	CompanyName  string   `json:"CompanyName"`
	Status       string   `json:"status"`
}

// JobPatch holds the fields to overwrite; nil fields are left untouched.
type JobPatch struct {
	Name         *string  `json:"JobsName"`
	Type         *string  `json:"JobsType"`
	Description  *string  `json:"JobDesc"`
	Requirements *string  `json:"Requirements"`
	Location     *string  `json:"Location"`
	Salary       *float64 `json:"Salary"`
	CompanyName  *string  `json:"CompanyName"`
	CreatedBy    *string  `json:"createdBy"`
	Status       *string  `json:"status"`
}

func (p JobPatch) apply(j *entity.Job) {
	setString(&j.Name, p.Name)
	setString(&j.Type, p.Type)
	setString(&j.Description, p.Description)
	setString(&j.Requirements, p.Requirements)
	setString(&j.Location, p.Location)
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	setString(&j.CompanyName, p.CompanyName)
	setString(&j.CreatedBy, p.CreatedBy)
	setString(&j.Status, p.Status)
}

// Create validates and stores a job, stamping the requester as creator.
func (s *JobService) Create(ctx context.Context, r entity.Requester, in JobInput) (*entity.Job, error) {
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
	}
	j := &entity.Job{
		Name:         in.Name,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Salary:       *in.Salary,
		CompanyName:  in.CompanyName,
		Status:       in.Status,
	}
	if j.Status == "" {
		j.Status = entity.DefaultJobStatus
	}
	policy.StampCreator(r, j)
	if err := s.Jobs.Create(ctx, j); err != nil {
		return nil, storeErr("create job", "job", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"job_id": j.ID, "created_by": j.CreatedBy}).Debug("job created")
	}
	return j, nil
}

// List returns the jobs visible to the requester.
func (s *JobService) List(ctx context.Context, r entity.Requester) ([]entity.Job, error) {
	jobs, err := s.Jobs.List(ctx)
	if err != nil {
		return nil, storeErr("list jobs", "job", err)
	}
	visible := policy.VisibleJobs(r, jobs)
	if visible == nil {
		visible = []entity.Job{}
	}
	return visible, nil
}

// Update applies patch to any job; ownership is not checked on this path.
func (s *JobService) Update(ctx context.Context, id string, patch JobPatch) (*entity.Job, error) {
	j, err := s.Jobs.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get job", "job", err)
	}
	patch.apply(j)
	if err := s.Jobs.Update(ctx, j); err != nil {
		return nil, storeErr("update job", "job", err)
	}
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return storeErr("delete job", "job", s.Jobs.Delete(ctx, id))
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
