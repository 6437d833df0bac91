package application

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/policy"
	repo "github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

// EventStatusChanged is published after an application's status changes.
const EventStatusChanged = "application.status_changed"

// MaxResumeSize bounds uploaded resume files.
const MaxResumeSize = 5 << 20

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".txt": true}

type ApplicationService struct {
	Applications repo.ApplicationRepository
	Jobs         repo.JobRepository
	Events       EventPublisher
	Resumes      ResumeUploader
	Logger       *logrus.Logger
}

func NewApplicationService(apps repo.ApplicationRepository, jobs repo.JobRepository, events EventPublisher, resumes ResumeUploader, logger *logrus.Logger) *ApplicationService {
	return &ApplicationService{Applications: apps, Jobs: jobs, Events: events, Resumes: resumes, Logger: logger}
}

type ApplicationInput struct {
	JobTitle      string `json:"JobTitle" validate:"required"`
	CandidateName string `json:"CandidateName" validate:"required"`
	Resume        string `json:"Resume" validate:"required"`
	Status        string `json:"Status" validate:"required"`
	AppliedDate   string `json:"AppliedDate" validate:"required"`
	UpdatedDate   string `json:"UpdatedDate" validate:"required"`
}

// ApplicationPatch covers every field except status, which only changes
// through UpdateStatus.
type ApplicationPatch struct {
	JobTitle      *string `json:"JobTitle"`
	CandidateName *string `json:"CandidateName"`
	Resume        *string `json:"Resume"`
	AppliedDate   *string `json:"AppliedDate"`
	UpdatedDate   *string `json:"UpdatedDate"`
	CreatedBy     *string `json:"createdBy"`
}

func (p ApplicationPatch) Empty() bool {
	return p == ApplicationPatch{}
}

func (p ApplicationPatch) apply(a *entity.Application) {
	setString(&a.JobTitle, p.JobTitle)
	setString(&a.CandidateName, p.CandidateName)
	setString(&a.Resume, p.Resume)
	setString(&a.AppliedDate, p.AppliedDate)
	setString(&a.UpdatedDate, p.UpdatedDate)
	setString(&a.CreatedBy, p.CreatedBy)
}

// StatusSummary counts visible applications by normalized status.
type StatusSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Other    int `json:"other"`
}

// StatusChanged is the payload of EventStatusChanged.
type StatusChanged struct {
	Type           string    `json:"type"`
	ApplicationID  string    `json:"applicationId"`
	JobTitle       string    `json:"jobTitle"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	ChangedBy      string    `json:"changedBy"`
	ChangedAt      time.Time `json:"changedAt"`
}

func (s *ApplicationService) Create(ctx context.Context, r entity.Requester, in ApplicationInput) (*entity.Application, error) {
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
	}
	a := &entity.Application{
		JobTitle:      in.JobTitle,
		CandidateName: in.CandidateName,
		Resume:        in.Resume,
		Status:        in.Status,
		AppliedDate:   in.AppliedDate,
		UpdatedDate:   in.UpdatedDate,
	}
	policy.StampCreator(r, a)
	if err := s.Applications.Create(ctx, a); err != nil {
		return nil, storeErr("create application", "application", err)
	}
	return a, nil
}

func (s *ApplicationService) visible(ctx context.Context, r entity.Requester) ([]entity.Application, error) {
	apps, err := s.Applications.List(ctx)
	if err != nil {
		return nil, storeErr("list applications", "application", err)
	}
	var jobs []entity.Job
	if r.IsRecruiter() {
		if jobs, err = s.Jobs.List(ctx); err != nil {
			return nil, storeErr("list jobs", "job", err)
		}
	}
	return policy.VisibleApplications(r, apps, jobs), nil
}

// List returns the applications visible to the requester with the lowercase
// status added.
func (s *ApplicationService) List(ctx context.Context, r entity.Requester) ([]entity.ApplicationView, error) {
	apps, err := s.visible(ctx, r)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ApplicationView, 0, len(apps))
	for _, a := range apps {
		out = append(out, entity.ApplicationView{Application: a, NormalizedStatus: a.NormalizedStatus()})
	}
	return out, nil
}

func (s *ApplicationService) Summary(ctx context.Context, r entity.Requester) (StatusSummary, error) {
	apps, err := s.visible(ctx, r)
	if err != nil {
		return StatusSummary{}, err
	}
	var sum StatusSummary
	for i := range apps {
		sum.Total++
		switch apps[i].NormalizedStatus() {
		case entity.StatusPending:
			sum.Pending++
		case entity.StatusApproved:
			sum.Approved++
		case entity.StatusRejected:
			sum.Rejected++
		default:
			sum.Other++
		}
	}
	return sum, nil
}

// findJobForApplication resolves the job an application refers to. The link
// is the job name matching JobTitle exactly; with duplicate names the store's
// first match wins.
func (s *ApplicationService) findJobForApplication(ctx context.Context, a *entity.Application) (*entity.Job, error) {
	j, err := s.Jobs.FindByName(ctx, a.JobTitle)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find job", "job", err)
	}
	return j, nil
}

// UpdateStatus changes an application's status on behalf of an authenticated
// requester who owns the matching job or is an admin.
func (s *ApplicationService) UpdateStatus(ctx context.Context, r entity.Requester, id, status string) (*entity.Application, error) {
	if !r.IsAuthenticated() {
		return nil, forbidden("Authorization required to change application status")
	}
	if strings.TrimSpace(status) == "" {
		return nil, invalid(map[string]string{"Status": "is required"})
	}
	a, err := s.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get application", "application", err)
	}
	job, err := s.findJobForApplication(ctx, a)
	if err != nil {
		return nil, err
	}
	if !policy.CanChangeStatus(r, job) {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"application_id": a.ID, "requester": r.ID, "role": r.Role}).Warn("status change denied")
		}
		if job != nil {
			return nil, forbidden("Only the job owner or admin can change application status")
		}
		return nil, forbidden("Only admin can change application status for this application")
	}

	previous := a.Status
	a.Status = status
	if err := s.Applications.Update(ctx, a); err != nil {
		return nil, storeErr("update application", "application", err)
	}
	s.publishStatusChanged(ctx, r, a, previous)
	return a, nil
}

func (s *ApplicationService) publishStatusChanged(ctx context.Context, r entity.Requester, a *entity.Application, previous string) {
	if s.Events == nil {
		return
	}
	evt := StatusChanged{
		Type:           EventStatusChanged,
		ApplicationID:  a.ID,
		JobTitle:       a.JobTitle,
		PreviousStatus: previous,
		Status:         a.Status,
		ChangedBy:      r.ID,
		ChangedAt:      time.Now().UTC(),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, EventStatusChanged, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("application_id", a.ID).Warn("publish status event failed")
	}
}

// UpdateFields applies patch to any application without an ownership check.
func (s *ApplicationService) UpdateFields(ctx context.Context, id string, patch ApplicationPatch) (*entity.Application, error) {
	a, err := s.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get application", "application", err)
	}
	patch.apply(a)
	if err := s.Applications.Update(ctx, a); err != nil {
		return nil, storeErr("update application", "application", err)
	}
	return a, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return storeErr("delete application", "application", s.Applications.Delete(ctx, id))
}

// UploadResume stores a resume file and returns its URL.
func (s *ApplicationService) UploadResume(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.Resumes == nil {
		return "", ErrStorageDisabled
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !resumeExtensions[ext] {
		return "", invalid(map[string]string{"file": "must be a .pdf, .doc, .docx or .txt file"})
	}
	if size <= 0 || size > MaxResumeSize {
		return "", invalid(map[string]string{"file": "must be between 1 byte and 5 MiB"})
	}
	objectPath := path.Join("resumes", uuid.NewString()+ext)
	url, err := s.Resumes.Upload(ctx, objectPath, contentType, io.LimitReader(r, MaxResumeSize))
	if err != nil {
		return "", &PersistenceError{Op: "upload resume", Err: err}
	}
	return url, nil
}
