// Package policy holds the pure authorization decisions over a Requester and
// resource ownership facts. Nothing here performs I/O.
package policy

import "github.com/aspyra/jobboard-api/internal/domain/entity"

// Stampable is implemented by entities that record their creator.
type Stampable interface {
	SetCreatedBy(id string)
}

// VisibleJobs returns the jobs the requester may list. Recruiters see only
// the jobs they created; everyone else, anonymous included, sees all jobs.
func VisibleJobs(r entity.Requester, jobs []entity.Job) []entity.Job {
	if !r.IsRecruiter() {
		return jobs
	}
	out := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.CreatedBy == r.ID {
			out = append(out, j)
		}
	}
	return out
}

// VisibleApplications returns the applications the requester may list.
// Recruiters see applications whose JobTitle names one of their jobs,
// jobseekers see their own, admins and anonymous callers see all.
func VisibleApplications(r entity.Requester, apps []entity.Application, jobs []entity.Job) []entity.Application {
	switch {
	case r.IsRecruiter():
		titles := make(map[string]struct{})
		for _, j := range VisibleJobs(r, jobs) {
			if j.Name != "" {
				titles[j.Name] = struct{}{}
			}
		}
		out := make([]entity.Application, 0)
		for _, a := range apps {
			if _, ok := titles[a.JobTitle]; ok {
				out = append(out, a)
			}
		}
		return out
	case r.IsJobseeker():
		out := make([]entity.Application, 0)
		for _, a := range apps {
			if a.CreatedBy == r.ID {
				out = append(out, a)
			}
		}
		return out
	default:
		return apps
	}
}

// CanChangeStatus decides whether r may change the status of an application
// whose matching job is job (nil when no job carries the application's title).
func CanChangeStatus(r entity.Requester, job *entity.Job) bool {
	if !r.IsAuthenticated() {
		return false
	}
	if r.Role == entity.RoleAdmin {
		return true
	}
	return job != nil && job.CreatedBy != "" && job.CreatedBy == r.ID
}

// StampCreator records the requester as creator when authenticated.
func StampCreator(r entity.Requester, e Stampable) {
	if r.IsAuthenticated() {
		e.SetCreatedBy(r.ID)
	}
}
