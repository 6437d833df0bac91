package entity

import "strings"

// Recognized application statuses. Any string is storable; only these are counted.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application links to a Job by title, not by id.
type Application struct {
	ID            string `json:"id"`
	JobTitle      string `json:"JobTitle"`
	CandidateName string `json:"CandidateName"`
	Resume        string `json:"Resume"`
	Status        string `json:"Status"`
	AppliedDate   string `json:"AppliedDate"`
	UpdatedDate   string `json:"UpdatedDate"`
	CreatedBy     string `json:"createdBy,omitempty"`
}

func (a *Application) SetCreatedBy(id string) { a.CreatedBy = id }

// NormalizedStatus is the lowercase form used for every status comparison.
func (a *Application) NormalizedStatus() string {
	return strings.ToLower(a.Status)
}

// ApplicationView is an application as listed, with the normalized status added.
type ApplicationView struct {
	Application
	NormalizedStatus string `json:"status"`
}
