package entity

// DefaultJobStatus is assigned to jobs created without an explicit status.
const DefaultJobStatus = "Active"

// Job is a posting. CreatedBy is a weak reference to the owning user.
type Job struct {
	ID           string  `json:"id"`
	Name         string  `json:"JobsName"`
	Type         string  `json:"JobsType"`
	Description  string  `json:"JobDesc"`
	Requirements string  `json:"Requirements"`
	Location     string  `json:"Location"`
	Salary       float64 `json:"Salary"`
	CompanyName  string  `json:"CompanyName,omitempty"`
	CreatedBy    string  `json:"createdBy,omitempty"`
	Status       string  `json:"status"`
}

func (j *Job) SetCreatedBy(id string) { j.CreatedBy = id }
