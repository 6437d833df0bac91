package entity

// Requester is the identity derived from a request credential for one call.
// The zero value is the anonymous requester.
type Requester struct {
	ID   string
	Role Role
}

// Anonymous returns the requester used when no valid credential is present.
func Anonymous() Requester { return Requester{} }

func (r Requester) IsAuthenticated() bool { return r.ID != "" }

func (r Requester) IsAdmin() bool { return r.IsAuthenticated() && r.Role == RoleAdmin }

func (r Requester) IsRecruiter() bool { return r.IsAuthenticated() && r.Role == RoleRecruiter }

func (r Requester) IsJobseeker() bool { return r.IsAuthenticated() && r.Role == RoleJobseeker }
