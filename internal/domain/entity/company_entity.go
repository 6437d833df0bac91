package entity

// Company is a plain record; RegistrationNo is unique.
type Company struct {
	ID             string `json:"id"`
	Name           string `json:"CompanyName"`
	RegistrationNo string `json:"RegistrationNo"`
	Type           string `json:"CompanyType"`
	Nature         string `json:"CompanyNature"`
	Address        string `json:"CompanyAddress"`
	ContactNo      int64  `json:"ContactNo"`
	Email          string `json:"Email"`
}
