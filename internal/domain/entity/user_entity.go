package entity

// User is an account of any role.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"FullName"`
	Email        string `json:"Email"`
	PhoneNo      *int64 `json:"PhoneNo,omitempty"`
	Address      string `json:"Address,omitempty"`
	Pincode      *int64 `json:"Pincode,omitempty"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// PublicUser is the redacted view returned with auth tokens.
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
	Role     Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}
