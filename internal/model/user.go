package model

// Role identifies what a user can do in the marketplace.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// UserStatus is the account lifecycle state toggled by admins.
type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

// User represents a marketplace account. Passwords are stored in plain text
// because this is throwaway demo data; see DESIGN.md before reusing any of it.
type User struct {
	ID       string     `json:"id"`
	Role     Role       `json:"role"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Status   UserStatus `json:"status"`

	// Buyer and seller profile fields.
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Pincode string `json:"pincode,omitempty"`

	// Seller-only fields.
	BusinessName         string `json:"businessName,omitempty"`
	OrganicCertification string `json:"organicCertification,omitempty"`
}

// Public projects the public-safe, role-appropriate subset of the user that is
// allowed to live inside a session.
func (u User) Public() SessionUser {
	su := SessionUser{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
	switch u.Role {
	case RoleBuyer:
		su.Phone = u.Phone
		su.Address = u.Address
		su.Pincode = u.Pincode
	case RoleSeller:
		su.Phone = u.Phone
		su.Address = u.Address
		su.Pincode = u.Pincode
		su.BusinessName = u.BusinessName
		su.OrganicCertification = u.OrganicCertification
	}
	return su
}
