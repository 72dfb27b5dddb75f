package entity

import "time"

// UserType discriminates the two account kinds the back office serves.
type UserType int

const (
	// UserTypeMerchant is a store owner managing reference data.
	UserTypeMerchant UserType = 1
	// UserTypeEndUser is a shopper placing orders.
	UserTypeEndUser UserType = 2
)

// Role names assigned on email confirmation.
const (
	RoleMerchant = "merchant"
	RoleEndUser  = "end_user"
)

// Role returns the role claim that corresponds to the user type.
func (t UserType) Role() string {
	if t == UserTypeMerchant {
		return RoleMerchant
	}

	return RoleEndUser
}

// User is an account record. The lifecycle is Unconfirmed -> Confirmed:
// a freshly registered user holds a confirmation token hash and no role;
// redeeming the token flips EmailConfirmed and assigns the role.
//
// ConfirmTokenHash and ResetTokenHash store SHA-256 hashes of the raw
// opaque tokens mailed to the user; the raw values never touch storage.
type User struct {
	ID               int
	Email            string // Unique login identifier.
	PasswordHash     string
	UserType         UserType
	StoreName        string // Merchant accounts only.
	PhoneNumber      string
	Role             string // Empty until the email is confirmed.
	EmailConfirmed   bool
	ConfirmTokenHash string
	ConfirmExpiresAt time.Time
	ResetTokenHash   string
	ResetExpiresAt   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u *User) EntityID() int      { return u.ID }
func (u *User) SetEntityID(id int) { u.ID = id }
