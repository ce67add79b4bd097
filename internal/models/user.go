package models

// Access levels carried in the token's accessLevel claim.
const (
	AccessLevelUser  = "user"
	AccessLevelAdmin = "admin"
)

// User is the outward-facing user record. It never carries credentials.
type User struct {
	Username  string `gorm:"column:username" json:"username"`
	Name      string `gorm:"column:name" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}

// UserCredentials is the stored user row including the secret hash and role.
type UserCredentials struct {
	User
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	AccessLevel  string `gorm:"column:access_level" json:"-"`
}

// NewUser is the sign-up payload.
type NewUser struct {
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Password  *string `json:"password"`
	AvatarURL string  `json:"avatar_url"`
}

// Identity is the decoded caller of an authenticated request.
type Identity struct {
	Username    string
	AccessLevel string
}

// IsAdmin reports whether the identity carries the elevated role.
func (i Identity) IsAdmin() bool {
	return i.AccessLevel == AccessLevelAdmin
}
