package models

// User represents a registered account.
//
// OTP is non-nil exactly while a verification or password-reset challenge
// is outstanding; it is cleared when the code is consumed.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Verified     bool    `json:"verified"`
	OTP          *string `gorm:"column:otp" json:"-"`
}
