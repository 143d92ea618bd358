package models

// User represents a registered account. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(100);not null" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255);not null" validate:"required,min=6"`
}
