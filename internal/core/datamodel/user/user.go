package user

import "time"

// Account is the persistence model for the users table. The password hash
// column is write-only from the application's point of view: domain models
// never carry it.
type Account struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	Username     string    `gorm:"column:username;uniqueIndex;not null" db:"username"`
	PasswordHash string    `gorm:"column:password;not null" db:"password"`
	Role         string    `gorm:"column:role;not null;default:user" db:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" db:"created_at"`
}

func (Account) TableName() string {
	return "users"
}
