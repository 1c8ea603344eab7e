package repository

import "time"

type User struct {
	ID             uint    `gorm:"primaryKey"`
	Username       string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string  `gorm:"not null"`
	ProfilePicture *string `gorm:"type:text"` // data URI, NULL when unset
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Note struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// UserChanges lists the user columns to overwrite; nil fields are left alone.
type UserChanges struct {
	Username     *string
	PasswordHash *string
}
