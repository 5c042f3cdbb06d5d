package model

import "time"

const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// User is owned by the authentication service. Only ID and Role are read here.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Role      string    `json:"role" gorm:"not null;size:16;default:'participant'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
