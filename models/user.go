package models

import "time"

// AdminMobileNumber is the reserved phone-number sentinel for the single
// admin identity. Customer logins never use it since admin login is the
// only path that upserts this record.
const AdminMobileNumber = "admin"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	MobileNumber string    `json:"mobileNumber" gorm:"uniqueIndex;not null"`
	IsAdmin      bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
