package model

import "time"

// Purchase marks a course as bought by a user. One row per (user, course);
// verifying the same pair again overwrites order and timestamp.
type Purchase struct {
	UserID      string    `gorm:"primaryKey;size:128;not null" json:"uid"`
	CourseID    string    `gorm:"primaryKey;size:128;not null" json:"courseId"`
	OrderID     string    `gorm:"size:64;index;not null" json:"orderId"` // paymob order id
	PurchasedAt time.Time `gorm:"not null" json:"purchasedAt"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
