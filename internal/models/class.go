package models

import (
	"time"
)

// Class status values are a convention shared with the admin frontend; the
// status transition endpoint sets whatever it is given and does not validate
// against this vocabulary.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Class is a course listing submitted by an instructor. Email is the owner
// identity (a query filter, not an enforced foreign key). Seats is a plain
// signed integer: the decrement path has no floor and the count may legally
// go negative.
type Class struct {
	ID             uint    `json:"_id" gorm:"primaryKey"`
	ClassName      string  `json:"className" gorm:"size:200"`
	Image          string  `json:"image" gorm:"size:500"`
	InstructorName string  `json:"instructorName" gorm:"size:100"`
	Email          string  `json:"email" gorm:"index;size:255"`
	Seats          int     `json:"seats"`
	Price          float64 `json:"price"`
	Status         string  `json:"status" gorm:"size:20;default:pending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string {
	return "classes"
}
