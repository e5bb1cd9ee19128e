package models

import (
	"time"
)

// Selection is a student's record of choosing a class. The class fields are
// denormalized copies, not foreign keys. A non-nil TransactionID is the sole
// paid/unpaid discriminator used by the popularity aggregation and the
// paid-by-instructor filter.
type Selection struct {
	ID            uint    `json:"_id" gorm:"primaryKey"`
	StudentEmail  string  `json:"studentEmail" gorm:"index;size:255"`
	Email         string  `json:"email" gorm:"index;size:255"`
	ClassName     string  `json:"className" gorm:"size:200"`
	Image         string  `json:"image" gorm:"size:500"`
	Price         float64 `json:"price"`
	TransactionID *string `json:"transactionId,omitempty" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
}

func (Selection) TableName() string {
	return "selected_classes"
}

// Paid reports whether the selection carries a payment confirmation.
func (s *Selection) Paid() bool {
	return s.TransactionID != nil && *s.TransactionID != ""
}

// PopularClass is one row of the enrollment popularity aggregation: paid
// selections grouped by class name, ordered by count. The representative
// image and price are arbitrary within a group; all rows of a group carry
// the same denormalized values in practice.
type PopularClass struct {
	ClassName string  `json:"className" gorm:"column:class_name"`
	Count     int64   `json:"count" gorm:"column:count"`
	Image     string  `json:"image" gorm:"column:image"`
	Price     float64 `json:"price" gorm:"column:price"`
}
