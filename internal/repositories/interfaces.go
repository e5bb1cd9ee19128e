package repositories

// ===== SHARED HELPER STRUCTS =====

// ClassReplace holds the exact four fields the replace/upsert operation may
// touch. Owner identity and status are never written through this path.
type ClassReplace struct {
	ClassName string  `json:"className"`
	Image     string  `json:"image"`
	Seats     int     `json:"seats"`
	Price     float64 `json:"price"`
}

// DefaultPopularLimit is the truncation applied to the popularity
// aggregation when the caller does not ask for a specific size.
const DefaultPopularLimit = 6
