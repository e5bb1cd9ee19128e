package validator

// Request DTOs for every mutating operation. Read paths take their inputs
// from URL parameters only. Registration deliberately validates nothing
// beyond the identity field: the operation accepts any payload shape and
// reports "already exists" instead of failing.

// TokenRequest is the identity claim signed into a bearer token.
type TokenRequest struct {
	Email string `json:"email" validate:"required"`
}

// RegisterUserRequest creates a directory record on first sign-in.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// UpdateRoleRequest mutates a user's role; only admin and instructor are
// accepted targets.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,assignable_role"`
}

// CreateClassRequest is an instructor's class submission. The operation
// inserts unconditionally, so no field rules apply.
type CreateClassRequest struct {
	ClassName      string  `json:"className"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Email          string  `json:"email"`
	Seats          int     `json:"seats"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
}

// UpdateClassStatusRequest sets a class status; the vocabulary is a
// frontend convention and is intentionally not validated here.
type UpdateClassStatusRequest struct {
	Status string `json:"status"`
}

// ReplaceClassRequest carries the four fields the upsert may write.
type ReplaceClassRequest struct {
	ClassName string  `json:"className"`
	Image     string  `json:"image"`
	Seats     int     `json:"seats"`
	Price     float64 `json:"price"`
}

// CreateSelectionRequest records a student choosing a class.
type CreateSelectionRequest struct {
	StudentEmail string  `json:"studentEmail"`
	Email        string  `json:"email"`
	ClassName    string  `json:"className"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
}

// AttachTransactionRequest promotes a selection to paid.
type AttachTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// PaymentIntentRequest asks the checkout gateway for a client secret.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}
