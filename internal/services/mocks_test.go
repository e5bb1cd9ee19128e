package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
)

// MockRepository is an in-memory Repository for testing.
type MockRepository struct {
	users      *MockUserRepository
	classes    *MockClassRepository
	selections *MockSelectionRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:      &MockUserRepository{},
		classes:    &MockClassRepository{},
		selections: &MockSelectionRepository{},
	}
}

func (m *MockRepository) User() repositories.UserRepository           { return m.users }
func (m *MockRepository) Class() repositories.ClassRepository         { return m.classes }
func (m *MockRepository) Selection() repositories.SelectionRepository { return m.selections }
func (m *MockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }

// MockUserRepository keeps users in a slice. FailWith forces every call to
// return the given error.
type MockUserRepository struct {
	Users    []*models.User
	FailWith error
	nextID   uint
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Users, nil
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []*models.User
	for _, u := range m.Users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, gorm.ErrRecordNotFound)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	for _, u := range m.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.nextID++
	user.ID = m.nextID
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.UpdateResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, u := range m.Users {
		if u.ID == id {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				modified = 1
			}
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

// MockClassRepository keeps classes in a slice.
type MockClassRepository struct {
	Classes  []*models.Class
	FailWith error
	nextID   uint
}

func (m *MockClassRepository) List(ctx context.Context) ([]*models.Class, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Classes, nil
}

func (m *MockClassRepository) GetByID(ctx context.Context, id uint) (*models.Class, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, c := range m.Classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("class %d: %w", id, gorm.ErrRecordNotFound)
}

func (m *MockClassRepository) ListByEmail(ctx context.Context, email string) ([]*models.Class, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	// Left nil on zero matches, the same shape gorm's Find leaves behind.
	var out []*models.Class
	for _, c := range m.Classes {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockClassRepository) Create(ctx context.Context, class *models.Class) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	if class.ID == 0 {
		m.nextID++
		class.ID = m.nextID
	}
	m.Classes = append(m.Classes, class)
	return nil
}

func (m *MockClassRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.UpdateResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, c := range m.Classes {
		if c.ID == id {
			c.Status = status
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

func (m *MockClassRepository) AdjustSeats(ctx context.Context, id uint, delta int) (*models.UpdateResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, c := range m.Classes {
		if c.ID == id {
			c.Seats += delta
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

func (m *MockClassRepository) Replace(ctx context.Context, id uint, fields repositories.ClassReplace) (*models.UpdateResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, c := range m.Classes {
		if c.ID == id {
			c.ClassName = fields.ClassName
			c.Image = fields.Image
			c.Seats = fields.Seats
			c.Price = fields.Price
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	created := &models.Class{
		ID:        id,
		ClassName: fields.ClassName,
		Image:     fields.Image,
		Seats:     fields.Seats,
		Price:     fields.Price,
	}
	m.Classes = append(m.Classes, created)
	upserted := id
	return &models.UpdateResult{UpsertedID: &upserted}, nil
}

// MockSelectionRepository keeps selections in a slice.
type MockSelectionRepository struct {
	Selections []*models.Selection
	FailWith   error
	nextID     uint
}

func (m *MockSelectionRepository) List(ctx context.Context) ([]*models.Selection, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Selections, nil
}

func (m *MockSelectionRepository) ListByStudent(ctx context.Context, email string) ([]*models.Selection, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []*models.Selection
	for _, s := range m.Selections {
		if s.StudentEmail == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockSelectionRepository) ListPaidByInstructor(ctx context.Context, email string) ([]*models.Selection, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []*models.Selection
	for _, s := range m.Selections {
		if s.Email == email && s.Paid() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockSelectionRepository) Popular(ctx context.Context, limit int) ([]*models.PopularClass, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	byName := map[string]*models.PopularClass{}
	var order []string
	for _, s := range m.Selections {
		if !s.Paid() {
			continue
		}
		row, ok := byName[s.ClassName]
		if !ok {
			row = &models.PopularClass{ClassName: s.ClassName, Image: s.Image, Price: s.Price}
			byName[s.ClassName] = row
			order = append(order, s.ClassName)
		}
		row.Count++
	}
	var out []*models.PopularClass
	for _, name := range order {
		out = append(out, byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.Compare(out[i].ClassName, out[j].ClassName) < 0
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockSelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.nextID++
	selection.ID = m.nextID
	m.Selections = append(m.Selections, selection)
	return nil
}

func (m *MockSelectionRepository) AttachTransaction(ctx context.Context, id uint, transactionID string) (*models.UpdateResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, s := range m.Selections {
		if s.ID == id {
			txn := transactionID
			s.TransactionID = &txn
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

func (m *MockSelectionRepository) Delete(ctx context.Context, id uint) (*models.DeleteResult, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for i, s := range m.Selections {
		if s.ID == id {
			m.Selections = append(m.Selections[:i], m.Selections[i+1:]...)
			return &models.DeleteResult{DeletedCount: 1, Acknowledged: true}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}
