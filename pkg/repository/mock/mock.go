package mock

import (
	"context"

	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	TechRepo  *TechnologyRepo
	EventRepo *EventRepo
	UserRepo  *UserRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		TechRepo:  &TechnologyRepo{},
		EventRepo: &EventRepo{},
		UserRepo:  &UserRepo{},
	}
}

// TechnologyRepo is an in-memory TechnologyRepo keeping insertion order.
type TechnologyRepo struct {
	Stored    []models.Technology
	CreateErr error
	ListErr   error
}

var _ repository.TechnologyRepo = (*TechnologyRepo)(nil)

func (m *TechnologyRepo) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *TechnologyRepo) GetTechnology(ctx context.Context, id string) (*models.Technology, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			t := m.Stored[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *TechnologyRepo) CreateTechnology(ctx context.Context, t *models.Technology) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == t.ID || m.Stored[i].Docket == t.Docket {
			return repository.ErrDuplicate
		}
	}
	m.Stored = append(m.Stored, *t)
	return nil
}

func (m *TechnologyRepo) UpdateTechnology(ctx context.Context, t *models.Technology) error {
	for i := range m.Stored {
		if m.Stored[i].ID == t.ID {
			m.Stored[i] = *t
			return nil
		}
	}
	return nil
}

func (m *TechnologyRepo) DeleteTechnology(ctx context.Context, id string) (bool, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// EventRepo is an in-memory EventRepo with max+1 id assignment.
type EventRepo struct {
	Stored    []models.Event
	CreateErr error
	ListErr   error
}

var _ repository.EventRepo = (*EventRepo)(nil)

func (m *EventRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *EventRepo) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			e := m.Stored[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *EventRepo) CreateEvent(ctx context.Context, e *models.Event) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	var maxID int64
	for i := range m.Stored {
		if m.Stored[i].ID > maxID {
			maxID = m.Stored[i].ID
		}
	}
	e.ID = maxID + 1
	m.Stored = append(m.Stored, *e)
	return e.ID, nil
}

func (m *EventRepo) UpdateEvent(ctx context.Context, e *models.Event) error {
	for i := range m.Stored {
		if m.Stored[i].ID == e.ID {
			m.Stored[i] = *e
			return nil
		}
	}
	return nil
}

func (m *EventRepo) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// UserRepo is an in-memory UserRepo holding a single credential.
type UserRepo struct {
	Stored    *models.User
	CreateErr error
	GetErr    error
}

var _ repository.UserRepo = (*UserRepo)(nil)

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if m.Stored != nil && m.Stored.Email == u.Email {
		return 0, repository.ErrDuplicate
	}
	m.Stored = &models.User{ID: 1, Email: u.Email, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}
