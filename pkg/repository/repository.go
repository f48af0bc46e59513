package repository

import (
	"context"
	"errors"

	"github.com/ttoweb/techportal/internal/models"
)

// ErrDuplicate is returned (wrapped) by Create operations when a unique
// field collides with an existing record.
var ErrDuplicate = errors.New("duplicate unique field")

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Get methods return (nil, nil) when no record matches; callers translate
// that into a not-found response.

type TechnologyRepo interface {
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
	GetTechnology(ctx context.Context, id string) (*models.Technology, error)
	CreateTechnology(ctx context.Context, t *models.Technology) error
	UpdateTechnology(ctx context.Context, t *models.Technology) error
	DeleteTechnology(ctx context.Context, id string) (bool, error)
}

type EventRepo interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	// CreateEvent assigns the next id (max existing + 1, atomically) into
	// e.ID and persists the event; any caller-supplied id is overwritten.
	CreateEvent(ctx context.Context, e *models.Event) (int64, error)
	UpdateEvent(ctx context.Context, e *models.Event) error
	DeleteEvent(ctx context.Context, id int64) (bool, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
