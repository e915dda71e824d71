package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// ErrNotFound is wrapped by repositories when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	TouchLastChecked(ctx context.Context, id string, at time.Time) error
}

type SoilResultRepo interface {
	Create(ctx context.Context, r *domain.SoilTestResult) error
	GetByID(ctx context.Context, id string) (*domain.SoilTestResult, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SoilTestResult, error)
	ListAll(ctx context.Context) ([]*domain.SoilTestResult, error)
	MarkShared(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
