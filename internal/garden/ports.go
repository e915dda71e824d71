package garden

import (
	"context"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// ProfileStore loads and saves the single local user profile. Load returns
// (nil, nil) when no profile has been saved yet.
type ProfileStore interface {
	Load(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

// ResultRecorder keeps completed soil test results.
type ResultRecorder interface {
	Record(ctx context.Context, r *domain.SoilTestResult) error
	MarkShared(ctx context.Context, id string) error
}
