package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/db"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.UserProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Load returns the stored profile, or (nil, nil) when the row is missing.
func (s *profileService) Load(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) (err error) {
	defer observe(ctx, s.observer, "save-profile", time.Now().UTC(), map[string]any{
		"role":     string(p.Role),
		"location": p.Location,
	}, &err)

	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	return s.profiles.Upsert(ctx, p)
}

func (s *profileService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset-profile", time.Now().UTC(), nil, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSoilResultRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		p := domain.NewUserProfile()
		p.UpdatedAt = time.Now().UTC()
		return repository.NewSQLiteUserProfileRepo(tx).Upsert(ctx, &p)
	})
}
