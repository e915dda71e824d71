package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gardenhelper/internal/db"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/repository"
)

type resultService struct {
	results  repository.SoilResultRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewResultService(results repository.SoilResultRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ResultService {
	return &resultService{
		results:  results,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record stores the result and stamps the profile's last-checked time in one
// transaction.
func (s *resultService) Record(ctx context.Context, r *domain.SoilTestResult) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	defer observe(ctx, s.observer, "record-result", time.Now().UTC(), map[string]any{
		"result_id": r.ID,
		"shared":    r.Shared,
	}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSoilResultRepo(tx).Create(ctx, r); err != nil {
			return err
		}
		return repository.NewSQLiteUserProfileRepo(tx).TouchLastChecked(ctx, domain.DefaultProfileID, r.RecordedAt)
	})
}

func (s *resultService) MarkShared(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "share-result", time.Now().UTC(), map[string]any{"result_id": id}, &err)
	return s.results.MarkShared(ctx, id)
}

func (s *resultService) ListRecent(ctx context.Context, limit int) ([]*domain.SoilTestResult, error) {
	return s.results.ListRecent(ctx, limit)
}
