package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/db"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/importer"
	"github.com/alexanderramin/gardenhelper/internal/repository"
)

type journalService struct {
	profiles repository.UserProfileRepo
	results  repository.SoilResultRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewJournalService(
	profiles repository.UserProfileRepo,
	results repository.SoilResultRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) JournalService {
	return &journalService{
		profiles: profiles,
		results:  results,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *journalService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	file, err := importer.LoadJournalFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading journal file: %w", err)
	}
	return s.ImportJournal(ctx, file)
}

// ImportJournal replaces the profile and all saved results with the file's
// contents in one transaction.
func (s *journalService) ImportJournal(ctx context.Context, file *importer.JournalFile) (res *ImportResult, err error) {
	if file == nil {
		return nil, &domain.ValidationError{Field: "journal", Message: "no journal to import"}
	}
	defer observe(ctx, s.observer, "import-journal", time.Now().UTC(), map[string]any{
		"results": len(file.Results),
	}, &err)

	if errs := importer.ValidateJournal(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	journal, err := importer.Convert(file)
	if err != nil {
		return nil, fmt.Errorf("converting journal: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		results := repository.NewSQLiteSoilResultRepo(tx)
		if err := results.DeleteAll(ctx); err != nil {
			return err
		}
		if err := repository.NewSQLiteUserProfileRepo(tx).Upsert(ctx, journal.Profile); err != nil {
			return err
		}
		for _, r := range journal.Results {
			if err := results.Create(ctx, r); err != nil {
				return fmt.Errorf("creating result %s: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Profile: journal.Profile, ResultCount: len(journal.Results)}, nil
}

func (s *journalService) Export(ctx context.Context) (*importer.JournalFile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if !p.IsSetUp() {
		return nil, &domain.ValidationError{Field: "profile", Message: "nothing to export until setup is complete"}
	}
	results, err := s.results.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Export(p, results), nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "journal validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return &domain.ValidationError{Field: "journal", Message: b.String()}
}
