package service

import (
	"context"

	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/importer"
)

// ProfileService owns the single local profile. It satisfies garden.ProfileStore.
type ProfileService interface {
	Load(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
	// Reset clears the profile back to its pre-setup state and drops saved results.
	Reset(ctx context.Context) error
}

// ResultService records soil test results. It satisfies garden.ResultRecorder.
type ResultService interface {
	Record(ctx context.Context, r *domain.SoilTestResult) error
	MarkShared(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SoilTestResult, error)
}

// JournalService backs up and restores the profile with its saved results.
type JournalService interface {
	// Import replaces all local data with the journal at filePath.
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportJournal(ctx context.Context, file *importer.JournalFile) (*ImportResult, error)
	Export(ctx context.Context) (*importer.JournalFile, error)
}

// ImportResult summarizes a journal import.
type ImportResult struct {
	Profile     *domain.UserProfile
	ResultCount int
}
