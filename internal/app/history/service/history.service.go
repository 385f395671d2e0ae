package history_service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-import/domain/app"
	"gorm.io/gorm"
)

// Service keeps the relational audit trail of finished import jobs.
type Service struct {
	db  *gorm.DB
	log *slog.Logger
}

var _ app.RunHistory = &Service{}

func New(db *gorm.DB, log *slog.Logger) *Service {
	return &Service{db, log}
}

func (s *Service) Record(ctx context.Context, run *app.ImportRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record import run %s: %w", run.JobID, err)
	}

	return nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]app.ImportRun, error) {
	if limit < 1 {
		limit = 20
	}

	var runs []app.ImportRun
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}

	return runs, nil
}
