// Package metricstore persists the metric records of one evaluation run.
package metricstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/slangbridge/internal/adapter/postgres/metricrun"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/metrics"
)

// runRepo defines the metric run repository interface needed by the service.
type runRepo interface {
	BulkInsert(ctx context.Context, runs []metricrun.Run) (int, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service stores metric records.
type Service struct {
	log  *slog.Logger
	runs runRepo
	tx   txManager
}

// NewService creates a new metric store service.
func NewService(logger *slog.Logger, runs runRepo, tx txManager) *Service {
	return &Service{
		log:  logger.With("service", "metricstore"),
		runs: runs,
		tx:   tx,
	}
}

// StoreInput is one run's worth of records.
type StoreInput struct {
	RunID   uuid.UUID
	Records []domain.MetricRecord
	// Sources maps a label to the file it was read from.
	Sources map[string]string
}

// Store writes every record of in inside one transaction and returns the
// number of rows stored. Row IDs derive from the run ID and label, so storing
// the same run twice fails with domain.ErrAlreadyExists and keeps nothing new.
func (s *Service) Store(ctx context.Context, in StoreInput) (int, error) {
	if in.RunID == uuid.Nil {
		return 0, domain.NewValidationError("run_id", "required")
	}
	if len(in.Records) == 0 {
		return 0, nil
	}

	runs := make([]metricrun.Run, len(in.Records))
	for i, r := range in.Records {
		runs[i] = metricrun.Run{
			ID:         RecordID(in.RunID, r.Label),
			RunID:      in.RunID,
			Label:      r.Label,
			BLEU:       r.BLEU,
			Direction:  metrics.DirectionOf(r.Label),
			SourceFile: in.Sources[r.Label],
			Extra:      r.Extra,
		}
	}

	var stored int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.runs.BulkInsert(ctx, runs)
		if err != nil {
			return err
		}
		if n != len(runs) {
			return fmt.Errorf("%d of %d records already stored: %w", len(runs)-n, len(runs), domain.ErrAlreadyExists)
		}
		stored = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store run %s: %w", in.RunID, err)
	}

	s.log.InfoContext(ctx, "metric runs stored",
		slog.String("run_id", in.RunID.String()),
		slog.Int("rows", stored),
	)
	return stored, nil
}

// RecordID is the stable row ID of label within run.
func RecordID(runID uuid.UUID, label string) uuid.UUID {
	return uuid.NewSHA1(runID, []byte(label))
}
