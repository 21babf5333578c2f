// Package metricrun stores BLEU measurements picked from evaluation runs so
// scores can be compared across training runs.
package metricrun

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/slangbridge/internal/adapter/postgres"
	"github.com/heartmarshall/slangbridge/internal/domain"
)

const (
	tableName = "metric_runs"
	entity    = "metric_run"
)

var columns = []string{"id", "run_id", "label", "bleu", "direction", "source_file", "extra", "created_at"}

// Run is one persisted metric record.
type Run struct {
	ID uuid.UUID
	// RunID groups the records stored by one CLI invocation; uuid.Nil when unknown.
	RunID      uuid.UUID
	Label      string
	BLEU       float64
	Direction  domain.Direction
	SourceFile string
	Extra      map[string]any
	CreatedAt  time.Time
}

// Repo provides metric run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// New creates a new metric run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert stores one run. A zero ID is replaced by a fresh UUID; CreatedAt is
// assigned by the database.
func (r *Repo) Insert(ctx context.Context, run Run) (*Run, error) {
	if err := validate(run); err != nil {
		return nil, err
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	query, args, err := r.sb.
		Insert(tableName).
		Columns(columns[:7]...).
		Values(run.ID, nullableUUID(run.RunID), run.Label, run.BLEU, run.Direction.String(), run.SourceFile, extraOrEmpty(run.Extra)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&run.CreatedAt); err != nil {
		return nil, postgres.MapError(err, entity, run.ID)
	}
	return &run, nil
}

// BulkInsert stores runs in one pgx.Batch round trip and returns the number
// of rows written. Runs whose ID already exists are skipped. Zero IDs are
// filled in place; CreatedAt is set to now.
func (r *Repo) BulkInsert(ctx context.Context, runs []Run) (int, error) {
	if len(runs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for i := range runs {
		if err := validate(runs[i]); err != nil {
			return 0, fmt.Errorf("run %d: %w", i, err)
		}
		if runs[i].ID == uuid.Nil {
			runs[i].ID = uuid.New()
		}
		runs[i].CreatedAt = now

		run := runs[i]
		query, args, err := r.sb.
			Insert(tableName).
			Columns(columns...).
			Values(run.ID, nullableUUID(run.RunID), run.Label, run.BLEU, run.Direction.String(), run.SourceFile, extraOrEmpty(run.Extra), run.CreatedAt).
			Suffix("ON CONFLICT (id) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}
		batch.Queue(query, args...)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, entity, uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// History returns the newest runs for label, newest first.
// A non-positive limit returns every run. Returns an empty slice when none exist.
func (r *Repo) History(ctx context.Context, label string, limit int) ([]Run, error) {
	sel := r.sb.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"label": label}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("metric run history %q: %w", label, err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("metric run history %q: %w", label, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metric run history %q: %w", label, err)
	}
	return runs, nil
}

// Latest returns the newest run for label or domain.ErrNotFound.
func (r *Repo) Latest(ctx context.Context, label string) (*Run, error) {
	query, args, err := r.sb.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"label": label}).
		OrderBy("created_at DESC", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	run, err := scanRun(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("label %q: %w", label, postgres.MapError(err, entity, uuid.Nil))
	}
	return &run, nil
}

// Labels returns every stored label in alphabetical order.
func (r *Repo) Labels(ctx context.Context) ([]string, error) {
	query, args, err := r.sb.
		Select("DISTINCT label").
		From(tableName).
		OrderBy("label").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build labels query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list metric labels: %w", err)
	}

	labels, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list metric labels: %w", err)
	}
	return labels, nil
}

func scanRun(row pgx.Row) (Run, error) {
	var (
		run       Run
		runID     pgtype.UUID
		direction string
	)
	err := row.Scan(&run.ID, &runID, &run.Label, &run.BLEU, &direction, &run.SourceFile, &run.Extra, &run.CreatedAt)
	if err != nil {
		return Run{}, err
	}
	if runID.Valid {
		run.RunID = uuid.UUID(runID.Bytes)
	}
	run.Direction = domain.Direction(direction)
	return run, nil
}

func validate(run Run) error {
	if run.Label == "" {
		return domain.NewValidationError("label", "required")
	}
	if run.Direction != "" && !run.Direction.IsValid() {
		return domain.NewValidationError("direction", "must be forward or reverse")
	}
	return nil
}

func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func extraOrEmpty(extra map[string]any) map[string]any {
	if extra == nil {
		return map[string]any{}
	}
	return extra
}
