package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueLabel returns a metric label no other test uses, so parallel tests
// sharing the container never see each other's rows.
func UniqueLabel(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

// CountRuns returns how many metric_runs rows carry label.
func CountRuns(t *testing.T, pool *pgxpool.Pool, label string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM metric_runs WHERE label = $1`, label,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count metric_runs: %v", err)
	}
	return n
}
