package metricstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slangbridge/internal/adapter/postgres"
	"github.com/heartmarshall/slangbridge/internal/adapter/postgres/metricrun"
	"github.com/heartmarshall/slangbridge/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/slangbridge/internal/domain"
)

func TestService_Store_Postgres(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	svc := newTestService(metricrun.New(pool), postgres.NewTxManager(pool))
	ctx := context.Background()

	forward := testhelper.UniqueLabel("store_fwd")
	reverse := testhelper.UniqueLabel("store_reverse")
	in := StoreInput{
		RunID: uuid.New(),
		Records: []domain.MetricRecord{
			{Label: forward, BLEU: 20},
			{Label: reverse, BLEU: 10},
		},
		Sources: map[string]string{forward: "a_bleu.json"},
	}

	n, err := svc.Store(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	latest, err := metricrun.New(pool).Latest(ctx, reverse)
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionReverse, latest.Direction)
	assert.Equal(t, in.RunID, latest.RunID)

	// A second store of the same run adds a new label but repeats the old
	// ones, so the whole batch rolls back.
	extra := testhelper.UniqueLabel("store_fwd_extra")
	in.Records = append(in.Records, domain.MetricRecord{Label: extra, BLEU: 5})
	_, err = svc.Store(ctx, in)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	assert.Equal(t, 1, testhelper.CountRuns(t, pool, forward))
	assert.Equal(t, 0, testhelper.CountRuns(t, pool, extra))
}
