package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/testutil"
)

type countingReconciler struct {
	calls atomic.Int32
	err   error
}

func (r *countingReconciler) ReconcileAggregates(ctx context.Context) (ledger.ReconcileResult, error) {
	r.calls.Add(1)
	return ledger.ReconcileResult{Checked: 2, Updated: 1}, r.err
}

func TestNew_RejectsNonPositiveInterval(t *testing.T) {
	_, err := New(&countingReconciler{}, 0, testutil.NopLogger())
	assert.Error(t, err)
}

func TestRunNow(t *testing.T) {
	reconciler := &countingReconciler{}
	s, err := New(reconciler, time.Hour, testutil.NopLogger())
	require.NoError(t, err)

	s.Start()
	defer func() { assert.NoError(t, s.Shutdown()) }()

	require.NoError(t, s.RunNow())
	assert.Eventually(t, func() bool { return reconciler.calls.Load() >= 1 },
		time.Second, 10*time.Millisecond)
}

func TestRunNow_ErrorIsLoggedNotFatal(t *testing.T) {
	reconciler := &countingReconciler{err: errors.New("redis down")}
	s, err := New(reconciler, time.Hour, testutil.NopLogger())
	require.NoError(t, err)

	s.Start()
	defer func() { assert.NoError(t, s.Shutdown()) }()

	require.NoError(t, s.RunNow())
	assert.Eventually(t, func() bool { return reconciler.calls.Load() >= 1 },
		time.Second, 10*time.Millisecond)
}

func TestIntervalRuns(t *testing.T) {
	reconciler := &countingReconciler{}
	s, err := New(reconciler, 20*time.Millisecond, testutil.NopLogger())
	require.NoError(t, err)

	s.Start()
	defer func() { assert.NoError(t, s.Shutdown()) }()

	assert.Eventually(t, func() bool { return reconciler.calls.Load() >= 2 },
		2*time.Second, 10*time.Millisecond)
}
