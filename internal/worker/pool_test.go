package worker

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolExecutePreservesOrder(t *testing.T) {
	pool := NewPool(4, func(_ context.Context, n int) (string, error) {
		return strconv.Itoa(n * 2), nil
	})

	jobs := pool.Execute(context.Background(), []int{1, 2, 3, 4, 5})
	require.Len(t, jobs, 5)

	for i, job := range jobs {
		require.NoError(t, job.Err)
		assert.Equal(t, i+1, job.Input)
		assert.Equal(t, strconv.Itoa((i+1)*2), job.Result)
	}
}

func TestPoolExecuteCapturesErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(2, func(_ context.Context, n int) (int, error) {
		if n%2 == 0 {
			return 0, boom
		}
		return n, nil
	})

	jobs := pool.Execute(context.Background(), []int{1, 2, 3})
	require.Len(t, jobs, 3)
	assert.NoError(t, jobs[0].Err)
	assert.ErrorIs(t, jobs[1].Err, boom)
	assert.NoError(t, jobs[2].Err)
}

func TestPoolMinimumOneWorker(t *testing.T) {
	pool := NewPool(0, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	jobs := pool.Execute(context.Background(), []int{7})
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].Result)
}

func TestPoolEmptyInput(t *testing.T) {
	pool := NewPool(2, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	assert.Empty(t, pool.Execute(context.Background(), nil))
}
