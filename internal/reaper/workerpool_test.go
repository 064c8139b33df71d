package reaper

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:           "failing task does not stop the pool",
			numTasks:       3,
			numWorkers:     2,
			expectedErrors: 1,
		},
		{
			name:       "zero size falls back to one worker",
			numTasks:   2,
			numWorkers: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var (
				executed atomic.Int32
				failed   atomic.Int32
				wg       sync.WaitGroup
			)
			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					if i < tt.expectedErrors {
						failed.Add(1)
						return assert.AnError
					}
					executed.Add(1)
					return nil
				})
				require.NoError(t, err)
			}

			wg.Wait()
			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.expectedErrors), executed.Load())
			assert.Equal(t, int32(tt.expectedErrors), failed.Load())
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	// fill the single-slot buffer while the worker is busy
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
