package cron

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce_ExecutesEveryJob(t *testing.T) {
	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	// A failing job is logged, not fatal
	assert.Equal(t, int32(1), second.Load())
}

func TestStartJitter_Bounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := startJitter(time.Hour)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, 6*time.Minute)
	}

	// Jitter for day-scale intervals is capped at a minute
	for i := 0; i < 50; i++ {
		assert.Less(t, startJitter(24*time.Hour), time.Minute)
	}

	assert.Equal(t, time.Duration(0), startJitter(0))
}

func TestStartStop_RunsJobAtStartup(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{})
	var once sync.Once
	s.AddJob("startup", time.Minute, func(ctx context.Context) error {
		once.Do(func() { close(ran) })
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(10 * time.Second):
		t.Fatal("job did not run at startup")
	}
	s.Stop()
}
