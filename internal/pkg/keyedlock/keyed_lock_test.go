package keyedlock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gasdelivery/internal/pkg/errs"
	"gasdelivery/internal/pkg/keyedlock"
)

func TestAcquireAndRelease(t *testing.T) {
	lock := keyedlock.NewKeyedLock(time.Second)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	release()

	release, err = lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	release()
}

func TestContendedKeyConflicts(t *testing.T) {
	lock := keyedlock.NewKeyedLock(50 * time.Millisecond)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	defer release()

	_, err = lock.Acquire(context.Background(), "order-1")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestUnrelatedKeysDoNotBlock(t *testing.T) {
	lock := keyedlock.NewKeyedLock(50 * time.Millisecond)

	release1, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	defer release1()

	release2, err := lock.Acquire(context.Background(), "order-2")
	require.NoError(t, err)
	release2()
}

func TestWaiterProceedsAfterRelease(t *testing.T) {
	lock := keyedlock.NewKeyedLock(time.Second)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := lock.Acquire(context.Background(), "order-1")
		assert.NoError(t, err)
		if err == nil {
			r()
		}
		close(acquired)
	}()

	time.Sleep(10 * time.Millisecond)
	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the released key")
	}
}

func TestCancelledContextConflicts(t *testing.T) {
	lock := keyedlock.NewKeyedLock(time.Second)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = lock.Acquire(ctx, "order-1")
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestReleaseIsIdempotent(t *testing.T) {
	lock := keyedlock.NewKeyedLock(time.Second)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)

	release()
	release()

	next, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)
	next()
}

func TestExactlyOneOfTwoConcurrentHoldersWins(t *testing.T) {
	lock := keyedlock.NewKeyedLock(20 * time.Millisecond)

	release, err := lock.Acquire(context.Background(), "order-1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	conflicts := 0

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := lock.Acquire(context.Background(), "order-1"); err != nil {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	release()

	assert.Equal(t, 4, conflicts, "all contenders must conflict while the key is held")
}
