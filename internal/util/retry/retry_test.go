package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(func() error {
		calls++
		return nil
	}, WithSleep(func(time.Duration) { t.Fatal("no sleep expected") }))

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	var slept []time.Duration

	err := Do(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	},
		WithMaxAttempts(5),
		WithInitialDelay(5*time.Second),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, slept)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	var slept []time.Duration
	boom := errors.New("boom")

	err := Do(func() error {
		calls++
		return boom
	},
		WithMaxAttempts(7),
		WithInitialDelay(5*time.Second),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 7, calls)

	// Backoff strictly doubles; no sleep follows the final attempt.
	want := []time.Duration{5, 10, 20, 40, 80, 160}
	require.Len(t, slept, len(want))
	for i, w := range want {
		assert.Equal(t, w*time.Second, slept[i])
	}
}

func TestDo_CustomMultiplier(t *testing.T) {
	var slept []time.Duration
	_ = Do(func() error { return errors.New("x") },
		WithMaxAttempts(3),
		WithInitialDelay(time.Second),
		WithMultiplier(3.0),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	)
	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second}, slept)
}
