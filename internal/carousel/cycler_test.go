package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp_StaysInRange(t *testing.T) {
	for n := 2; n <= 12; n++ {
		for i := -10 * n; i <= 10*n; i++ {
			got := Clamp(i, n)
			require.GreaterOrEqual(t, got, 0, "Clamp(%d, %d)", i, n)
			require.Less(t, got, n, "Clamp(%d, %d)", i, n)
			require.Equal(t, ((i%n)+n)%n, got)
		}
	}
}

func TestClamp_DegenerateLength(t *testing.T) {
	assert.Equal(t, 0, Clamp(7, 0))
	assert.Equal(t, 0, Clamp(-3, -1))
	assert.Equal(t, 0, Clamp(5, 1))
}

func TestCycler_PrevNextWrap(t *testing.T) {
	c := New(4, WithInterval(time.Hour))
	defer c.Stop()

	assert.Equal(t, 3, c.Prev())
	c.Next()
	c.Next()
	assert.Equal(t, (3+3)%4, c.Next())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, -200, c.Offset())
}

func TestCycler_GoTo(t *testing.T) {
	c := New(4, WithInterval(time.Hour))
	defer c.Stop()

	idx, err := c.GoTo(2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = c.GoTo(4)
	assert.Error(t, err)
	_, err = c.GoTo(-1)
	assert.Error(t, err)
	assert.Equal(t, 2, c.Index())
}

func TestCycler_SingleSlideIsDisabled(t *testing.T) {
	for _, n := range []int{0, 1} {
		c := New(n, WithInterval(time.Millisecond))
		assert.False(t, c.Enabled())
		assert.False(t, c.Scheduled(), "no auto-advance for n=%d", n)
		assert.Equal(t, 0, c.Next())
		assert.Equal(t, 0, c.Prev())
		c.Stop()
	}
}

func TestCycler_AutoAdvance(t *testing.T) {
	changes := make(chan int, 8)
	c := New(3,
		WithInterval(5*time.Millisecond),
		WithOnChange(func(i int) { changes <- i }),
	)
	defer c.Stop()

	var got []int
	for len(got) < 4 {
		select {
		case i := <-changes:
			got = append(got, i)
		case <-time.After(time.Second):
			t.Fatalf("carousel did not auto-advance, got %v", got)
		}
	}
	assert.Equal(t, []int{1, 2, 0, 1}, got)
}

func TestCycler_HoverAndModalSuspend(t *testing.T) {
	c := New(3, WithInterval(time.Hour))
	defer c.Stop()
	require.True(t, c.Scheduled())

	c.SetHover(true)
	assert.True(t, c.Paused())
	assert.False(t, c.Scheduled())

	c.SetModal(true)
	c.SetHover(false)
	assert.True(t, c.Paused(), "modal alone keeps the carousel paused")
	assert.False(t, c.Scheduled())

	// Manual navigation still works while paused but does not resume the timer.
	assert.Equal(t, 1, c.Next())
	assert.False(t, c.Scheduled())

	c.SetModal(false)
	assert.False(t, c.Paused())
	assert.True(t, c.Scheduled())
}

func TestCycler_PausedDoesNotAdvance(t *testing.T) {
	changes := make(chan int, 1)
	c := New(3,
		WithInterval(5*time.Millisecond),
		WithOnChange(func(i int) { changes <- i }),
	)
	c.SetHover(true)
	defer c.Stop()

	select {
	case i := <-changes:
		t.Fatalf("carousel advanced to %d while hovered", i)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 0, c.Index())
}

func TestCycler_StopTearsDown(t *testing.T) {
	c := New(3, WithInterval(time.Hour), WithStart(-1))
	assert.Equal(t, 2, c.Index())

	c.Stop()
	assert.False(t, c.Scheduled())
	assert.Equal(t, 2, c.Next(), "stopped cycler ignores navigation")
}

func TestCycler_State(t *testing.T) {
	c := New(4, WithInterval(time.Hour), WithStart(2))
	defer c.Stop()

	assert.Equal(t, State{Index: 2, Offset: -200, Enabled: true}, c.State())

	c.SetModal(true)
	assert.True(t, c.State().Paused)

	single := New(1)
	defer single.Stop()
	assert.False(t, single.State().Enabled)
}
