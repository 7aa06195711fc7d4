package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/seopulse/internal/app/system/timeouts"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(func() {
		timeouts.Configure(timeouts.Config{
			Ping:   timeouts.DefaultPing,
			Read:   timeouts.DefaultRead,
			Render: timeouts.DefaultRender,
		})
	})

	timeouts.Configure(timeouts.Config{Read: 7 * time.Second})

	if got := timeouts.Read(); got != 7*time.Second {
		t.Errorf("Read() = %v, want 7s", got)
	}
	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping() = %v, want default %v", got, timeouts.DefaultPing)
	}
	if got := timeouts.Render(); got != timeouts.DefaultRender {
		t.Errorf("Render() = %v, want default %v", got, timeouts.DefaultRender)
	}
}

func TestWithTimeout_KeepsSoonerParentDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	want, _ := parent.Deadline()

	ctx, cancel2 := timeouts.WithTimeout(parent, time.Hour)
	defer cancel2()

	got, ok := ctx.Deadline()
	if !ok || !got.Equal(want) {
		t.Errorf("deadline = %v, want parent deadline %v", got, want)
	}
}

func TestWithTimeout_SetsDeadline(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Second)
	defer cancel()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if time.Until(dl) > time.Second {
		t.Errorf("deadline too far away: %v", time.Until(dl))
	}
}
