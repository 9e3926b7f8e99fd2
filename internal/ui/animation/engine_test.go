package animation

import (
	"context"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bright = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	dim    = color.NRGBA{R: 239, G: 68, B: 68, A: 80}
)

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	value := Range{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}

	for i := 0; i < 50; i++ {
		sample := value.Random(rng)
		assert.GreaterOrEqual(t, sample, value.Min)
		assert.Less(t, sample, value.Max)
	}
	assert.Equal(t, time.Second, Range{Min: time.Second, Max: time.Second}.Random(rng))
}

func TestPulseAlternatesUntilStopped(t *testing.T) {
	updates := make(chan color.Color, 64)
	config := Config{
		BrightDuration: Range{Min: time.Millisecond, Max: time.Millisecond},
		DimDuration:    Range{Min: time.Millisecond, Max: time.Millisecond},
	}
	engine := New(config, func(value color.Color) {
		select {
		case updates <- value:
		default:
		}
	})

	engine.StartPulse(context.Background(), PulseSpec{Bright: bright, Dim: dim})
	require.True(t, engine.Running())

	assert.Equal(t, color.Color(bright), receive(t, updates))
	assert.Equal(t, color.Color(dim), receive(t, updates))

	engine.Stop()
	assert.False(t, engine.Running())
}

func TestPulseStopsWithContext(t *testing.T) {
	updates := make(chan color.Color, 1)
	engine := New(DefaultConfig(), func(value color.Color) {
		select {
		case updates <- value:
		default:
		}
	})
	ctx, cancel := context.WithCancel(context.Background())

	engine.StartPulse(ctx, PulseSpec{Bright: bright, Dim: dim})
	receive(t, updates)
	cancel()

	select {
	case value := <-updates:
		t.Fatalf("unexpected update after cancel: %v", value)
	case <-time.After(900 * time.Millisecond):
	}
}

func receive(t *testing.T, updates <-chan color.Color) color.Color {
	t.Helper()
	select {
	case value := <-updates:
		return value
	case <-time.After(time.Second):
		t.Fatal("no pulse update")
		return nil
	}
}
