package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayRect(t *testing.T) {
	const naturalW, naturalH = 1000.0, 800.0

	t.Run("within threshold unchanged", func(t *testing.T) {
		stored := Rect{X: 100, Y: 200, Width: 1400, Height: 300}
		assert.Equal(t, stored, DisplayRect(stored, naturalW, naturalH))
	})

	t.Run("over-scaled width divides all four", func(t *testing.T) {
		// Width is 3.2x the natural width, so every value shrinks by round(3.2)=3
		stored := Rect{X: 300, Y: 150, Width: 3200, Height: 600}
		got := DisplayRect(stored, naturalW, naturalH)
		assert.Equal(t, Rect{X: 100, Y: 50, Width: 3200.0 / 3, Height: 200}, got)
	})

	t.Run("over-scaled y triggers too", func(t *testing.T) {
		stored := Rect{X: 100, Y: 1600, Width: 200, Height: 100}
		got := DisplayRect(stored, naturalW, naturalH)
		assert.Equal(t, Rect{X: 50, Y: 800, Width: 100, Height: 50}, got)
	})

	t.Run("divisor capped at 50", func(t *testing.T) {
		stored := Rect{X: 100000, Y: 100, Width: 200, Height: 100}
		got := DisplayRect(stored, naturalW, naturalH)
		assert.Equal(t, Rect{X: 2000, Y: 2, Width: 4, Height: 2}, got)
	})

	t.Run("exactly at threshold unchanged", func(t *testing.T) {
		stored := Rect{X: 0, Y: 0, Width: 1500, Height: 1200}
		assert.Equal(t, stored, DisplayRect(stored, naturalW, naturalH))
	})

	t.Run("unknown image dimensions pass through", func(t *testing.T) {
		stored := Rect{X: 10000, Y: 10000, Width: 10000, Height: 10000}
		assert.Equal(t, stored, DisplayRect(stored, 0, 0))
	})
}
