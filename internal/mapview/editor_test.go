package mapview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorDrawFlow(t *testing.T) {
	e, err := NewEditor(2.0)
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, e.Phase())

	require.NoError(t, e.StartDrawing())
	assert.Equal(t, PhaseDrawing, e.Phase())

	// Screen coordinates at render scale 2 map to half-size image pixels
	require.NoError(t, e.PointerDown(200, 100))
	require.NoError(t, e.PointerMove(400, 300))

	rect, err := e.PointerUp()
	require.NoError(t, err)
	require.NotNil(t, rect)
	assert.Equal(t, Rect{X: 100, Y: 50, Width: 100, Height: 100}, *rect)
	assert.Equal(t, PhasePendingReview, e.Phase())

	pending, err := e.PendingRect()
	require.NoError(t, err)
	assert.Equal(t, *rect, pending)

	require.NoError(t, e.Confirm(nil))
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEditorPointerUpWithoutDraft(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)
	require.NoError(t, e.StartDrawing())

	// A click with no drag produces nothing to review
	require.NoError(t, e.PointerDown(10, 10))
	rect, err := e.PointerUp()
	require.NoError(t, err)
	assert.Nil(t, rect)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEditorMoveBeforeDownIgnored(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)
	require.NoError(t, e.StartDrawing())

	require.NoError(t, e.PointerMove(50, 50))
	rect, err := e.PointerUp()
	require.NoError(t, err)
	assert.Nil(t, rect)
}

func TestEditorIllegalTransitions(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)

	assert.ErrorIs(t, e.PointerDown(0, 0), ErrNotDrawing)
	_, err = e.PointerUp()
	assert.ErrorIs(t, err, ErrNotDrawing)
	_, err = e.PendingRect()
	assert.ErrorIs(t, err, ErrNoPendingRect)
	assert.ErrorIs(t, e.FinishEdit(), ErrNotEditing)

	require.NoError(t, e.StartDrawing())
	assert.ErrorIs(t, e.StartDrawing(), ErrNotIdle)
	assert.ErrorIs(t, e.BeginEdit(1), ErrNotIdle)
}

func TestEditorConfirmFailureStaysPending(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)
	require.NoError(t, e.StartDrawing())
	require.NoError(t, e.PointerDown(0, 0))
	require.NoError(t, e.PointerMove(10, 10))
	_, err = e.PointerUp()
	require.NoError(t, err)

	createErr := errors.New("crack already mapped")
	assert.ErrorIs(t, e.Confirm(createErr), createErr)
	assert.Equal(t, PhasePendingReview, e.Phase())

	require.NoError(t, e.Confirm(nil))
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEditorCancelFromAnyPhase(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)

	require.NoError(t, e.StartDrawing())
	e.Cancel()
	assert.Equal(t, PhaseIdle, e.Phase())

	require.NoError(t, e.StartDrawing())
	require.NoError(t, e.PointerDown(0, 0))
	require.NoError(t, e.PointerMove(10, 10))
	_, err = e.PointerUp()
	require.NoError(t, err)
	e.Cancel()
	assert.Equal(t, PhaseIdle, e.Phase())
	_, err = e.PendingRect()
	assert.ErrorIs(t, err, ErrNoPendingRect)

	require.NoError(t, e.BeginEdit(7))
	e.Cancel()
	assert.Equal(t, PhaseIdle, e.Phase())
	_, err = e.EditingMapID()
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestEditorEditFlow(t *testing.T) {
	e, err := NewEditor(1.0)
	require.NoError(t, err)

	require.NoError(t, e.BeginEdit(42))
	assert.Equal(t, PhaseEditing, e.Phase())

	id, err := e.EditingMapID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NoError(t, e.FinishEdit())
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEditorScale(t *testing.T) {
	_, err := NewEditor(0)
	assert.ErrorIs(t, err, ErrInvalidScale)

	e, err := NewEditor(1.0)
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetScale(-1), ErrInvalidScale)
	require.NoError(t, e.SetScale(0.5))

	require.NoError(t, e.StartDrawing())
	require.NoError(t, e.PointerDown(50, 50))
	require.NoError(t, e.PointerMove(100, 100))
	rect, err := e.PointerUp()
	require.NoError(t, err)
	require.NotNil(t, rect)
	// At half render scale, screen pixels map to doubled image pixels
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 100, Height: 100}, *rect)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"down right", Point{10, 20}, Point{40, 60}, Rect{10, 20, 30, 40}},
		{"up left", Point{40, 60}, Point{10, 20}, Rect{10, 20, 30, 40}},
		{"down left", Point{40, 20}, Point{10, 60}, Rect{10, 20, 30, 40}},
		{"up right", Point{10, 60}, Point{40, 20}, Rect{10, 20, 30, 40}},
		{"degenerate", Point{5, 5}, Point{5, 5}, Rect{5, 5, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.a, tt.b))
		})
	}
}
