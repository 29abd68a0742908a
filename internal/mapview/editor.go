package mapview

import "errors"

// Phase identifies the editor's current interaction mode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhasePendingReview
	PhaseEditing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhasePendingReview:
		return "pending_review"
	case PhaseEditing:
		return "editing"
	default:
		return "unknown"
	}
}

var (
	ErrNotIdle       = errors.New("editor is busy with another interaction")
	ErrNotDrawing    = errors.New("no drawing in progress")
	ErrNoPendingRect = errors.New("no rectangle awaiting review")
	ErrNotEditing    = errors.New("no map open for editing")
	ErrInvalidScale  = errors.New("render scale must be positive")
)

// Point is an image-pixel coordinate.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in image-pixel coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Editor models the rectangle-authoring interaction over a design image as a
// tagged state value. Exactly one phase is active at a time, so combinations
// like drawing while a review dialog is open cannot be represented.
type Editor struct {
	phase   Phase
	scale   float64
	start   *Point
	draft   *Rect
	pending Rect
	editing uint
}

// NewEditor returns an idle editor. scale is the current render scale of the
// design image (rendered pixels per image pixel).
func NewEditor(scale float64) (*Editor, error) {
	if scale <= 0 {
		return nil, ErrInvalidScale
	}
	return &Editor{phase: PhaseIdle, scale: scale}, nil
}

func (e *Editor) Phase() Phase { return e.phase }

// SetScale updates the render scale, e.g. after a window resize.
func (e *Editor) SetScale(scale float64) error {
	if scale <= 0 {
		return ErrInvalidScale
	}
	e.scale = scale
	return nil
}

// StartDrawing enters the drawing phase ("New Map").
func (e *Editor) StartDrawing() error {
	if e.phase != PhaseIdle {
		return ErrNotIdle
	}
	e.phase = PhaseDrawing
	return nil
}

// PointerDown records the drag origin. Coordinates are in screen pixels and
// are converted to image pixels using the current render scale.
func (e *Editor) PointerDown(screenX, screenY float64) error {
	if e.phase != PhaseDrawing {
		return ErrNotDrawing
	}
	p := e.toImage(screenX, screenY)
	e.start = &p
	e.draft = nil
	return nil
}

// PointerMove updates the draft rectangle while a drag origin exists. Moves
// before PointerDown are ignored.
func (e *Editor) PointerMove(screenX, screenY float64) error {
	if e.phase != PhaseDrawing {
		return ErrNotDrawing
	}
	if e.start == nil {
		return nil
	}
	r := Normalize(*e.start, e.toImage(screenX, screenY))
	e.draft = &r
	return nil
}

// PointerUp ends the drag. With a draft rectangle the editor moves to
// PendingReview carrying it; without one it falls back to Idle.
func (e *Editor) PointerUp() (*Rect, error) {
	if e.phase != PhaseDrawing {
		return nil, ErrNotDrawing
	}
	draft := e.draft
	e.start = nil
	e.draft = nil
	if draft == nil {
		e.phase = PhaseIdle
		return nil, nil
	}
	e.pending = *draft
	e.phase = PhasePendingReview
	return draft, nil
}

// PendingRect returns the rectangle awaiting crack association.
func (e *Editor) PendingRect() (Rect, error) {
	if e.phase != PhasePendingReview {
		return Rect{}, ErrNoPendingRect
	}
	return e.pending, nil
}

// Confirm resolves the review dialog. A nil createErr means the map was
// persisted and the editor returns to Idle; on failure it stays in
// PendingReview so the user can retry or cancel.
func (e *Editor) Confirm(createErr error) error {
	if e.phase != PhasePendingReview {
		return ErrNoPendingRect
	}
	if createErr != nil {
		return createErr
	}
	e.pending = Rect{}
	e.phase = PhaseIdle
	return nil
}

// BeginEdit opens an existing map for re-association ("Edit Map").
func (e *Editor) BeginEdit(mapID uint) error {
	if e.phase != PhaseIdle {
		return ErrNotIdle
	}
	e.editing = mapID
	e.phase = PhaseEditing
	return nil
}

// EditingMapID returns the map opened via BeginEdit.
func (e *Editor) EditingMapID() (uint, error) {
	if e.phase != PhaseEditing {
		return 0, ErrNotEditing
	}
	return e.editing, nil
}

// FinishEdit closes the editing dialog after a successful update.
func (e *Editor) FinishEdit() error {
	if e.phase != PhaseEditing {
		return ErrNotEditing
	}
	e.editing = 0
	e.phase = PhaseIdle
	return nil
}

// Cancel returns to Idle from any phase, discarding drafts and pending
// rectangles. It backs both the explicit cancel buttons and the Escape key.
func (e *Editor) Cancel() {
	e.phase = PhaseIdle
	e.start = nil
	e.draft = nil
	e.pending = Rect{}
	e.editing = 0
}

func (e *Editor) toImage(screenX, screenY float64) Point {
	return Point{X: screenX / e.scale, Y: screenY / e.scale}
}

// Normalize builds a rectangle from two drag corners so width and height are
// non-negative regardless of drag direction.
func Normalize(a, b Point) Rect {
	r := Rect{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}
