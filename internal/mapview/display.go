package mapview

import "math"

// legacyScaleThreshold marks a stored value as implausible for the image it is
// drawn over. Values at or below 1.5x the natural dimension pass through.
const legacyScaleThreshold = 1.5

// legacyScaleCap bounds the correction divisor.
const legacyScaleCap = 50

// DisplayRect adapts a stored rectangle for rendering over an image with the
// given natural dimensions. Rectangles saved under an older coordinate scale
// can carry values far beyond the image bounds; when any of the four values
// exceeds its dimension by more than 1.5x, all four are divided by
// min(50, round(max over-scale ratio)). The stored record is never changed,
// this is a render-time compatibility shim only.
//
// TODO: remove once the historical design maps are migrated to image-pixel
// coordinates.
func DisplayRect(stored Rect, naturalWidth, naturalHeight float64) Rect {
	if naturalWidth <= 0 || naturalHeight <= 0 {
		return stored
	}
	maxRatio := math.Max(
		math.Max(stored.X/naturalWidth, stored.Width/naturalWidth),
		math.Max(stored.Y/naturalHeight, stored.Height/naturalHeight),
	)
	if maxRatio <= legacyScaleThreshold {
		return stored
	}
	factor := math.Min(legacyScaleCap, math.Round(maxRatio))
	return Rect{
		X:      stored.X / factor,
		Y:      stored.Y / factor,
		Width:  stored.Width / factor,
		Height: stored.Height / factor,
	}
}
