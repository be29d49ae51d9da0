package viewstate

// Zoom bounds, in percent.
const (
	MinZoom = 25
	MaxZoom = 500
)

// DefaultZoom is the zoom level of a freshly constructed controller.
const DefaultZoom = 100

// ViewState describes how the current slide is displayed.
type ViewState struct {
	// Page is the 1-based page number.
	Page int

	// Zoom is the zoom level in percent, always within [MinZoom, MaxZoom].
	Zoom int

	// Rotation is the clockwise rotation in degrees: 0, 90, 180 or 270.
	Rotation int
}

// Change describes a partial update to a ViewState. Changes are applied
// to a draft state by Commit; fields not touched by any change keep
// their current value.
type Change func(*ViewState)

// WithPage sets the page number. Commit clamps it to the deck's range.
func WithPage(page int) Change {
	return func(s *ViewState) { s.Page = page }
}

// WithZoom sets the zoom percentage. Commit clamps it to [MinZoom, MaxZoom].
func WithZoom(zoom int) Change {
	return func(s *ViewState) { s.Zoom = zoom }
}

// WithRotation sets the rotation in degrees. Commit snaps it to a
// multiple of 90 modulo 360.
func WithRotation(deg int) Change {
	return func(s *ViewState) { s.Rotation = deg }
}

// normalize clamps and snaps a draft state so it is valid by
// construction: page within [1, totalPages], zoom within
// [MinZoom, MaxZoom], rotation a multiple of 90 in [0, 360).
func (s *ViewState) normalize(totalPages int) {
	s.Page = clamp(s.Page, 1, totalPages)
	s.Zoom = clamp(s.Zoom, MinZoom, MaxZoom)
	s.Rotation = normalizeRotation(s.Rotation)
}

// normalizeRotation snaps deg to the nearest multiple of 90 and reduces
// it modulo 360. Negative angles wrap: -90 becomes 270.
func normalizeRotation(deg int) int {
	// Round to nearest multiple of 90, away from zero on ties.
	q := deg / 90
	r := deg % 90
	if r >= 45 {
		q++
	} else if r <= -45 {
		q--
	}
	deg = q * 90 % 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
