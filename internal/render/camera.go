package render

// Camera translates between world coordinates and screen coordinates. One
// tile is one terminal cell.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the
// middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Fit pins the camera to the top-left corner when the whole map fits in the
// view, and otherwise centers on (cx, cy) without scrolling past the edges.
func (c *Camera) Fit(cx, cy, mapW, mapH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, mapW, c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, mapH, c.ViewHeight)
}

func clampOffset(off, mapSize, view int) int {
	if mapSize <= view {
		return 0
	}
	return max(0, min(off, mapSize-view))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
