package render

// CarouselState tracks the active image per widget carousel. A tap on the
// image advances to the next one, wrapping; a tap on a position dot jumps
// directly to that index without propagating to any enclosing action.
type CarouselState struct {
	positions map[string]int
}

// NewCarouselState returns an empty state; every carousel starts at zero.
func NewCarouselState() *CarouselState {
	return &CarouselState{positions: make(map[string]int)}
}

// Index returns the current position for a widget carousel.
func (c *CarouselState) Index(widgetID string, imageCount int) int {
	if c == nil || imageCount <= 0 {
		return 0
	}
	idx := c.positions[widgetID]
	if idx < 0 || idx >= imageCount {
		return 0
	}
	return idx
}

// Advance moves a carousel to the next image, wrapping past the end.
func (c *CarouselState) Advance(widgetID string, imageCount int) int {
	if c == nil || imageCount <= 0 {
		return 0
	}
	next := (c.Index(widgetID, imageCount) + 1) % imageCount
	c.positions[widgetID] = next
	return next
}

// JumpTo sets a carousel directly to the given index. Out-of-range indexes
// are ignored and the current position is returned.
func (c *CarouselState) JumpTo(widgetID string, index, imageCount int) int {
	if c == nil || imageCount <= 0 {
		return 0
	}
	if index < 0 || index >= imageCount {
		return c.Index(widgetID, imageCount)
	}
	c.positions[widgetID] = index
	return index
}

// Snapshot projects the state into the map shape RenderOptions carries.
func (c *CarouselState) Snapshot() map[string]int {
	if c == nil || len(c.positions) == 0 {
		return nil
	}
	out := make(map[string]int, len(c.positions))
	for id, idx := range c.positions {
		out[id] = idx
	}
	return out
}
