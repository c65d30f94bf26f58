package slidecheck

// Rect is the part of a bounding client rect the overflow check needs, in css pixels
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Child is a descendant element of a slide
type Child struct {
	Tag   string `json:"tag"`
	Class string `json:"class"`
	Rect
}

// Delta of the child edges minus the slide edges, positive means overflowing
type Delta struct {
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Overflow describes a descendant that crosses the bottom or right edge of its slide
type Overflow struct {
	Tag         string  `json:"tag"`
	Class       string  `json:"class"`
	Bottom      float64 `json:"bottom"`
	Right       float64 `json:"right"`
	SlideBottom float64 `json:"slideBottom"`
	SlideRight  float64 `json:"slideRight"`
	Delta       Delta   `json:"overflow"`
}

// Vertical reports whether the bottom delta is beyond the tolerance
func (o Overflow) Vertical(tolerance float64) bool {
	return o.Delta.Bottom > tolerance
}

// Horizontal reports whether the right delta is beyond the tolerance
func (o Overflow) Horizontal(tolerance float64) bool {
	return o.Delta.Right > tolerance
}

// Slide is the geometry record of one slide
type Slide struct {
	Index       int        `json:"slideNumber"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	HasOverflow bool       `json:"hasOverflow"`
	Overflows   []Overflow `json:"overflowElements"`
}

// Detect compares each child against the slide rect. A child overflows when its
// bottom edge is more than tolerance below the slide's bottom edge, or its right
// edge is more than tolerance right of the slide's right edge.
// The order of children is kept in the result.
func Detect(index int, slide Rect, children []Child, tolerance float64) *Slide {
	s := &Slide{
		Index:     index,
		Width:     slide.Width,
		Height:    slide.Height,
		Overflows: []Overflow{},
	}

	for _, c := range children {
		if c.Bottom > slide.Bottom+tolerance || c.Right > slide.Right+tolerance {
			s.Overflows = append(s.Overflows, Overflow{
				Tag:         c.Tag,
				Class:       c.Class,
				Bottom:      c.Bottom,
				Right:       c.Right,
				SlideBottom: slide.Bottom,
				SlideRight:  slide.Right,
				Delta: Delta{
					Bottom: c.Bottom - slide.Bottom,
					Right:  c.Right - slide.Right,
				},
			})
		}
	}

	s.HasOverflow = len(s.Overflows) > 0

	return s
}
