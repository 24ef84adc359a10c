// internal/doc/drawing.go
package doc

// LayoutType says how a drawing participates in text layout.
type LayoutType int

const (
	// LayoutInline drawings occupy a '\b' sentinel in the data stream and are
	// deleted with it.
	LayoutInline LayoutType = iota
	// LayoutFloating drawings are positioned by their transform; deleting the
	// sentinel leaves the drawing registered.
	LayoutFloating
)

// Transform positions a drawing relative to the page.
type Transform struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Angle  float64
}

// Drawing describes one embedded object.
type Drawing struct {
	DrawingID  string
	LayoutType LayoutType
	Transform  Transform
	BehindDoc  bool
	Source     string // Origin of the object content (path, URL, ...)
}

// Clone returns a copy of the drawing descriptor.
func (d *Drawing) Clone() *Drawing {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
