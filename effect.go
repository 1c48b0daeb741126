package grayfx

import "fmt"

// Effect is one of the filters a Processor can apply:
// InvertEffect, BlurEffect, SharpenEffect or EdgesEffect.
type Effect interface {
	fmt.Stringer
	effect()
}

// InvertEffect selects Invert.
type InvertEffect struct{}

// BlurEffect selects Blur with a Size x Size box kernel.
type BlurEffect struct {
	Size int
}

// SharpenEffect selects Sharpen with a Size x Size box kernel.
type SharpenEffect struct {
	Size int
}

// EdgesEffect selects Edges.
type EdgesEffect struct{}

func (InvertEffect) effect()  {}
func (BlurEffect) effect()    {}
func (SharpenEffect) effect() {}
func (EdgesEffect) effect()   {}

func (InvertEffect) String() string    { return "invert" }
func (e BlurEffect) String() string    { return fmt.Sprintf("blur(%d)", e.Size) }
func (e SharpenEffect) String() string { return fmt.Sprintf("sharpen(%d)", e.Size) }
func (EdgesEffect) String() string     { return "edges" }

// Apply runs e on g and returns the new grid.
func (p *Processor) Apply(g *Grid, e Effect) (*Grid, error) {
	switch e := e.(type) {
	case InvertEffect:
		return p.Invert(g), nil
	case BlurEffect:
		return p.Blur(g, e.Size)
	case SharpenEffect:
		return p.Sharpen(g, e.Size)
	case EdgesEffect:
		return p.Edges(g), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEffect, e)
	}
}

// Apply runs e on g using the default processor.
func Apply(g *Grid, e Effect) (*Grid, error) {
	return defaultProcessor.Apply(g, e)
}
