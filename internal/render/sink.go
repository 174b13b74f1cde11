// Package render turns a Scene into an ordered sequence of drawing commands.
//
// Rendering never touches a real backend. The Renderer talks to a Sink; the
// Recorder sink captures commands so they can be compared in tests, dumped,
// or replayed into the plotting backends.
package render

// Sink receives drawing commands in emission order. Later commands paint
// over earlier ones.
type Sink interface {
	Circle(c Circle)
	Segment(s Segment)
	FilledPath(p FilledPath)
	HideAxes()
	EqualAspect()
}

type Recorder struct {
	Commands []Command
}

func (r *Recorder) Circle(c Circle) {
	r.Commands = append(r.Commands, Command{Kind: KindCircle, Circle: c})
}

func (r *Recorder) Segment(s Segment) {
	r.Commands = append(r.Commands, Command{Kind: KindSegment, Segment: s})
}

func (r *Recorder) FilledPath(p FilledPath) {
	r.Commands = append(r.Commands, Command{Kind: KindFilledPath, Path: p})
}

func (r *Recorder) HideAxes() {
	r.Commands = append(r.Commands, Command{Kind: KindHideAxes})
}

func (r *Recorder) EqualAspect() {
	r.Commands = append(r.Commands, Command{Kind: KindEqualAspect})
}

// Count of recorded commands of one kind.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Replay feeds recorded commands into another sink.
func Replay(commands []Command, sink Sink) {
	for _, c := range commands {
		switch c.Kind {
		case KindCircle:
			sink.Circle(c.Circle)
		case KindSegment:
			sink.Segment(c.Segment)
		case KindFilledPath:
			sink.FilledPath(c.Path)
		case KindHideAxes:
			sink.HideAxes()
		case KindEqualAspect:
			sink.EqualAspect()
		}
	}
}
