package render

type OpKind string

const (
	OpClear  = OpKind("clear")
	OpCircle = OpKind("circle")
	OpText   = OpKind("text")
)

// Op is one recorded draw call. Zero fields are left off the wire.
type Op struct {
	Kind   OpKind  `json:"k"`
	Visual string  `json:"v,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	R      float64 `json:"r,omitempty"`
	Text   string  `json:"s,omitempty"`
}

// Frame is a replayable list of draw calls for a remote canvas.
type Frame struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Ops    []Op    `json:"ops"`
}

// Recorder is a Surface that keeps the calls instead of painting them.
type Recorder struct {
	ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear drops everything recorded so far and starts the frame over.
func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) DrawCircleImage(visual string, x, y, radius float64) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Visual: visual, X: x, Y: y, R: radius})
}

func (r *Recorder) DrawText(label string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: label, X: x, Y: y})
}

// Frame returns a copy of the recorded calls.
func (r *Recorder) Frame(width, height float64) Frame {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return Frame{Width: width, Height: height, Ops: ops}
}
