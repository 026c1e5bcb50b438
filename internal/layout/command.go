package layout

// Kind discriminates the draw-command variants.
type Kind int

const (
	KindText Kind = iota
	KindRect
	KindLine
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Align controls horizontal text placement inside a command's box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Command is one drawing instruction with absolute page coordinates
// in millimetres. The engine emits commands instead of calling a
// rendering backend directly, so composition stays testable without
// producing a PDF.
type Command struct {
	Kind Kind
	Page int
	X    float64
	Y    float64
	W    float64
	H    float64

	// Text fields
	Text  string
	Size  float64
	Style string // "", "B", "I"
	Align Align

	// Rect fill
	Fill bool

	// Image payload, raw PNG or JPEG bytes
	Image []byte
}

// Document is the fully composed output of one invoice layout run.
type Document struct {
	Commands []Command
	Pages    int
}

// PageCommands returns the commands targeting one page, in emit order.
func (d Document) PageCommands(page int) []Command {
	var out []Command
	for _, c := range d.Commands {
		if c.Page == page {
			out = append(out, c)
		}
	}
	return out
}
