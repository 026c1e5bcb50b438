// Package render replays layout draw commands into a PDF byte stream
// via gofpdf. It is the only package that knows about a concrete
// rendering backend; everything upstream deals in commands.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/entttom/quartabill/internal/layout"
	"github.com/entttom/quartabill/internal/model"
)

const fontFamily = "Helvetica"

// PDF renders layout documents to PDF bytes.
type PDF struct{}

// NewPDF creates a new PDF renderer
func NewPDF() *PDF {
	return &PDF{}
}

// Render produces the final PDF for a composed document.
func (r *PDF) Render(doc layout.Document) ([]byte, error) {
	if doc.Pages < 1 {
		return nil, model.NewRenderError("setup", "document has no pages", nil)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	images := 0
	for page := 1; page <= doc.Pages; page++ {
		pdf.AddPage()
		for _, cmd := range doc.PageCommands(page) {
			switch cmd.Kind {
			case layout.KindText:
				pdf.SetFont(fontFamily, cmd.Style, cmd.Size)
				pdf.SetXY(cmd.X, cmd.Y)
				pdf.CellFormat(cmd.W, cmd.H, tr(cmd.Text), "", 0, alignStr(cmd.Align), false, 0, "")
			case layout.KindRect:
				if cmd.Fill {
					pdf.SetFillColor(230, 230, 230)
					pdf.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "F")
				} else {
					pdf.SetDrawColor(120, 120, 120)
					pdf.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "D")
				}
			case layout.KindLine:
				pdf.SetDrawColor(120, 120, 120)
				pdf.SetLineWidth(0.2)
				pdf.Line(cmd.X, cmd.Y, cmd.X+cmd.W, cmd.Y)
			case layout.KindImage:
				images++
				r.drawImage(pdf, cmd, images)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, model.NewRenderError("output", "backend rejected document", err)
	}
	return buf.Bytes(), nil
}

// drawImage registers and places one image. Undecodable bytes fall
// back to the same placeholder box the layout uses for a missing
// logo; a broken logo file must not fail the invoice.
func (r *PDF) drawImage(pdf *gofpdf.Fpdf, cmd layout.Command, seq int) {
	imgType := imageType(cmd.Image)
	if imgType == "" {
		r.placeholder(pdf, cmd)
		return
	}

	name := fmt.Sprintf("logo-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(cmd.Image))
	if pdf.Err() {
		pdf.ClearError()
		r.placeholder(pdf, cmd)
		return
	}
	pdf.ImageOptions(name, cmd.X, cmd.Y, cmd.W, cmd.H, false, opts, 0, "")
}

func (r *PDF) placeholder(pdf *gofpdf.Fpdf, cmd layout.Command) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "D")
	pdf.SetFont(fontFamily, "", 8)
	pdf.SetXY(cmd.X, cmd.Y+cmd.H/2-2)
	pdf.CellFormat(cmd.W, 4, "Logo", "", 0, "C", false, 0, "")
}

func alignStr(a layout.Align) string {
	switch a {
	case layout.AlignCenter:
		return "C"
	case layout.AlignRight:
		return "R"
	default:
		return "L"
	}
}

// imageType sniffs PNG or JPEG from magic bytes. Anything else is
// unsupported and triggers the placeholder.
func imageType(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "PNG"
	}
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "JPG"
	}
	return ""
}
