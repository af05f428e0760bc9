package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	PDFContentType = "application/pdf"

	pdfMargin    = 20.0 // mm
	pdfLogoWidth = 60.0 // mm
	pdfLineH     = 5.5  // mm
)

// PDF renders doc as an A4 PDF with the same layout as DOCX.
func PDF(doc Document, b Branding) ([]byte, error) {
	format, _, _, err := logoInfo(b.Logo)
	if err != nil {
		return nil, err
	}
	imageType := "PNG"
	if format == "jpeg" {
		imageType = "JPG"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+5)
	pdf.SetTitle(doc.title(), true)
	pdf.SetCreator(b.CompanyName, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	setColor := func(c color.RGBA) { pdf.SetTextColor(int(c.R), int(c.G), int(c.B)) }
	footer := doc.footer(b)
	pdf.SetFooterFunc(func() {
		pageW, _ := pdf.GetPageSize()
		pdf.SetY(-15)
		pdf.SetDrawColor(int(b.Palette.Accent.R), int(b.Palette.Accent.G), int(b.Palette.Accent.B))
		pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
		pdf.SetFont("Helvetica", "", 8)
		setColor(b.Palette.Text)
		pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	info := pdf.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(b.Logo))
	if info != nil && info.Width() > 0 {
		h := pdfLogoWidth * info.Height() / info.Width()
		pdf.ImageOptions("logo", (pageW-pdfLogoWidth)/2, pdf.GetY(), pdfLogoWidth, h, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
		pdf.SetY(pdf.GetY() + h + 4)
	}

	for _, blk := range doc.blocks() {
		switch blk.kind {
		case blockTitle:
			pdf.SetFont("Helvetica", "B", 22)
			setColor(b.Palette.Primary)
			pdf.MultiCell(0, 10, tr(blk.text), "", "C", false)
		case blockSubtitle:
			pdf.SetFont("Helvetica", "", 14)
			setColor(b.Palette.Accent)
			pdf.MultiCell(0, 7, tr(blk.text), "", "C", false)
		case blockMeta:
			pdf.SetFont("Helvetica", "I", 10)
			setColor(b.Palette.Text)
			pdf.MultiCell(0, pdfLineH, tr(blk.text), "", "C", false)
			pdf.Ln(2)
		case blockHeading:
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", 13)
			setColor(b.Palette.Primary)
			pdf.CellFormat(0, 7, tr(blk.text), "", 1, "L", false, 0, "")
			pdf.SetDrawColor(int(b.Palette.Accent.R), int(b.Palette.Accent.G), int(b.Palette.Accent.B))
			pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
			pdf.Ln(2)
		case blockStrong:
			pdf.Ln(1)
			pdf.SetFont("Helvetica", "B", 10.5)
			setColor(b.Palette.Text)
			pdf.MultiCell(0, pdfLineH, tr(blk.text), "", "L", false)
		case blockItalic:
			pdf.SetFont("Helvetica", "I", 10)
			setColor(b.Palette.Text)
			pdf.MultiCell(0, pdfLineH, tr(blk.text), "", "L", false)
		case blockBullet:
			pdf.SetFont("Helvetica", "", 10.5)
			setColor(b.Palette.Text)
			pdf.CellFormat(6, pdfLineH, tr("•"), "", 0, "R", false, 0, "")
			pdf.MultiCell(0, pdfLineH, tr(blk.text), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10.5)
			setColor(b.Palette.Text)
			pdf.MultiCell(0, pdfLineH, tr(blk.text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d Document) title() string {
	if d.CV == nil || d.CV.PersonalInfo.Name == "" {
		return "Curriculum Vitae"
	}
	return d.CV.PersonalInfo.Name
}

// PageCount returns the number of pages in a PDF.
func PageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	return n, nil
}
