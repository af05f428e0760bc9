package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fumiama/go-docx"
)

const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	emuPerInch     = 914400
	logoWidthInch  = 2.5
	twipsPerPoint  = 20
	halfPointsBody = 21 // 10.5pt
	bodyFont       = "Calibri"
)

// DOCX renders doc as a WordprocessingML package. The footer is the closing
// paragraph of the body.
func DOCX(doc Document, b Branding) ([]byte, error) {
	_, pw, ph, err := logoInfo(b.Logo)
	if err != nil {
		return nil, err
	}

	w := docx.New().WithDefaultTheme()

	logo := w.AddParagraph().Justification("center")
	run, err := logo.AddInlineDrawing(b.Logo)
	if err != nil {
		return nil, fmt.Errorf("docx: logo: %w", err)
	}
	if d, ok := run.Children[0].(*docx.Drawing); ok && d.Inline != nil {
		cx := int64(logoWidthInch * emuPerInch)
		d.Inline.Size(cx, cx*int64(ph)/int64(pw))
	}

	for _, blk := range doc.blocks() {
		addBlock(w, blk, b.Palette)
	}

	foot := w.AddParagraph()
	foot.Properties = &docx.ParagraphProperties{Spacing: &docx.Spacing{Before: 24 * twipsPerPoint}}
	foot.Justification("center")
	styleRun(foot.AddText(doc.footer(b)), runStyle{color: hex(b.Palette.Accent), size: 16})

	w.Document.Body.Items = append(w.Document.Body.Items, &docx.SectPr{
		PgSz:  &docx.PgSz{W: 11906, H: 16838},
		PgMar: &docx.PgMar{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134, Header: 567, Footer: 567},
	})

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx: write: %w", err)
	}
	return buf.Bytes(), nil
}

type runStyle struct {
	bold, italic, underline bool
	color                   string
	size                    int // half-points
}

func styleRun(r *docx.Run, s runStyle) *docx.Run {
	r.Font(bodyFont, bodyFont, bodyFont, "")
	if s.bold {
		r.Bold()
	}
	if s.italic {
		r.Italic()
	}
	if s.underline {
		r.Underline("single")
	}
	if s.color != "" {
		r.Color(s.color)
	}
	if s.size > 0 {
		r.Size(strconv.Itoa(s.size))
	}
	return r
}

func addBlock(w *docx.Docx, blk block, p Palette) {
	para := w.AddParagraph()
	props := &docx.ParagraphProperties{}
	para.Properties = props
	style := runStyle{color: hex(p.Text), size: halfPointsBody}
	text := blk.text

	switch blk.kind {
	case blockTitle:
		props.Spacing = &docx.Spacing{Before: 12 * twipsPerPoint}
		para.Justification("center")
		style = runStyle{bold: true, color: hex(p.Primary), size: 48}
	case blockSubtitle:
		para.Justification("center")
		style = runStyle{color: hex(p.Accent), size: 28}
	case blockMeta:
		para.Justification("center")
		style.italic = true
	case blockHeading:
		props.Spacing = &docx.Spacing{Before: 14 * twipsPerPoint}
		style = runStyle{bold: true, underline: true, color: hex(p.Primary), size: 26}
	case blockStrong:
		props.Spacing = &docx.Spacing{Before: 6 * twipsPerPoint}
		style.bold = true
	case blockItalic:
		style.italic = true
	case blockBullet:
		props.Ind = &docx.Ind{Left: 360, Hanging: 240}
		text = "• " + text
	}
	styleRun(para.AddText(text), style)
}
