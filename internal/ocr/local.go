package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"recruit-kit/internal/cv"
)

// US Letter, used when a page has no readable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// LocalAnalyzer reads documents in-process. PDFs keep their layout; Word
// and plain text files produce content only.
type LocalAnalyzer struct{}

func NewLocalAnalyzer() *LocalAnalyzer {
	return &LocalAnalyzer{}
}

func (a *LocalAnalyzer) Analyze(ctx context.Context, data []byte, fileName string) (*cv.ExtractedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		doc *cv.ExtractedDocument
		err error
	)
	switch ext := extension(fileName); ext {
	case ".pdf":
		doc, err = analyzePDF(data)
	case ".docx", ".doc", ".odt":
		doc, err = analyzeOffice(data, ext)
	case ".txt":
		doc = &cv.ExtractedDocument{Content: string(data)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.Content) == "" {
		return nil, ErrEmptyDocument
	}
	log.Printf("[OCR] Local analysis of %s: %d pages, %d characters", fileName, len(doc.Pages), len(doc.Content))
	return doc, nil
}

func analyzeOffice(data []byte, ext string) (*cv.ExtractedDocument, error) {
	var (
		text string
		err  error
	)
	r := bytes.NewReader(data)
	switch ext {
	case ".docx":
		text, _, err = docconv.ConvertDocx(r)
	case ".doc":
		text, _, err = docconv.ConvertDoc(r)
	case ".odt":
		text, _, err = docconv.ConvertODT(r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &cv.ExtractedDocument{Content: text}, nil
}

func analyzePDF(data []byte) (doc *cv.ExtractedDocument, err error) {
	// The PDF reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	doc = &cv.ExtractedDocument{}
	var content []string
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		width, height := mediaBox(p)
		var glyphs []glyph
		for _, t := range p.Content().Text {
			glyphs = append(glyphs, glyph{X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize, S: t.S})
		}

		spans := groupGlyphs(glyphs)
		doc.Pages = append(doc.Pages, cv.Page{Spans: spans, Width: width, Height: height})
		for _, s := range spans {
			content = append(content, s.Content)
		}
	}
	doc.Content = strings.Join(content, "\n")
	return doc, nil
}

func mediaBox(p pdf.Page) (float64, float64) {
	box := p.V.Key("MediaBox")
	if box.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}
	w := box.Index(2).Float64() - box.Index(0).Float64()
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return w, h
}

// glyph is one positioned text run from a PDF content stream.
type glyph struct {
	X, Y, W  float64
	FontSize float64
	S        string
}

// groupGlyphs joins glyphs sharing a baseline into line spans, top of the
// page first. A gap wider than a quarter of the font size becomes a space.
func groupGlyphs(glyphs []glyph) []cv.Span {
	if len(glyphs) == 0 {
		return nil
	}
	sorted := append([]glyph(nil), glyphs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > baselineTolerance(sorted[i], sorted[j]) {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var (
		spans []cv.Span
		line  []glyph
	)
	flush := func() {
		if s, ok := lineSpan(line); ok {
			spans = append(spans, s)
		}
		line = nil
	}
	for _, g := range sorted {
		if len(line) > 0 && math.Abs(g.Y-line[0].Y) > baselineTolerance(g, line[0]) {
			flush()
		}
		line = append(line, g)
	}
	flush()
	return spans
}

func baselineTolerance(a, b glyph) float64 {
	return math.Max(1, math.Min(a.FontSize, b.FontSize)*0.3)
}

func lineSpan(line []glyph) (cv.Span, bool) {
	if len(line) == 0 {
		return cv.Span{}, false
	}
	var (
		sb       strings.Builder
		fontSize float64
		end      = line[0].X
	)
	for i, g := range line {
		if i > 0 && g.X-end > g.FontSize*0.25 && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.S)
		end = g.X + g.W
		fontSize = math.Max(fontSize, g.FontSize)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return cv.Span{}, false
	}

	first, last := line[0], line[len(line)-1]
	return cv.Span{
		Content: text,
		BoundingBox: cv.BoundingBox{
			X:      first.X,
			Y:      first.Y,
			Width:  last.X + last.W - first.X,
			Height: fontSize,
		},
		Appearance: cv.Appearance{FontSize: fontSize},
	}, true
}
