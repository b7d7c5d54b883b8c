package form4

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// Overlay draws field values onto the pre-rendered blank pages of the
// government financial-disclosure form. Template dir and font are injected at
// construction; there is no hidden module state.
type Overlay struct {
	log         *logger.Logger
	templateDir string
	ttf         *truetype.Font
}

func NewOverlay(log *logger.Logger, templateDir, fontPath string) (*Overlay, error) {
	if strings.TrimSpace(templateDir) == "" {
		return nil, fmt.Errorf("form4 template dir is empty")
	}
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read form4 font: %w", err)
	}
	ttf, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse form4 font: %w", err)
	}
	return &Overlay{
		log:         log.With("service", "Form4Overlay"),
		templateDir: templateDir,
		ttf:         ttf,
	}, nil
}

// Fill renders every page with the supplied values drawn in. A value whose
// field has no coordinate entry is logged and skipped; a missing template
// page aborts the whole fill.
func (o *Overlay) Fill(values map[string]string) ([][]byte, error) {
	perPage := make([][]string, PageCount)
	for field, val := range values {
		if strings.TrimSpace(val) == "" {
			continue
		}
		p, ok := placements[field]
		if !ok {
			o.log.Warn("no coordinate entry for field, skipping", "field", field)
			continue
		}
		perPage[p.Page] = append(perPage[p.Page], field)
	}

	pages := make([][]byte, 0, PageCount)
	for page := 0; page < PageCount; page++ {
		img, err := gg.LoadPNG(filepath.Join(o.templateDir, fmt.Sprintf("page%d.png", page+1)))
		if err != nil {
			return nil, fmt.Errorf("load form4 template page %d: %w", page+1, err)
		}
		dc := gg.NewContextForImage(img)
		dc.SetColor(color.Black)

		// Sorted so output is deterministic across runs.
		fields := perPage[page]
		sort.Strings(fields)
		for _, field := range fields {
			o.drawField(dc, placements[field], values[field])
		}

		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("encode form4 page %d: %w", page+1, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}

func (o *Overlay) drawField(dc *gg.Context, p Placement, value string) {
	face := truetype.NewFace(o.ttf, &truetype.Options{
		Size:    p.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	dc.SetFontFace(face)

	var ax float64
	switch p.Align {
	case AlignRight:
		ax = 1
	case AlignCenter:
		ax = 0.5
	default:
		ax = 0
	}

	lines := []string{value}
	if p.MaxWidth > 0 {
		lines = wrapToWidth(dc, value, p.MaxWidth)
	}
	lineHeight := p.Size * 1.35
	for i, line := range lines {
		// The rasterizer draws glyphs in string order, so Hebrew lines must
		// be handed over in visual order or they come out mirrored.
		if hasRTL(line) {
			line = visualOrder(line)
		}
		dc.DrawStringAnchored(line, p.X, p.Y+float64(i)*lineHeight, ax, 0.5)
	}
}

// wrapToWidth breaks a value on word boundaries so it stays inside the form
// field box. A single word wider than the box is drawn as-is.
func wrapToWidth(dc *gg.Context, value string, maxWidth float64) []string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if width, _ := dc.MeasureString(candidate); width > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
