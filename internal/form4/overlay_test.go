package form4

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

func writeFont(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func writeTemplatePages(t *testing.T, dir string, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 1240, 1754))
		for y := 0; y < 1754; y++ {
			for x := 0; x < 1240; x++ {
				img.Set(x, y, color.White)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode template: %v", err)
		}
		path := filepath.Join(dir, fmt.Sprintf("page%d.png", i))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("write template: %v", err)
		}
	}
}

func TestNewOverlayValidation(t *testing.T) {
	t.Parallel()

	log := logger.NewNop()
	dir := t.TempDir()
	fontPath := writeFont(t, dir)

	if _, err := NewOverlay(log, "", fontPath); err == nil {
		t.Fatal("expected error for empty template dir")
	}
	if _, err := NewOverlay(log, dir, filepath.Join(dir, "missing.ttf")); err == nil {
		t.Fatal("expected error for missing font")
	}
	if _, err := NewOverlay(log, dir, fontPath); err != nil {
		t.Fatalf("valid construction failed: %v", err)
	}
}

func TestFillRendersAllPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fontPath := writeFont(t, dir)
	writeTemplatePages(t, dir, PageCount)

	o, err := NewOverlay(logger.NewNop(), dir, fontPath)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}

	pages, err := o.Fill(map[string]string{
		"applicantName": "Dana Levy",
		"monthlyIncome": "8,000",
		"expenseTotal":  "7,700",
		"unmappedField": "ignored",
		"emptyValue":    "   ",
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(pages) != PageCount {
		t.Fatalf("got %d pages, want %d", len(pages), PageCount)
	}
	for i, p := range pages {
		if _, err := png.Decode(bytes.NewReader(p)); err != nil {
			t.Fatalf("page %d is not a valid png: %v", i+1, err)
		}
	}
}

func TestFillMissingTemplatePageAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fontPath := writeFont(t, dir)
	writeTemplatePages(t, dir, PageCount-1)

	o, err := NewOverlay(logger.NewNop(), dir, fontPath)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if _, err := o.Fill(map[string]string{"applicantName": "Dana"}); err == nil {
		t.Fatal("expected error for missing template page")
	}
}

func TestWrapToWidth(t *testing.T) {
	t.Parallel()

	dc := gg.NewContext(10, 10)

	if got := wrapToWidth(dc, "   ", 100); got != nil {
		t.Fatalf("blank value got=%v", got)
	}

	lines := wrapToWidth(dc, "one two three four five six seven eight", 60)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, l := range lines {
		if w, _ := dc.MeasureString(l); w > 60 && len(l) > len("one") {
			t.Fatalf("line %q wider than limit", l)
		}
	}

	single := wrapToWidth(dc, "word", 1)
	if len(single) != 1 || single[0] != "word" {
		t.Fatalf("oversized single word got=%v", single)
	}
}
