package attachments

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessPreservesOrder(t *testing.T) {
	t.Parallel()

	p := NewPipeline(logger.NewNop())
	uploads := []Upload{
		{Name: "תלוש שכר", Data: pngBytes(t, 100, 100)},
		{Name: "חוזה שכירות", ContentType: "application/pdf", Data: []byte("%PDF-1.4 stub")},
		{Name: "אישור בנק", Data: pngBytes(t, 80, 120)},
	}

	got := p.Process(context.Background(), uploads)
	if len(got) != 3 {
		t.Fatalf("got %d attachments, want 3", len(got))
	}
	wantLabels := []string{"תלוש שכר", "חוזה שכירות", "אישור בנק"}
	for i, w := range wantLabels {
		if got[i].Label != w {
			t.Fatalf("attachment %d label got=%q want=%q", i, got[i].Label, w)
		}
	}
}

func TestProcessDropsBrokenUpload(t *testing.T) {
	t.Parallel()

	p := NewPipeline(logger.NewNop())
	uploads := []Upload{
		{Name: "תקין", Data: pngBytes(t, 50, 50)},
		{Name: "שבור", Data: []byte("not an image")},
		{Name: "תקין שני", Data: pngBytes(t, 50, 50)},
	}

	got := p.Process(context.Background(), uploads)
	if len(got) != 2 {
		t.Fatalf("got %d attachments, want 2", len(got))
	}
	if got[0].Label != "תקין" || got[1].Label != "תקין שני" {
		t.Fatalf("unexpected labels: %q, %q", got[0].Label, got[1].Label)
	}
}

func TestPDFGetsPlaceholderPage(t *testing.T) {
	t.Parallel()

	p := NewPipeline(logger.NewNop())

	// Detected by content type.
	got := p.Process(context.Background(), []Upload{
		{Name: "הסכם", ContentType: "application/pdf", Data: []byte("junk")},
	})
	if len(got) != 1 || len(got[0].Pages) != 1 {
		t.Fatalf("got=%v", got)
	}
	if _, err := png.Decode(bytes.NewReader(got[0].Pages[0])); err != nil {
		t.Fatalf("placeholder is not png: %v", err)
	}

	// Detected by magic bytes despite the wrong declared type.
	got = p.Process(context.Background(), []Upload{
		{Name: "הסכם", ContentType: "application/octet-stream", Data: []byte("%PDF-1.7 etc")},
	})
	if len(got) != 1 {
		t.Fatalf("magic-byte pdf dropped: %v", got)
	}
}

func TestNormalizeImageDownscales(t *testing.T) {
	t.Parallel()

	out, err := normalizeImage(pngBytes(t, 3200, 1600))
	if err != nil {
		t.Fatalf("normalizeImage: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != maxImageSide {
		t.Fatalf("width got=%d want=%d", b.Dx(), maxImageSide)
	}
	if b.Dy() != maxImageSide/2 {
		t.Fatalf("height got=%d want=%d", b.Dy(), maxImageSide/2)
	}
}

func TestNormalizeImageKeepsSmallSize(t *testing.T) {
	t.Parallel()

	out, err := normalizeImage(pngBytes(t, 300, 200))
	if err != nil {
		t.Fatalf("normalizeImage: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Fatalf("bounds got=%v", b)
	}
}

func TestEmptyNameGetsDefaultLabel(t *testing.T) {
	t.Parallel()

	p := NewPipeline(logger.NewNop())
	got := p.Process(context.Background(), []Upload{{Name: "  ", Data: pngBytes(t, 20, 20)}})
	if len(got) != 1 || got[0].Label != "נספח" {
		t.Fatalf("got=%v", got)
	}
}
