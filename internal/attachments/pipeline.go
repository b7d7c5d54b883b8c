package attachments

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// Upload is one file received in the multipart request.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
	Description string
}

// Attachment is a normalized, ready-to-embed set of PNG pages.
type Attachment struct {
	Label       string
	Description string
	Pages       [][]byte
}

const (
	maxImageSide = 1600
	pageWidth    = 1240
	pageHeight   = 1754
)

type Pipeline struct {
	log *logger.Logger
}

func NewPipeline(log *logger.Logger) *Pipeline {
	return &Pipeline{log: log.With("service", "AttachmentPipeline")}
}

// Process normalizes uploads concurrently. Failures are isolated: a broken
// upload is logged and dropped, the rest still come back, in input order.
func (p *Pipeline) Process(ctx context.Context, uploads []Upload) []Attachment {
	results := make([]*Attachment, len(uploads))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, up := range uploads {
		i, up := i, up
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			att, err := p.processOne(up)
			if err != nil {
				p.log.Warn("attachment skipped", "name", up.Name, "error", err)
				return nil
			}
			mu.Lock()
			results[i] = att
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Attachment, 0, len(uploads))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func (p *Pipeline) processOne(up Upload) (*Attachment, error) {
	label := strings.TrimSpace(up.Name)
	if label == "" {
		label = "נספח"
	}

	if isPDF(up) {
		// True PDF rasterization is not implemented; the placeholder page
		// states so explicitly instead of pretending to show content.
		page, err := placeholderPage(label)
		if err != nil {
			return nil, err
		}
		return &Attachment{Label: label, Description: up.Description, Pages: [][]byte{page}}, nil
	}

	page, err := normalizeImage(up.Data)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", up.Name, err)
	}
	return &Attachment{Label: label, Description: up.Description, Pages: [][]byte{page}}, nil
}

func isPDF(up Upload) bool {
	if strings.EqualFold(strings.TrimSpace(up.ContentType), "application/pdf") {
		return true
	}
	return bytes.HasPrefix(up.Data, []byte("%PDF-"))
}

// normalizeImage decodes a png/jpeg upload and re-encodes it as PNG,
// downscaling when either side exceeds maxImageSide.
func normalizeImage(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxImageSide || h > maxImageSide {
		scale := float64(maxImageSide) / float64(w)
		if h > w {
			scale = float64(maxImageSide) / float64(h)
		}
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(&out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return out.Bytes(), nil
}

func placeholderPage(label string) ([]byte, error) {
	dc := gg.NewContext(pageWidth, pageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	dc.SetLineWidth(3)
	dc.DrawRectangle(40, 40, pageWidth-80, pageHeight-80)
	dc.Stroke()

	dc.DrawStringAnchored("PDF attachment – preview not rendered", pageWidth/2, pageHeight/2-30, 0.5, 0.5)
	dc.DrawStringAnchored(label, pageWidth/2, pageHeight/2+30, 0.5, 0.5)

	var out bytes.Buffer
	if err := dc.EncodePNG(&out); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return out.Bytes(), nil
}
