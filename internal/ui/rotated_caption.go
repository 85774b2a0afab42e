package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const captionPad = 8

// RotatedCaption shows short text turned 90° counter-clockwise, for use
// next to a vertical slider. The bitmap is only rebuilt when the text
// changes.
type RotatedCaption struct {
	text   string
	col    color.Color
	img    *canvas.Image
	target fyne.Size
}

// NewRotatedCaption rasterizes text with the current theme font.
func NewRotatedCaption(text string) *RotatedCaption {
	r := &RotatedCaption{col: theme.ForegroundColor()}
	r.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	r.img.FillMode = canvas.ImageFillContain
	r.SetText(text)
	return r
}

// CanvasObject exposes the underlying image for layout containers.
func (r *RotatedCaption) CanvasObject() fyne.CanvasObject { return r.img }

// Text returns the text last rendered.
func (r *RotatedCaption) Text() string { return r.text }

// SetTargetSize fixes the caption box; the bitmap is scaled to fit.
func (r *RotatedCaption) SetTargetSize(w, h float32) {
	r.target = fyne.NewSize(w, h)
	r.img.SetMinSize(r.target)
}

// SetText re-renders the caption. Unchanged text is a no-op.
func (r *RotatedCaption) SetText(text string) {
	if text == r.text && r.img.Image != nil && r.img.Image.Bounds().Dx() > 1 {
		return
	}
	r.text = text

	face := captionFace()
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	out := rotateCCW(rasterize(face, text, r.col))
	r.img.Image = out
	if r.target.IsZero() {
		r.img.SetMinSize(fyne.NewSize(float32(out.Bounds().Dx()), float32(out.Bounds().Dy())))
	}
	r.img.Refresh()
}

// rasterize draws text on a transparent bitmap padded on every side so
// ascenders and descenders are not clipped.
func rasterize(face font.Face, text string, col color.Color) *image.RGBA {
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	w := max(d.MeasureString(text).Ceil()+captionPad, 2)
	h := max((m.Ascent+m.Descent).Ceil()+captionPad, 2)

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = src
	d.Src = image.NewUniform(color.NRGBAModel.Convert(col))
	d.Dot = fixed.P(captionPad/2, m.Ascent.Ceil()+captionPad/2)
	d.DrawString(text)
	return src
}

// rotateCCW turns src a quarter turn counter-clockwise: the first source
// column ends up as the bottom row.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+w-1-y, b.Min.Y+x))
		}
	}
	return dst
}

// captionFace loads the theme font at the current scale, falling back to a
// bitmap face.
func captionFace() font.Face {
	pt := float64(theme.TextSize())
	if pt <= 0 {
		pt = 14
	}
	pt = max(pt*currentScale()*0.75, 6)
	if res := theme.TextFont(); res != nil && len(res.Content()) > 0 {
		if ttf, err := opentype.Parse(res.Content()); err == nil {
			face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: pt, DPI: 96, Hinting: font.HintingFull})
			if err == nil {
				return face
			}
		}
	}
	return basicfont.Face7x13
}
