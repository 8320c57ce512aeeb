package ui2d

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font/basicfont"
)

// Font is a fixed-width bitmap font uploaded as a single-column glyph atlas.
type Font struct {
	textureID uint32
	atlas     *atlas
}

// atlas maps runes onto rows of a glyph strip.
type atlas struct {
	img    *image.RGBA
	glyphW int
	glyphH int
	ranges []basicfont.Range
	count  int
}

// newAtlas converts the basicfont 7x13 mask into an RGBA strip whose alpha
// carries glyph coverage.
func newAtlas() *atlas {
	face := basicfont.Face7x13
	b := face.Mask.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := color.AlphaModel.Convert(face.Mask.At(x, y)).(color.Alpha).A
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return &atlas{
		img:    img,
		glyphW: face.Width,
		glyphH: face.Height,
		ranges: face.Ranges,
		count:  b.Dy() / face.Height,
	}
}

// index returns the glyph row for r; unknown runes map to '?'.
func (a *atlas) index(r rune) int {
	for _, rg := range a.ranges {
		if r >= rg.Low && r < rg.High {
			return rg.Offset + int(r-rg.Low)
		}
	}
	if r != '?' {
		return a.index('?')
	}
	return 0
}

// uv returns texture coordinates of the glyph for r.
func (a *atlas) uv(r rune) (u0, v0, u1, v1 float32) {
	i := a.index(r)
	h := float32(a.img.Bounds().Dy())
	return 0, float32(i*a.glyphH) / h, 1, float32((i+1)*a.glyphH) / h
}

func (a *atlas) measure(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*a.glyphW) * scale, float32(lines*a.glyphH) * scale
}

// NewFont builds the glyph atlas and uploads it. An OpenGL context must be current.
func NewFont() (*Font, error) {
	a := newAtlas()
	b := a.img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&a.img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Font{textureID: tex, atlas: a}, nil
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.textureID
}

// GlyphSize returns the pixel size of one glyph cell.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.glyphW, f.atlas.glyphH
}

// GetGlyphUV returns the atlas coordinates for a rune.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.uv(r)
}

// MeasureText returns the rendered size of text at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.measure(text, scale)
}

// Close releases the atlas texture.
func (f *Font) Close() {
	if f.textureID != 0 {
		gl.DeleteTextures(1, &f.textureID)
		f.textureID = 0
	}
}
