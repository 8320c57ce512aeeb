// Package ui2d provides a simple immediate-mode 2D UI layer on OpenGL.
package ui2d

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/dicebox/internal/engine/shader"
)

// circleSegments is the triangle count used for circles and rounded corners.
const circleSegments = 24

// Renderer batches solid and textured quads and flushes them once per frame.
type Renderer struct {
	screenWidth  int
	screenHeight int

	// Shader program for solid color triangles
	solidShader *shader.Program

	// Shader program for textured quads (text)
	textShader *shader.Program

	solidVAO uint32
	solidVBO uint32

	textVAO uint32
	textVBO uint32

	// Current draw lists
	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D UI renderer. An OpenGL context must be current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 8192),
		textVertices:  make([]float32, 0, 4096),
	}

	var err error
	r.solidShader, err = shader.Compile(solidVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}

	r.textShader, err = shader.Compile(textVertexSrc, textFragmentSrc)
	if err != nil {
		r.solidShader.Delete()
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	r.createSolidBuffers()
	r.createTextBuffers()

	r.font, err = NewFont()
	if err != nil {
		return nil, fmt.Errorf("create font: %w", err)
	}

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End finishes the UI frame and renders all queued elements.
func (r *Renderer) End() {
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", &proj)

		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	// Text goes on top of everything solid.
	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", &proj)
		r.textShader.SetInt("uTexture", 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())

		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, unsafe.Pointer(&r.textVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	r.solidShader.Delete()
	r.textShader.Delete()
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.solidVertices = appendQuad(r.solidVertices, x, y, width, height, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	r.DrawRect(x, y, width, thickness, color)
	r.DrawRect(x, y+height-thickness, width, thickness, color)
	r.DrawRect(x, y+thickness, thickness, height-thickness*2, color)
	r.DrawRect(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	r.DrawRect(x, y, width, height, bg)
	r.DrawRectOutline(x, y, width, height, 1, border)
}

// DrawCircle draws a filled circle.
func (r *Renderer) DrawCircle(cx, cy, radius float32, color Color) {
	r.solidVertices = appendCircle(r.solidVertices, cx, cy, radius, color)
}

// DrawRoundedRect draws a filled rectangle with circular corners.
func (r *Renderer) DrawRoundedRect(x, y, width, height, radius float32, color Color) {
	radius = min(radius, width/2, height/2)
	if radius <= 0 {
		r.DrawRect(x, y, width, height, color)
		return
	}
	r.DrawRect(x+radius, y, width-2*radius, height, color)
	r.DrawRect(x, y+radius, radius, height-2*radius, color)
	r.DrawRect(x+width-radius, y+radius, radius, height-2*radius, color)

	r.DrawCircle(x+radius, y+radius, radius, color)
	r.DrawCircle(x+width-radius, y+radius, radius, color)
	r.DrawCircle(x+radius, y+height-radius, radius, color)
	r.DrawCircle(x+width-radius, y+height-radius, radius, color)
}

// DrawLine draws a straight line of the given thickness.
func (r *Renderer) DrawLine(x0, y0, x1, y1, thickness float32, c Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Perpendicular offset of half the thickness.
	nx, ny := -dy/length*thickness/2, dx/length*thickness/2
	r.solidVertices = append(r.solidVertices,
		x0+nx, y0+ny, 0, c.R, c.G, c.B, c.A,
		x1+nx, y1+ny, 0, c.R, c.G, c.B, c.A,
		x1-nx, y1-ny, 0, c.R, c.G, c.B, c.A,
		x0+nx, y0+ny, 0, c.R, c.G, c.B, c.A,
		x1-nx, y1-ny, 0, c.R, c.G, c.B, c.A,
		x0-nx, y0-ny, 0, c.R, c.G, c.B, c.A,
	)
}

// Vertex layouts, in floats.
const (
	solidStride = 7 // x, y, z, r, g, b, a
	textStride  = 9 // x, y, z, u, v, r, g, b, a
)

// appendQuad adds two triangles covering the rectangle.
func appendQuad(v []float32, x, y, w, h float32, c Color) []float32 {
	return append(v,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

// appendCircle adds a triangle fan approximating a circle.
func appendCircle(v []float32, cx, cy, radius float32, c Color) []float32 {
	step := 2 * math.Pi / circleSegments
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) * step
		a1 := float64(i+1) * step
		v = append(v,
			cx, cy, 0, c.R, c.G, c.B, c.A,
			cx+radius*float32(math.Cos(a0)), cy+radius*float32(math.Sin(a0)), 0, c.R, c.G, c.B, c.A,
			cx+radius*float32(math.Cos(a1)), cy+radius*float32(math.Sin(a1)), 0, c.R, c.G, c.B, c.A,
		)
	}
	return v
}

// addTexturedQuad adds a textured quad to the text vertex buffer.
func (r *Renderer) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// DrawText draws text at the given position.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}

	gw, gh := r.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += charH
			continue
		}

		u0, v0, u1, v1 := r.font.GetGlyphUV(char)
		r.addTexturedQuad(curX, y, charW, charH, u0, v0, u1, v1, color)
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

const solidVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentSrc = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

// The font atlas stores glyph coverage in alpha.
const textFragmentSrc = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float alpha = texture(uTexture, vTexCoord).a;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

func (r *Renderer) createSolidBuffers() {
	gl.GenVertexArrays(1, &r.solidVAO)
	gl.BindVertexArray(r.solidVAO)

	gl.GenBuffers(1, &r.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)

	stride := int32(solidStride * 4)

	// location 0: position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// location 1: color
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) createTextBuffers() {
	gl.GenVertexArrays(1, &r.textVAO)
	gl.BindVertexArray(r.textVAO)

	gl.GenBuffers(1, &r.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	stride := int32(textStride * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
