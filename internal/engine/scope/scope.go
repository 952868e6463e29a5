// Package scope draws the beam history as glowing points, the way a
// phosphor screen shows a vector display.
package scope

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/vectorscope/internal/engine/shader"
	"github.com/Faultbox/vectorscope/internal/viewer"
	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in float aIntensity;

uniform mat4 uProjection;
uniform float uPointSize;
uniform int uCount;

out float vBrightness;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    gl_PointSize = uPointSize;
    // Older samples fade like decaying phosphor.
    float age = float(uCount - 1 - gl_VertexID) / float(max(uCount, 1));
    vBrightness = step(2.5, aIntensity) * (1.0 - 0.85 * age);
}
`

const fragmentShader = `#version 410 core
in float vBrightness;

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    vec2 d = gl_PointCoord - vec2(0.5);
    float r = dot(d, d) * 4.0;
    if (vBrightness <= 0.0 || r > 1.0) {
        discard;
    }
    FragColor = vec4(uColor * vBrightness, (1.0 - r) * vBrightness);
}
`

// Options configures the renderer.
type Options struct {
	// Span is the voltage at the viewport edge.
	Span      float32
	PointSize float32
	Color     [3]float32
}

// DefaultOptions returns green points on a +/-10 V screen.
func DefaultOptions() Options {
	return Options{
		Span:      10,
		PointSize: 2,
		Color:     [3]float32{0.25, 1, 0.4},
	}
}

// Renderer owns the GPU buffer of beam points.
type Renderer struct {
	opts     Options
	program  *shader.Program
	vao, vbo uint32
	capacity int
	count    int32

	projection vmath.Mat4
}

// New creates a renderer for up to capacity points. A GL context must be
// current.
func New(capacity int, opts Options) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	prog, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scope shader: %w", err)
	}

	r := &Renderer{opts: opts, program: prog, capacity: capacity}
	stride := int32(unsafe.Sizeof(viewer.Point{}))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*int(stride), nil, gl.STREAM_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 8)
	gl.BindVertexArray(0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)

	r.Resize(1, 1)
	return r, nil
}

// Resize keeps the screen square inside a width x height viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	sx, sy := r.opts.Span, r.opts.Span
	if width > height && height > 0 {
		sx *= float32(width) / float32(height)
	} else if height > width && width > 0 {
		sy *= float32(height) / float32(width)
	}
	r.projection = vmath.Ortho(-sx, sx, -sy, sy, -1, 1)
}

// Upload replaces the drawn points. Points beyond the capacity are dropped
// from the front so the newest survive.
func (r *Renderer) Upload(points []viewer.Point) {
	if n := len(points) - r.capacity; n > 0 {
		points = points[n:]
	}
	r.count = int32(len(points))
	if r.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(points)*int(unsafe.Sizeof(points[0])), gl.Ptr(points))
}

// Draw clears the screen and draws the uploaded points.
func (r *Renderer) Draw() {
	gl.ClearColor(0.01, 0.02, 0.01, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.count == 0 {
		return
	}

	r.program.Use()
	gl.UniformMatrix4fv(r.program.MustUniform("uProjection"), 1, false, r.projection.Ptr())
	gl.Uniform1f(r.program.Uniform("uPointSize"), r.opts.PointSize)
	gl.Uniform1i(r.program.Uniform("uCount"), r.count)
	gl.Uniform3f(r.program.Uniform("uColor"), r.opts.Color[0], r.opts.Color[1], r.opts.Color[2])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, r.count)
	gl.BindVertexArray(0)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pix := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	r.program.Delete()
}
