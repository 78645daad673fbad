package app

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxSpriteRender bounds the streaming sprite buffer: carriages, lamps
// and signal glows together stay far below this.
const MaxSpriteRender = 4096

// SunCycleLight computes ambient light level and color tint from sim time.
func SunCycleLight(simTime float64) (ambient, tintR, tintG, tintB float32) {
	phase := math.Mod(simTime, DayCyclePeriod) / DayCyclePeriod
	sunHeight := math.Sin(phase * 2 * math.Pi) // -1 midnight, 1 noon

	mid := float64(SunAmbientMin+SunAmbientMax) * 0.5
	amp := float64(SunAmbientMax-SunAmbientMin) * 0.5
	ambient = float32(mid + amp*sunHeight)

	// Warm tint near the horizon, a touch of blue at night.
	horizonFactor := 1.0 - math.Abs(sunHeight)
	warmth := horizonFactor * horizonFactor * 0.3
	tintR = float32(1.0 + warmth*0.35)
	tintG = float32(1.0 - warmth*0.12)
	tintB = float32(1.0 - warmth*0.45)
	if sunHeight < -0.3 {
		nightFactor := float32((-sunHeight - 0.3) / 0.7)
		tintR -= nightFactor * 0.06
		tintG -= nightFactor * 0.03
		tintB += nightFactor * 0.09
	}
	return
}

// NightIntensityFromAmbient maps ambient light to a 0..1 lamp factor.
func NightIntensityFromAmbient(ambient float32) float32 {
	denom := float64(SunNightStart - SunAmbientMin)
	if denom <= 0 {
		return 0
	}
	v := (float64(SunNightStart) - float64(ambient)) / denom
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return float32(v)
}

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Board program.
	boardProg     uint32
	boardVAO      uint32
	boardVBO      uint32
	uBoardSize    int32
	uCamera       int32
	uZoom         int32
	uResolution   int32
	uTex          int32
	boardUAmbient int32
	boardUSunTint int32

	// Carriage program (rotated rectangle sprites).
	carProg     uint32
	spriteVAO   uint32
	spriteVBO   uint32
	carUCamera  int32
	carUZoom    int32
	carURes     int32
	carUAmbient int32
	carUSunTint int32
	carUAspect  int32

	// Glow program, sharing spriteVAO; additive blend only.
	glowUCamera int32
	glowUZoom   int32
	glowURes    int32
	glowProg    uint32
}

func NewRenderer() (*Renderer, error) {
	boardProg, err := linkProgram(boardVertSrc, boardFragSrc)
	if err != nil {
		return nil, fmt.Errorf("board program: %w", err)
	}
	carProg, err := linkProgram(spriteVertSrc, carFragSrc)
	if err != nil {
		gl.DeleteProgram(boardProg)
		return nil, fmt.Errorf("carriage program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(boardProg)
		gl.DeleteProgram(carProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		boardProg: boardProg,
		carProg:   carProg,
		glowProg:  glowProg,
	}

	// Board VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.boardVAO = bVAO
	r.boardVBO = bVBO

	gl.UseProgram(boardProg)
	r.uBoardSize = gl.GetUniformLocation(boardProg, gl.Str("uBoardSize\x00"))
	r.uCamera = gl.GetUniformLocation(boardProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(boardProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(boardProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(boardProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)
	r.boardUAmbient = gl.GetUniformLocation(boardProg, gl.Str("uAmbient\x00"))
	r.boardUSunTint = gl.GetUniformLocation(boardProg, gl.Str("uSunTint\x00"))
	gl.Uniform1f(r.boardUAmbient, 1.0)
	gl.Uniform3f(r.boardUSunTint, 1.0, 1.0, 1.0)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(carProg)
	r.carUCamera = gl.GetUniformLocation(carProg, gl.Str("uCamera\x00"))
	r.carUZoom = gl.GetUniformLocation(carProg, gl.Str("uZoom\x00"))
	r.carURes = gl.GetUniformLocation(carProg, gl.Str("uResolution\x00"))
	r.carUAmbient = gl.GetUniformLocation(carProg, gl.Str("uAmbient\x00"))
	r.carUSunTint = gl.GetUniformLocation(carProg, gl.Str("uSunTint\x00"))
	r.carUAspect = gl.GetUniformLocation(carProg, gl.Str("uAspect\x00"))
	gl.Uniform1f(r.carUAmbient, 1.0)
	gl.Uniform3f(r.carUSunTint, 1.0, 1.0, 1.0)
	gl.Uniform1f(r.carUAspect, float32(CarVisualAspect))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.boardVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.boardVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.boardProg, r.carProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.boardProg)
	gl.BindVertexArray(r.boardVAO)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
}

// SetSunLight sets the ambient multiplier and color tint on the board
// and carriage programs.
func (r *Renderer) SetSunLight(ambient, tintR, tintG, tintB float32) {
	gl.UseProgram(r.boardProg)
	gl.Uniform1f(r.boardUAmbient, ambient)
	gl.Uniform3f(r.boardUSunTint, tintR, tintG, tintB)

	gl.UseProgram(r.carProg)
	gl.Uniform1f(r.carUAmbient, ambient)
	gl.Uniform3f(r.carUSunTint, tintR, tintG, tintB)

	gl.UseProgram(r.boardProg)
	gl.BindVertexArray(r.boardVAO)
}

// ensureBoardTexture creates the board texture lazily.
func (r *Renderer) ensureBoardTexture(b *Board) {
	if b.Tex != 0 {
		return
	}
	gl.GenTextures(1, &b.Tex)
	gl.BindTexture(gl.TEXTURE_2D, b.Tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.PxW), int32(b.PxH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(b.Pixels),
	)
	b.NeedsUpload = false
}

// UploadBoard re-uploads board pixels after a repaint.
func (r *Renderer) UploadBoard(b *Board) {
	r.ensureBoardTexture(b)
	if !b.NeedsUpload {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, b.Tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(b.PxW), int32(b.PxH),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(b.Pixels),
	)
	b.NeedsUpload = false
}

// DrawBoard renders the map texture quad.
func (r *Renderer) DrawBoard(b *Board, cam Camera, fbW, fbH int) {
	r.UploadBoard(b)

	gl.UseProgram(r.boardProg)
	gl.BindVertexArray(r.boardVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.Tex)
	gl.Uniform2f(r.uBoardSize, float32(b.PxW), float32(b.PxH))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawCarSprites renders carriage bodies.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawCarSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.carProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.carUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.carUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.carURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and
// radial falloff. RGB values should be pre-multiplied by brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
