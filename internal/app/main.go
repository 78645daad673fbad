package app

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"railsim/internal/rail"
)

// crossingSignal tracks one level crossing's last signal state and its
// bell repeat timer.
type crossingSignal struct {
	pt        rail.Point
	state     rail.CrossingState
	bellTimer float64
}

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("RAILSIM_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	targetTrains := rail.MaxTrains
	if s := os.Getenv("RAILSIM_TRAINS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			targetTrains = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Grass.R)/255.0,
		float32(Palette.Grass.G)/255.0,
		float32(Palette.Grass.B)/255.0,
		1.0,
	)

	world := GenerateTown(seed)
	board := NewBoard(world)
	signals := buildSignals(world)
	stations := stationOrigins(world)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	rs := rail.NewRailSystem(seed ^ 0xCAFE)
	if os.Getenv("RAILSIM_LOWSPEC") == "1" {
		rs.LowSpec = true
	}

	cam := Camera{Zoom: DefaultZoom}
	cam.FitWorld(board.PxW, board.PxH, WindowWidth, WindowHeight)
	input := NewInput()

	var (
		paused     bool
		simSpeed   = 1.0
		simTime    float64
		spawnTimer float64
		titleTimer float64
	)
	// Dwell state per train id, to fire the departure whistle on the
	// station-to-moving transition.
	dwelling := make(map[int]bool)

	var poseBuf []rail.CarriagePose
	var carBuf, glowBuf []float32

	regenSeed := seed
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Controls.
		if input.JustPressed(window, glfw.KeySpace) {
			paused = !paused
		}
		step := paused && input.JustPressed(window, glfw.KeyN)
		if input.JustPressed(window, glfw.KeyEqual) || input.JustPressed(window, glfw.KeyKPAdd) {
			simSpeed *= SpeedStepFactor
			if simSpeed > MaxSimSpeed {
				simSpeed = MaxSimSpeed
			}
		}
		if input.JustPressed(window, glfw.KeyMinus) || input.JustPressed(window, glfw.KeyKPSubtract) {
			simSpeed /= SpeedStepFactor
			if simSpeed < MinSimSpeed {
				simSpeed = MinSimSpeed
			}
		}
		if input.JustPressed(window, glfw.KeyL) {
			rs.LowSpec = !rs.LowSpec
		}
		if input.JustPressed(window, glfw.KeyF) {
			cam.FitWorld(board.PxW, board.PxH, fbW, fbH)
		}
		if input.JustPressed(window, glfw.KeyG) {
			regenSeed = regenSeed*6364136223846793005 + 1442695040888963407
			world = GenerateTown(regenSeed)
			board.Rasterize(world)
			signals = buildSignals(world)
			stations = stationOrigins(world)
			rs = rail.NewRailSystem(regenSeed ^ 0xCAFE)
			dwelling = make(map[int]bool)
			spawnTimer = 0
		}
		UpdateCamera(&cam, window, dt, board.PxW, board.PxH, fbW, fbH)

		// Simulation.
		simDt := dt
		if paused {
			simDt = 0
			if step {
				simDt = 1.0 / 30
			}
		}
		if simDt > 0 {
			simTime += simDt * simSpeed

			spawnTimer -= simDt
			if spawnTimer <= 0 {
				spawnTimer = SpawnInterval
				if rs.AliveCount() < targetTrains {
					if t := rs.TrySpawn(world); t != nil {
						PlaySoundWithGain(SoundHorn, spriteGain(cam, float64(t.X), float64(t.Y)))
					}
				}
			}

			rs.Update(simDt, world, simSpeed)
			rs.RemoveDead()

			for _, t := range rs.Trains {
				was := dwelling[t.ID]
				if was && !t.AtStation {
					PlaySoundWithGain(SoundDeparture, spriteGain(cam, float64(t.X), float64(t.Y)))
				}
				dwelling[t.ID] = t.AtStation
			}

			updateSignals(rs, world, signals, simDt, cam)
		}

		// Render.
		sunAmb, sunTR, sunTG, sunTB := SunCycleLight(simTime)
		gl.ClearColor(
			float32(Palette.Grass.R)/255.0*sunAmb*sunTR,
			float32(Palette.Grass.G)/255.0*sunAmb*sunTG,
			float32(Palette.Grass.B)/255.0*sunAmb*sunTB,
			1.0,
		)

		rend.BeginFrame(cam, fbW, fbH)
		rend.SetSunLight(sunAmb, sunTR, sunTG, sunTB)
		rend.DrawBoard(board, cam, fbW, fbH)

		poseBuf = rs.Poses(world, poseBuf)
		carBuf = carSprites(poseBuf, carBuf)
		rend.DrawCarSprites(carBuf, cam, fbW, fbH)

		night := NightIntensityFromAmbient(sunAmb)
		glowBuf = signalGlowSprites(signals, now, glowBuf)
		glowBuf = lampGlowSprites(stations, poseBuf, night, glowBuf)
		rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)

		titleTimer -= dt
		if titleTimer <= 0 {
			titleTimer = 0.25
			state := ""
			if paused {
				state = " | paused"
			}
			window.SetTitle(fmt.Sprintf("railsim | %d trains | %.2gx%s",
				rs.AliveCount(), simSpeed, state))
		}

		window.SwapBuffers()
	}
}

// spriteGain attenuates a sound by its distance from the camera centre.
func spriteGain(cam Camera, tileX, tileY float64) float64 {
	dx := tileX*TilePx - cam.X
	dy := tileY*TilePx - cam.Y
	d := math.Hypot(dx, dy) / TilePx
	g := 1.0 - d/40.0
	if g < 0.1 {
		g = 0.1
	}
	return g
}

func buildSignals(w *rail.TileWorld) []crossingSignal {
	pts := Crossings(w)
	out := make([]crossingSignal, len(pts))
	for i, p := range pts {
		out[i] = crossingSignal{pt: p, state: rail.CrossingOpen}
	}
	return out
}

func stationOrigins(w *rail.TileWorld) []rail.Point {
	ww, wh := w.Size()
	var pts []rail.Point
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			if w.At(x, y).Kind == rail.BuildingStation {
				pts = append(pts, rail.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// updateSignals advances each crossing's signal and rings the bell
// while it is not open.
func updateSignals(rs *rail.RailSystem, w *rail.TileWorld, signals []crossingSignal, dt float64, cam Camera) {
	for i := range signals {
		sg := &signals[i]
		info := rs.CrossingAt(w, sg.pt.X, sg.pt.Y)
		if info.State != rail.CrossingOpen {
			sg.bellTimer -= dt
			if sg.state == rail.CrossingOpen || sg.bellTimer <= 0 {
				PlaySoundWithGain(SoundCrossingBell,
					spriteGain(cam, float64(sg.pt.X)+0.5, float64(sg.pt.Y)+0.5))
				sg.bellTimer = BellInterval
			}
		} else {
			sg.bellTimer = 0
		}
		sg.state = info.State
	}
}

func carriageColor(k rail.CarriageKind) RGB {
	switch k {
	case rail.CarLocomotive:
		return LocoColor
	case rail.CarPassenger:
		return PassengerColor
	case rail.CarFreightBox:
		return FreightBoxCol
	case rail.CarFreightTank:
		return FreightTankCol
	case rail.CarFreightFlat:
		return FreightFlatCol
	case rail.CarCaboose:
		return CabooseColor
	}
	return LocoColor
}

// carSprites converts carriage poses to rotated-rectangle sprites.
func carSprites(poses []rail.CarriagePose, buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range poses {
		col := carriageColor(p.Kind)
		rot := math.Atan2(p.DirY, p.DirX)
		buf = append(buf,
			float32(p.X*TilePx), float32(p.Y*TilePx), float32(CarSpriteSize),
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1.0,
			float32(rot),
		)
	}
	return buf
}

// signalGlowSprites emits the flashing red crossing lamps. Warning
// alternates the two lamps; closed flashes both, faster.
func signalGlowSprites(signals []crossingSignal, now float64, buf []float32) []float32 {
	buf = buf[:0]
	for i := range signals {
		sg := &signals[i]
		if sg.state == rail.CrossingOpen {
			continue
		}
		x0 := float32(sg.pt.X * TilePx)
		y0 := float32(sg.pt.Y * TilePx)
		var lampA, lampB float32
		if sg.state == rail.CrossingWarning {
			phase := math.Mod(now*1.6, 1.0)
			if phase < 0.5 {
				lampA = 1
			} else {
				lampB = 1
			}
		} else {
			phase := math.Mod(now*3.2, 1.0)
			if phase < 0.5 {
				lampA, lampB = 1, 1
			}
		}
		size := float32(TilePx) * 0.8
		if lampA > 0 {
			buf = append(buf, x0+1.5, y0+2.5, size, 0.95*lampA, 0.12*lampA, 0.05*lampA, 1, 0)
		}
		if lampB > 0 {
			buf = append(buf, x0+float32(TilePx)-1.5, y0+float32(TilePx)-3.5, size, 0.95*lampB, 0.12*lampB, 0.05*lampB, 1, 0)
		}
	}
	return buf
}

// lampGlowSprites adds night lighting: station platform lamps and
// locomotive headlights.
func lampGlowSprites(stations []rail.Point, poses []rail.CarriagePose, night float32, buf []float32) []float32 {
	if night <= 0.01 {
		return buf
	}
	for _, st := range stations {
		// Footprint centre of the 2x2 station.
		fx := float32(st.X+1) * TilePx
		fy := float32(st.Y+1) * TilePx
		buf = append(buf, fx, fy, float32(TilePx)*2.2, 0.5*night, 0.42*night, 0.16*night, 1, 0)
		buf = append(buf, fx, fy, float32(TilePx)*0.5, 1.0*night, 1.0*night, 0.7*night, 1, 0)
	}
	for _, p := range poses {
		if p.Kind != rail.CarLocomotive {
			continue
		}
		hx := float32((p.X + p.DirX*0.6) * TilePx)
		hy := float32((p.Y + p.DirY*0.6) * TilePx)
		buf = append(buf, hx, hy, float32(TilePx)*1.4, 0.8*night, 0.78*night, 0.6*night, 1, 0)
	}
	return buf
}
