package app

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	DefaultZoom  = 1.0
	MinZoom      = 0.5
	MaxZoom      = 6.0
)

// Board raster: each world tile is painted as a TilePx x TilePx block
// into one RGBA texture covering the whole map.
const TilePx = 12

// Day/night cycle.
const (
	DayCyclePeriod = 120.0 // seconds of sim time per full cycle
	SunAmbientMin  = 0.40
	SunAmbientMax  = 1.00
	SunNightStart  = 0.62 // ambient below this starts lamp glow
)

// Simulation pacing.
const (
	SpawnInterval   = 3.5 // seconds between spawn attempts while under target
	SpeedStepFactor = 1.5 // multiplier applied per speed-up/down keypress
	MinSimSpeed     = 0.25
	MaxSimSpeed     = 8.0
)

// Crossing bell repeats while the signal is not open.
const BellInterval = 1.1

// Sprite sizing (world pixels).
const (
	CarSpriteSize   = float64(TilePx) * 0.92
	CarVisualAspect = 0.52 // carriage width relative to its length
)
