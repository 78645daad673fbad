package app

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Grass      RGB
	GrassPatch RGB
	Water      RGB
	WaterDeep  RGB
	Road       RGB
	RoadMark   RGB
	HouseA     RGB
	HouseB     RGB
	HouseC     RGB
	HouseRoof  RGB
	Ballast    RGB
	Sleeper    RGB
	RailSteel  RGB
	Platform   RGB
	StationRf  RGB
	BridgeDeck RGB
	CrossPaint RGB
	SignalPost RGB
}{
	Grass:      RGB{R: 134, G: 146, B: 96},
	GrassPatch: RGB{R: 120, G: 134, B: 84},
	Water:      RGB{R: 64, G: 110, B: 146},
	WaterDeep:  RGB{R: 52, G: 94, B: 130},
	Road:       RGB{R: 74, G: 78, B: 88},
	RoadMark:   RGB{R: 190, G: 186, B: 168},
	HouseA:     RGB{R: 168, G: 150, B: 128},
	HouseB:     RGB{R: 146, G: 132, B: 124},
	HouseC:     RGB{R: 186, G: 168, B: 134},
	HouseRoof:  RGB{R: 122, G: 84, B: 70},
	Ballast:    RGB{R: 126, G: 118, B: 106},
	Sleeper:    RGB{R: 92, G: 74, B: 58},
	RailSteel:  RGB{R: 168, G: 168, B: 176},
	Platform:   RGB{R: 198, G: 188, B: 166},
	StationRf:  RGB{R: 96, G: 104, B: 128},
	BridgeDeck: RGB{R: 142, G: 124, B: 98},
	CrossPaint: RGB{R: 212, G: 206, B: 188},
	SignalPost: RGB{R: 58, G: 58, B: 62},
}

// Carriage body colours by consist role.
var (
	LocoColor      = RGB{R: 42, G: 48, B: 58}
	PassengerColor = RGB{R: 178, G: 64, B: 52}
	FreightBoxCol  = RGB{R: 128, G: 96, B: 62}
	FreightTankCol = RGB{R: 110, G: 116, B: 122}
	FreightFlatCol = RGB{R: 96, G: 104, B: 88}
	CabooseColor   = RGB{R: 150, G: 52, B: 44}
)
