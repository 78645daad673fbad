package rail

// World dimensions (in tiles). The demo town generator and tests both
// assume a grid at least this large; the core itself only reads the
// size reported by the world it is handed.
const (
	WorldWidth  = 64
	WorldHeight = 48
)

// Train motion.
const (
	PassengerSpeed = 1.5 // tiles per second, base
	FreightSpeed   = 1.0
	SpeedJitter    = 0.35 // +- fraction applied at spawn
	StationDwell   = 2.6  // seconds a passenger train holds at a station
	TrainMaxAgeMin = 90.0 // seconds before a train is retired
	TrainMaxAgeMax = 150.0
)

// Consist layout.
const (
	CarriageSpacing  = 0.5 // progress units between carriage anchors
	HistoryCapacity  = 80  // visited cells kept per train
	PassengerCarsMin = 5
	PassengerCarsMax = 8
	FreightCarsMin   = 6
	FreightCarsMax   = 10
)

// Spawning.
const (
	MinRailTiles     = 8   // below this the network is too small to run trains
	MaxTrains        = 12  // active-train cap
	MaxTrainsLowSpec = 6   // cap on constrained profiles
	StationSpawnBias = 0.7 // probability of preferring a station-adjacent site
)

// Car-following.
const (
	FollowSafeDistance = 1.5  // longitudinal gap (tiles) at which full speed resumes
	FollowFloor        = 0.15 // multiplier floor; never 0 so queues cannot deadlock
	FollowMaxManhattan = 4    // pairs further apart than this never interact
	FollowLaneTolerance = 0.35 // perpendicular offset beyond which lanes differ
)

// Grade crossings.
const (
	CrossingWarnRadius  = 4.0 // effective distance that triggers warning
	CrossingCloseRadius = 1.0 // effective distance that closes the gates
)

// Lane geometry (fractions of a tile).
const (
	LaneOffset = 0.18 // perpendicular offset of the double-track lanes
)
