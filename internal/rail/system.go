package rail

// RailSystem owns every active train and advances them one tick at a
// time. Single-threaded and deterministic given (world, dt, multiplier)
// and the prior train states.
//
// Update order within a tick is sequential in slice order: the
// car-following pass for a train reads the current positions of its
// peers, including those already moved this tick. The order is part of
// the system's contract and covered by a regression test.
type RailSystem struct {
	Trains  []*Train
	LowSpec bool // constrained profile: halved train cap

	seed   uint64
	rng    *Rand
	nextID int
}

func NewRailSystem(seed uint64) *RailSystem {
	if seed == 0 {
		seed = 1
	}
	return &RailSystem{
		Trains: make([]*Train, 0, MaxTrains),
		seed:   seed,
		rng:    NewRand(seed ^ 0x7A31),
	}
}

// Update advances every train: dwell countdown or movement with the
// car-following multiplier applied, then carriage placement. Expiry
// flags trains dead; RemoveDead reclaims them.
func (rs *RailSystem) Update(dt float64, w RailWorld, globalMult float64) {
	if dt <= 0 || w == nil {
		return
	}
	for _, t := range rs.Trains {
		if !t.Alive {
			continue
		}
		t.Age += dt
		if expired(w, t) {
			t.Alive = false
			continue
		}
		if t.AtStation {
			tickDwell(t, dt)
		} else {
			mult := followMultiplier(t, rs.Trains)
			advanceTrain(w, t, t.Speed*dt*globalMult*mult)
		}
		updateCarriages(t)
	}
}

// AliveCount returns the number of living trains.
func (rs *RailSystem) AliveCount() int {
	n := 0
	for _, t := range rs.Trains {
		if t.Alive {
			n++
		}
	}
	return n
}

// RemoveDead removes dead trains using swap-remove.
func (rs *RailSystem) RemoveDead() {
	for i := 0; i < len(rs.Trains); {
		if !rs.Trains[i].Alive {
			rs.Trains[i] = rs.Trains[len(rs.Trains)-1]
			rs.Trains = rs.Trains[:len(rs.Trains)-1]
		} else {
			i++
		}
	}
}

// Poses resolves every carriage of every living train to a render pose,
// reusing buf to avoid per-frame allocations.
func (rs *RailSystem) Poses(w RailWorld, buf []CarriagePose) []CarriagePose {
	buf = buf[:0]
	for _, t := range rs.Trains {
		if !t.Alive {
			continue
		}
		for _, c := range t.Cars {
			buf = append(buf, carriagePose(w, c))
		}
	}
	return buf
}

// CrossingAt evaluates the signal state of the crossing cell at (x,y)
// against the live train positions. Pull-based: the host queries it per
// crossing per frame.
func (rs *RailSystem) CrossingAt(w RailWorld, x, y int) CrossingInfo {
	return crossingInfo(w, x, y, rs.Trains)
}
