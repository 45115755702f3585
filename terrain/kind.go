package terrain

// Terrain names a band of cost multipliers.
type Terrain int

const (
	// Road is the cheapest ground, cost exactly 1.0.
	Road Terrain = iota
	// Grass covers (1.0, 1.5].
	Grass
	// Sand covers (1.5, 2.0].
	Sand
	// Mountain covers (2.0, 2.5].
	Mountain
	// Water covers (2.5, 3.0].
	Water
	// Wall is impassable.
	Wall
)

var terrainNames = [...]string{"road", "grass", "sand", "mountain", "water", "wall"}

var terrainSymbols = [...]rune{'.', 'g', 's', 'm', '~', '#'}

var canonicalCosts = [...]float64{1.0, 1.5, 2.0, 2.5, 3.0, AboveRange}

// Classify maps a cost multiplier and wall flag to its Terrain band.
func Classify(cost float64, wall bool) Terrain {
	switch {
	case wall || cost < MinCost || cost > MaxCost:
		return Wall
	case cost == MinCost:
		return Road
	case cost <= 1.5:
		return Grass
	case cost <= 2.0:
		return Sand
	case cost <= 2.5:
		return Mountain
	default:
		return Water
	}
}

// Kind classifies the cell.
func (c Cell) Kind() Terrain { return Classify(c.Cost, c.Wall) }

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	if t < Road || t > Wall {
		return "unknown"
	}

	return terrainNames[t]
}

// Symbol returns the single-rune map symbol of t.
func (t Terrain) Symbol() rune {
	if t < Road || t > Wall {
		return '?'
	}

	return terrainSymbols[t]
}

// Cost returns the canonical multiplier written for t when no explicit
// cost is given. Wall yields a value outside the passable range.
func (t Terrain) Cost() float64 {
	if t < Road || t > Wall {
		return DefaultCost
	}

	return canonicalCosts[t]
}

// FromSymbol is the inverse of Symbol.
func FromSymbol(r rune) (Terrain, bool) {
	for t, s := range terrainSymbols {
		if s == r {
			return Terrain(t), true
		}
	}

	return Road, false
}
