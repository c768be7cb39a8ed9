package axle

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/primovera12/load-planner/core/packing"
)

// Status grades an axle group's load against its legal limit.
type Status string

const (
	StatusSafe       Status = "safe"
	StatusCaution    Status = "caution"
	StatusOverloaded Status = "overloaded"
)

func statusFor(pct float64) Status {
	switch {
	case pct >= 100:
		return StatusOverloaded
	case pct >= 90:
		return StatusCaution
	default:
		return StatusSafe
	}
}

// Config holds the axle legal limits and the lever-arm assumptions of the
// simplified kingpin moment model. It is injected so tests can run alternate
// jurisdictions or tractor geometries.
type Config struct {
	// Legal limits per axle group, pounds. Tandem assumptions.
	SteerLimit   float64 `json:"steer_limit"`
	DriveLimit   float64 `json:"drive_limit"`
	TrailerLimit float64 `json:"trailer_limit"`
	GrossLimit   float64 `json:"gross_limit"`

	// TrailerAxlePosition is where the trailer axle group sits, as a
	// fraction of deck length aft of the kingpin.
	TrailerAxlePosition float64 `json:"trailer_axle_position"`
	// TrailerCGPosition is where the empty trailer's own weight acts, as a
	// fraction of the kingpin-to-axle span.
	TrailerCGPosition float64 `json:"trailer_cg_position"`
	// TractorWheelbase and FifthWheelOffset (feet) split the fifth-wheel
	// load between steer and drive groups.
	TractorWheelbase float64 `json:"tractor_wheelbase"`
	FifthWheelOffset float64 `json:"fifth_wheel_offset"`
	// SteerTareShare is the fraction of tractor tare carried by the steer
	// axle.
	SteerTareShare float64 `json:"steer_tare_share"`
}

// DefaultConfig returns the tandem-axle planning assumptions.
func DefaultConfig() Config {
	return Config{
		SteerLimit:          12000,
		DriveLimit:          34000,
		TrailerLimit:        34000,
		GrossLimit:          80000,
		TrailerAxlePosition: 0.7,
		TrailerCGPosition:   0.4,
		TractorWheelbase:    20,
		FifthWheelOffset:    5,
		SteerTareShare:      0.35,
	}
}

// Validate checks the limits and lever geometry are usable.
func (c Config) Validate() error {
	if c.SteerLimit <= 0 || c.DriveLimit <= 0 || c.TrailerLimit <= 0 || c.GrossLimit <= 0 {
		return fmt.Errorf("axle limits must be positive")
	}
	if c.TrailerAxlePosition <= 0 || c.TrailerAxlePosition > 1 {
		return fmt.Errorf("trailer axle position must be in (0,1]")
	}
	if c.TrailerCGPosition < 0 || c.TrailerCGPosition > 1 {
		return fmt.Errorf("trailer cg position must be in [0,1]")
	}
	if c.TractorWheelbase <= 0 {
		return fmt.Errorf("tractor wheelbase must be positive")
	}
	if c.FifthWheelOffset < 0 || c.FifthWheelOffset > c.TractorWheelbase {
		return fmt.Errorf("fifth wheel offset must be within the wheelbase")
	}
	if c.SteerTareShare < 0 || c.SteerTareShare > 1 {
		return fmt.Errorf("steer tare share must be in [0,1]")
	}
	return nil
}

// PointLoad is one placed weight at a longitudinal position measured from
// the kingpin.
type PointLoad struct {
	Weight float64
	X      float64
}

// LoadsFromPlacements adapts packer output into point loads acting at each
// placement's longitudinal center.
func LoadsFromPlacements(placements []packing.Placement) []PointLoad {
	loads := make([]PointLoad, 0, len(placements))
	for _, p := range placements {
		loads = append(loads, PointLoad{Weight: p.Weight, X: p.CenterX()})
	}
	return loads
}

// AxleWeight is the computed load on one axle group.
type AxleWeight struct {
	Name    string
	Weight  float64
	Limit   float64
	Percent float64
	Status  Status
}

// WeightDistribution is the full axle picture for one loaded trailer. It is
// a planning approximation of a single-axis moment balance, not a certified
// weigh-in-motion result.
type WeightDistribution struct {
	Steer   AxleWeight
	Drive   AxleWeight
	Trailer AxleWeight

	GrossWeight  float64
	GrossLimit   float64
	GrossPercent float64
	GrossStatus  Status

	// BalanceRatio is the fraction of total axle weight carried rearward of
	// the tractor, in [0,1].
	BalanceRatio float64
}

// Distribute computes per-axle loads with a lever model referenced from the
// kingpin. Zero cargo yields a tare-only distribution; a zero-length deck
// degenerates to all trailer weight on the trailer axle group.
func (c Config) Distribute(loads []PointLoad, trailerLength, tractorWeight, trailerTare float64) WeightDistribution {
	var cargoWeight, cargoCG float64
	if len(loads) > 0 {
		xs := make([]float64, len(loads))
		ws := make([]float64, len(loads))
		for i, l := range loads {
			xs[i] = l.X
			ws[i] = l.Weight
		}
		cargoWeight = floats.Sum(ws)
		if cargoWeight > 0 {
			cargoCG = stat.Mean(xs, ws)
		}
	}

	span := c.TrailerAxlePosition * trailerLength
	towed := cargoWeight + trailerTare

	var fifthWheel float64
	if span > 0 {
		fifthWheel = cargoWeight * (span - cargoCG) / span
		fifthWheel += trailerTare * (span - c.TrailerCGPosition*span) / span
	}
	// A CG behind the trailer axle would lever weight off the tractor; the
	// model stops at zero rather than predicting a lifted fifth wheel.
	if fifthWheel < 0 {
		fifthWheel = 0
	}
	if fifthWheel > towed {
		fifthWheel = towed
	}
	trailerAxle := towed - fifthWheel

	steerShare := 0.0
	if c.TractorWheelbase > 0 {
		steerShare = c.FifthWheelOffset / c.TractorWheelbase
	}
	steer := c.SteerTareShare*tractorWeight + fifthWheel*steerShare
	drive := (1-c.SteerTareShare)*tractorWeight + fifthWheel*(1-steerShare)

	gross := tractorWeight + towed
	dist := WeightDistribution{
		Steer:       c.axleWeight("steer", steer, c.SteerLimit),
		Drive:       c.axleWeight("drive", drive, c.DriveLimit),
		Trailer:     c.axleWeight("trailer", trailerAxle, c.TrailerLimit),
		GrossWeight: gross,
		GrossLimit:  c.GrossLimit,
	}
	if c.GrossLimit > 0 {
		dist.GrossPercent = gross / c.GrossLimit * 100
	}
	dist.GrossStatus = statusFor(dist.GrossPercent)

	if total := steer + drive + trailerAxle; total > 0 {
		dist.BalanceRatio = (drive + trailerAxle) / total
	}
	return dist
}

func (c Config) axleWeight(name string, weight, limit float64) AxleWeight {
	aw := AxleWeight{Name: name, Weight: weight, Limit: limit}
	if limit > 0 {
		aw.Percent = weight / limit * 100
	}
	aw.Status = statusFor(aw.Percent)
	return aw
}
