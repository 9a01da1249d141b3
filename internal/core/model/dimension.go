package model

// Dimension identifies one of the three comparison dimensions. The numeric
// order is the canonical priority used everywhere composite keys and combined
// types are built: location < clientIsp < transitIsp.
type Dimension int

const (
	DimLocation Dimension = iota
	DimClientISP
	DimTransitISP
	dimCount
)

// DimensionUnknown is returned by ParseDimension for unrecognized input.
const DimensionUnknown Dimension = -1

// AllDimensions lists the dimensions in canonical priority order.
var AllDimensions = []Dimension{DimLocation, DimClientISP, DimTransitISP}

// Name returns the wire name of the dimension.
func (d Dimension) Name() string {
	switch d {
	case DimLocation:
		return "location"
	case DimClientISP:
		return "clientIsp"
	case DimTransitISP:
		return "transitIsp"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the three known dimensions.
func (d Dimension) Valid() bool {
	return d >= DimLocation && d < dimCount
}

// ParseDimension maps a wire name to a Dimension. The boolean is false for
// unrecognized input.
func ParseDimension(s string) (Dimension, bool) {
	switch s {
	case "location":
		return DimLocation, true
	case "clientIsp":
		return DimClientISP, true
	case "transitIsp":
		return DimTransitISP, true
	default:
		return DimensionUnknown, false
	}
}
