package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Origin is the anchor of an object's left/top position along one axis,
// expressed as a fraction of the object's transformed size: 0 is the
// left (or top) edge, 0.5 the center and 1 the right (or bottom) edge.
type Origin float64

// Named origins.
const (
	OriginLeft   Origin = 0
	OriginTop    Origin = 0
	OriginCenter Origin = 0.5
	OriginRight  Origin = 1
	OriginBottom Origin = 1
)

// Offset returns the origin relative to the center, in [-0.5, 0.5].
func (o Origin) Offset() float64 {
	return float64(o) - 0.5
}

// ParseOrigin resolves "left", "top", "center", "right", "bottom" or a
// numeric fraction.
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "top":
		return OriginLeft, nil
	case "center", "middle":
		return OriginCenter, nil
	case "right", "bottom":
		return OriginRight, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("geom: invalid origin %q", s)
	}
	return Origin(v), nil
}
