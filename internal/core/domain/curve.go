package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CurveKind names a target pacing curve.
type CurveKind string

const (
	CurveLinear      CurveKind = "LINEAR"
	CurveFrontLoaded CurveKind = "FRONT_LOADED"
	CurveBackLoaded  CurveKind = "BACK_LOADED"
	CurveCustom      CurveKind = "CUSTOM"
)

// CurvePoint maps a fraction of the period to the fraction of the budget
// that should be spent by then.
type CurvePoint struct {
	Period float64 `json:"period" yaml:"period"`
	Budget float64 `json:"budget" yaml:"budget"`
}

var (
	frontLoadedPoints = []CurvePoint{{0, 0}, {0.25, 0.40}, {0.5, 0.70}, {0.75, 0.90}, {1, 1}}
	backLoadedPoints  = []CurvePoint{{0, 0}, {0.25, 0.10}, {0.5, 0.30}, {0.75, 0.60}, {1, 1}}
)

// Curve is the target spend distribution over a budget period. Points are
// only consulted for CurveCustom.
type Curve struct {
	Kind   CurveKind    `json:"kind" yaml:"kind"`
	Points []CurvePoint `json:"points,omitempty" yaml:"points,omitempty"`
}

// LinearCurve spends the budget evenly across the period.
func LinearCurve() Curve { return Curve{Kind: CurveLinear} }

// ParseCurveKind parses a curve name case-insensitively. An empty name
// means LINEAR.
func ParseCurveKind(s string) (CurveKind, error) {
	switch k := CurveKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "":
		return CurveLinear, nil
	case CurveLinear, CurveFrontLoaded, CurveBackLoaded, CurveCustom:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, s)
	}
}

// Validate checks custom control points: every coordinate in [0,1], period
// strictly increasing and budget non-decreasing.
func (c Curve) Validate() error {
	switch c.Kind {
	case CurveLinear, CurveFrontLoaded, CurveBackLoaded, "":
		return nil
	case CurveCustom:
	default:
		return fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, c.Kind)
	}
	if len(c.Points) == 0 {
		return fmt.Errorf("%w: custom curve without control points", ErrInvalidConfig)
	}
	for i, p := range c.Points {
		if p.Period < 0 || p.Period > 1 || p.Budget < 0 || p.Budget > 1 {
			return fmt.Errorf("%w: control point %d out of range", ErrInvalidConfig, i)
		}
		if i == 0 {
			continue
		}
		prev := c.Points[i-1]
		if p.Period <= prev.Period {
			return fmt.Errorf("%w: control point %d period not increasing", ErrInvalidConfig, i)
		}
		if p.Budget < prev.Budget {
			return fmt.Errorf("%w: control point %d budget decreasing", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Equal reports whether both curves have the same kind and points.
func (c Curve) Equal(o Curve) bool {
	return c.kind() == o.kind() && slices.Equal(c.Points, o.Points)
}

func (c Curve) kind() CurveKind {
	if c.Kind == "" {
		return CurveLinear
	}
	return c.Kind
}

// controlPoints returns the interpolation points, anchored at (0,0) and (1,1).
// LINEAR returns nil.
func (c Curve) controlPoints() []CurvePoint {
	switch c.kind() {
	case CurveFrontLoaded:
		return frontLoadedPoints
	case CurveBackLoaded:
		return backLoadedPoints
	case CurveCustom:
		pts := make([]CurvePoint, 0, len(c.Points)+2)
		if len(c.Points) == 0 || c.Points[0].Period > 0 {
			pts = append(pts, CurvePoint{0, 0})
		}
		pts = append(pts, c.Points...)
		if pts[len(pts)-1].Period < 1 {
			pts = append(pts, CurvePoint{1, 1})
		}
		return pts
	default:
		return nil
	}
}

// segment returns the index i such that x lies in [pts[i], pts[i+1]].
func segment(pts []CurvePoint, x float64) int {
	i, _ := slices.BinarySearchFunc(pts, x, func(p CurvePoint, x float64) int {
		switch {
		case p.Period < x:
			return -1
		case p.Period > x:
			return 1
		}
		return 0
	})
	// i is the first point with Period >= x.
	if i > 0 {
		i--
	}
	if i > len(pts)-2 {
		i = len(pts) - 2
	}
	return i
}

// At returns the target fraction of budget spent at fraction x of the period.
func (c Curve) At(x float64) float64 {
	x = Clamp(x, 0, 1)
	pts := c.controlPoints()
	if len(pts) < 2 {
		return x
	}
	i := segment(pts, x)
	a, b := pts[i], pts[i+1]
	return a.Budget + (b.Budget-a.Budget)*(x-a.Period)/(b.Period-a.Period)
}

// Slope returns the curve's derivative at x, i.e. the target spend rate as a
// multiple of the even rate. At a control point the slope of the segment to
// its right is used, except at x = 1.
func (c Curve) Slope(x float64) float64 {
	x = Clamp(x, 0, 1)
	pts := c.controlPoints()
	if len(pts) < 2 {
		return 1
	}
	i := segment(pts, x)
	if i+2 < len(pts) && x == pts[i+1].Period {
		i++
	}
	a, b := pts[i], pts[i+1]
	return (b.Budget - a.Budget) / (b.Period - a.Period)
}
