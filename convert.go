package svg2pts

import (
	"fmt"
	"io"
)

// defaultAccuracy is the curve flattening tolerance used when none is
// configured and resampling is disabled. With resampling enabled the
// default scales with the spacing instead: points closer together
// deserve a proportionally tighter curve fit.
const (
	defaultAccuracy      = 0.05
	accuracyDistanceFrac = 25.0
)

// Config holds the settings for one conversion run. It is immutable for
// the duration of the run.
type Config struct {
	// Distance is the target spacing between consecutive output points,
	// in document units. 0 disables resampling: every vertex is emitted
	// verbatim.
	Distance float64

	// Accuracy is the maximum deviation allowed when flattening a curve
	// to a polyline. Smaller values yield more points and a tighter fit.
	// 0 selects a default: 0.05 when Distance is 0, Distance/25
	// otherwise.
	Accuracy float64

	// Points, when positive, derives Distance from the estimated total
	// arc length of the input instead, targeting approximately this many
	// output points. Overrides Distance.
	Points int

	// PageHeight flips the Y axis on output: emitted Y equals
	// PageHeight minus the source Y.
	PageHeight float64

	// Policy selects the resampling strategy. nil selects PolicyExact.
	Policy Policy
}

// Validate reports the first out-of-range option, before any processing
// begins.
func (c Config) Validate() error {
	if c.Distance < 0 {
		return fmt.Errorf("svg2pts: distance is out of range, distance >= 0: %v", c.Distance)
	}
	if c.Accuracy < 0 {
		return fmt.Errorf("svg2pts: accuracy is out of range, accuracy > 0: %v", c.Accuracy)
	}
	if c.Points < 0 {
		return fmt.Errorf("svg2pts: points is out of range, points >= 0: %v", c.Points)
	}
	return nil
}

// resolve computes the effective distance, accuracy and policy for a run,
// estimating the total path length first when a point count is requested.
func (c Config) resolve(paths [][]PathSegment) (distance, accuracy float64, policy Policy) {
	distance = c.Distance
	if c.Points > 0 {
		if total := TotalLength(paths); total > 0 {
			distance = total / float64(c.Points)
		}
	}

	accuracy = c.Accuracy
	if accuracy == 0 {
		if distance == 0 {
			accuracy = defaultAccuracy
		} else {
			accuracy = distance / accuracyDistanceFrac
		}
	}

	policy = c.Policy
	if policy == nil {
		policy = PolicyExact
	}
	return distance, accuracy, policy
}

// Convert resamples every path and writes the resulting points to w, one
// "<x> <y>\n" line per point. Paths are processed in order, each segment
// to completion before the next; a write failure aborts the run
// immediately. Buffered output is flushed exactly once at the end, even
// on early termination.
func Convert(w io.Writer, paths [][]PathSegment, cfg Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}

	distance, accuracy, policy := cfg.resolve(paths)
	Logger().Debug("converting paths",
		"paths", len(paths),
		"distance", distance,
		"accuracy", accuracy,
		"pageHeight", cfg.PageHeight)

	sink := NewPointSink(w, cfg.PageHeight)
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	rs := NewResampler(sink, distance, accuracy, policy)
	for _, segs := range paths {
		for _, seg := range segs {
			switch s := seg.(type) {
			case MoveTo:
				err = rs.MoveTo(s.Point)
			case LineTo:
				err = rs.LineTo(s.Point)
			case CurveTo:
				err = rs.CurveTo(s.Control1, s.Control2, s.Point)
			case Close:
				err = rs.Close()
			default:
				err = fmt.Errorf("svg2pts: unknown path segment %T", seg)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
