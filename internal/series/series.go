// Package series accumulates per-kind cumulative event counts over time.
package series

// Point is one (timestamp, cumulative count) sample of a series.
type Point struct {
	Timestamp int64
	Count     uint64
}

// Series is the ordered list of points plotted for one kind.
// Points are appended in input order; no sorting is ever applied.
type Series struct {
	Kind   string
	Points []Point
}

// First returns the timestamp of the first point.
func (s *Series) First() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[0].Timestamp
}

// Last returns the timestamp of the last point.
func (s *Series) Last() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Timestamp
}

// Total returns the cumulative count of the series, i.e. len(Points).
func (s *Series) Total() uint64 {
	return uint64(len(s.Points))
}
