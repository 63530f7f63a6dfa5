package timeseries

import (
	"sort"
	"time"
)

// Point is one dated observation.
type Point struct {
	Date  time.Time `yaml:"date" json:"date"`
	Value float64   `yaml:"value" json:"value"`
}

// Series is an immutable date ordered sequence of observations. Time series do not vary
// by scenario, one series is shared by every scenario of a calculation.
type Series struct {
	points []Point
}

func Empty() Series {
	return Series{}
}

// New builds a series from points in any order. Dates are truncated to the day; when two
// points share a date the later one in the argument list wins.
func New(points ...Point) Series {
	if len(points) == 0 {
		return Empty()
	}

	byDate := make(map[time.Time]float64, len(points))

	for _, p := range points {
		byDate[NormalizeDate(p.Date)] = p.Value
	}

	ps := make([]Point, 0, len(byDate))
	for d, v := range byDate {
		ps = append(ps, Point{Date: d, Value: v})
	}

	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Date.Before(ps[j].Date)
	})

	return Series{points: ps}
}

// NormalizeDate drops the clock part of t, keeping its calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s Series) Len() int {
	return len(s.points)
}

func (s Series) IsEmpty() bool {
	return len(s.points) == 0
}

func (s Series) search(date time.Time) int {
	return sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Date.Before(date)
	})
}

// Get returns the observation on date.
func (s Series) Get(date time.Time) (v float64, ok bool) {
	date = NormalizeDate(date)

	idx := s.search(date)
	if idx < len(s.points) && s.points[idx].Date.Equal(date) {
		v = s.points[idx].Value
		ok = true
	}

	return
}

// Points returns a copy of the observations in date order.
func (s Series) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s Series) Earliest() (p Point, ok bool) {
	if s.IsEmpty() {
		return
	}

	return s.points[0], true
}

func (s Series) Latest() (p Point, ok bool) {
	if s.IsEmpty() {
		return
	}

	return s.points[len(s.points)-1], true
}

// SubSeries returns the observations in [from, to).
func (s Series) SubSeries(from, to time.Time) Series {
	start := s.search(NormalizeDate(from))
	end := s.search(NormalizeDate(to))

	if start >= end {
		return Empty()
	}

	return Series{points: append([]Point(nil), s.points[start:end]...)}
}

func (s Series) Equal(o Series) bool {
	if len(s.points) != len(o.points) {
		return false
	}

	for idx := range s.points {
		if !s.points[idx].Date.Equal(o.points[idx].Date) || s.points[idx].Value != o.points[idx].Value {
			return false
		}
	}

	return true
}
