// Package geom holds the small value objects consumed by clients of the
// selector builder alongside their serialization helpers.
package geom

import "encoding/json"

// Rect is an axis-aligned rectangle.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// ToJSON serializes v with the standard encoder. Plain passthrough, no
// options.
func ToJSON[T any](v T) ([]byte, error) {
	return json.Marshal(v)
}

// FromJSON deserializes data into a fresh T.
func FromJSON[T any](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
