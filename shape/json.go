// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"encoding/json"
	"math"

	"robpike.io/quad/quad"
)

// finite returns &v, or nil (JSON null) if v is NaN or infinite.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON writes {"x": ..., "y": ...}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}{finite(p.X), finite(p.Y)})
}

// MarshalJSON writes only the fields that the shape's kind uses, so a
// rectangle's height appears as "y". Keys are written in sorted order.
func (s Shape) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"type": s.Kind,
		"x0":   finite(s.X0),
		"x1":   finite(s.X1),
		"area": finite(s.Area),
	}
	switch s.Kind {
	case Trapezoid:
		out["y0"] = finite(s.Y0)
		out["y1"] = finite(s.Y1)
	case Rectangle:
		out["y"] = finite(s.Y0)
	case Parabola:
		out["x2"] = finite(s.X2)
		out["y0"] = finite(s.Y0)
		out["y1"] = finite(s.Y1)
		out["y2"] = finite(s.Y2)
	}
	return json.Marshal(out)
}

// MarshalJSON implements json.Marshaler.
func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Method     quad.Method `json:"method"`
		Requested  int         `json:"requested_n"`
		N          int         `json:"n"`
		H          float64     `json:"h"`
		Value      *float64    `json:"approximation"`
		Degenerate bool        `json:"degenerate"`
		Curve      []Point     `json:"curve"`
		Shapes     []Shape     `json:"shapes"`
	}{
		Method:     d.Method,
		Requested:  d.Requested,
		N:          d.N,
		H:          d.H,
		Value:      finite(d.Value),
		Degenerate: d.Domain != nil,
		Curve:      d.Curve,
		Shapes:     d.Shapes,
	})
}
