// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"encoding/json"
	"math"
)

// finite returns &v, or nil (JSON null) if v is NaN or infinite.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Method    Method   `json:"method"`
		Requested int      `json:"requested_n"`
		N         int      `json:"n"`
		H         float64  `json:"h"`
		Value     *float64 `json:"approximation"`
		Bad       int      `json:"bad_samples,omitempty"`
		First     *float64 `json:"first_bad_x,omitempty"`
	}{
		Method:    r.Method,
		Requested: r.Requested,
		N:         r.N,
		H:         r.H,
		Value:     finite(r.Value),
	}
	if r.Domain != nil {
		out.Bad = r.Domain.Bad
		out.First = finite(r.Domain.First)
	}
	return json.Marshal(out)
}

// MarshalJSON implements json.Marshaler.
func (e Estimate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value       *float64 `json:"value"`
		Error       *float64 `json:"error_estimate"`
		Intervals   int      `json:"intervals"`
		Evaluations int      `json:"evaluations"`
		Converged   bool     `json:"converged"`
		Degenerate  bool     `json:"degenerate"`
	}{
		Value:       finite(e.Value),
		Error:       finite(e.Error),
		Intervals:   e.Intervals,
		Evaluations: e.Evaluations,
		Converged:   e.Converged,
		Degenerate:  e.Degenerate,
	})
}
