// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"encoding/json"
	"math"
)

// JSON has no NaN or infinity, so those values are written as null.

// finite returns &v, or nil if v is NaN or infinite.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	type record Record // No methods, so no recursion.
	return json.Marshal(struct {
		record
		Approximation *float64 `json:"approx"`
		AbsoluteError *float64 `json:"abs_error"`
		RelativeError *float64 `json:"rel_error"`
	}{
		record:        record(r),
		Approximation: finite(r.Approximation),
		AbsoluteError: finite(r.AbsoluteError),
		RelativeError: finite(r.RelativeError),
	})
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	type result Result
	return json.Marshal(struct {
		result
		Exact      *float64 `json:"exact_value"`
		ExactError *float64 `json:"exact_error_estimate"`
	}{
		result:     result(r),
		Exact:      finite(r.Exact),
		ExactError: finite(r.ExactError),
	})
}
