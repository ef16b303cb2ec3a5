// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"container/heap"
	"math"
)

// Tolerance controls the reference integrator. Subdivision stops when
// the total error estimate is at most max(AbsTol, RelTol·|value|) or
// when Limit subintervals are in use.
type Tolerance struct {
	AbsTol float64 `json:"abs_tol" yaml:"abs_tol"`
	RelTol float64 `json:"rel_tol" yaml:"rel_tol"`
	Limit  int     `json:"limit" yaml:"limit"`
}

// DefaultTolerance matches the customary QUADPACK driver settings.
var DefaultTolerance = Tolerance{
	AbsTol: 1.49e-8,
	RelTol: 1.49e-8,
	Limit:  50,
}

// Estimate is the reference integrator's answer.
type Estimate struct {
	Value       float64
	Error       float64 // Estimated absolute error.
	Intervals   int     // Subintervals in the final partition.
	Evaluations int
	Converged   bool // The error estimate met the tolerance.
	Degenerate  bool // Some sample was not finite; Value is NaN.
}

// Reference integrates f over [a, b] with DefaultTolerance.
func Reference(f func(float64) float64, a, b float64) (Estimate, error) {
	return ReferenceWith(f, a, b, DefaultTolerance)
}

// ReferenceWith integrates f over [a, b] by globally adaptive 21-point
// Gauss-Kronrod quadrature: the subinterval with the largest error
// estimate is bisected until the tolerance is met or tol.Limit
// subintervals exist. Reaching the limit is not an error; the estimate is
// returned with Converged false and its (large) error estimate, so the
// routine terminates on any integrand.
func ReferenceWith(f func(float64) float64, a, b float64, tol Tolerance) (Estimate, error) {
	if err := CheckInterval(a, b); err != nil {
		return Estimate{}, err
	}
	if tol.Limit < 1 {
		tol.Limit = 1
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}
	est := Estimate{}
	first := kronrod21(f, a, b)
	est.Evaluations = 21
	if first.bad {
		return degenerate(est), nil
	}
	h := &segments{first}
	value, errSum := first.value, first.err
	for h.Len() < tol.Limit && errSum > math.Max(tol.AbsTol, tol.RelTol*math.Abs(value)) {
		worst := heap.Pop(h).(segment)
		mid := 0.5 * (worst.a + worst.b)
		if mid <= worst.a || mid >= worst.b {
			// Interval cannot be split further in float64.
			heap.Push(h, worst)
			break
		}
		left := kronrod21(f, worst.a, mid)
		right := kronrod21(f, mid, worst.b)
		est.Evaluations += 42
		if left.bad || right.bad {
			return degenerate(est), nil
		}
		value += left.value + right.value - worst.value
		errSum += left.err + right.err - worst.err
		heap.Push(h, left)
		heap.Push(h, right)
	}
	// Resum to shed the drift of the running updates.
	value, errSum = 0, 0
	for _, s := range *h {
		value += s.value
		errSum += s.err
	}
	est.Value = sign * value
	est.Error = errSum
	est.Intervals = h.Len()
	est.Converged = errSum <= math.Max(tol.AbsTol, tol.RelTol*math.Abs(value))
	return est, nil
}

func degenerate(est Estimate) Estimate {
	est.Value = math.NaN()
	est.Error = math.Inf(1)
	est.Degenerate = true
	return est
}

// segment is one subinterval and its Gauss-Kronrod result.
type segment struct {
	a, b  float64
	value float64
	err   float64
	bad   bool
}

// segments is a max-heap on err.
type segments []segment

func (s segments) Len() int            { return len(s) }
func (s segments) Less(i, j int) bool  { return s[i].err > s[j].err }
func (s segments) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s *segments) Push(x interface{}) { *s = append(*s, x.(segment)) }
func (s *segments) Pop() interface{} {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[:n-1]
	return x
}

// Abscissae and weights of the 21-point Kronrod rule and the embedded
// 10-point Gauss rule on [-1, 1], from QUADPACK's qk21.
var (
	xgk = [11]float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0,
	}
	wgk = [11]float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077208976890720,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}
	wg = [5]float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

// kronrod21 applies the 21-point rule to [a, b], with the error estimate
// computed as in QUADPACK.
func kronrod21(f func(float64) float64, a, b float64) segment {
	const (
		epmach = 2.220446049250313e-16
		uflow  = 2.2250738585072014e-308
	)
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)
	abshalf := math.Abs(half)

	var fv1, fv2 [10]float64
	bad := false
	eval := func(x float64) float64 {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			bad = true
		}
		return y
	}

	fc := eval(center)
	resg := 0.0
	resk := wgk[10] * fc
	resabs := math.Abs(resk)
	for j := 0; j < 5; j++ {
		jtw := 2*j + 1
		dx := half * xgk[jtw]
		f1, f2 := eval(center-dx), eval(center+dx)
		fv1[jtw], fv2[jtw] = f1, f2
		resg += wg[j] * (f1 + f2)
		resk += wgk[jtw] * (f1 + f2)
		resabs += wgk[jtw] * (math.Abs(f1) + math.Abs(f2))
	}
	for j := 0; j < 5; j++ {
		jtwm1 := 2 * j
		dx := half * xgk[jtwm1]
		f1, f2 := eval(center-dx), eval(center+dx)
		fv1[jtwm1], fv2[jtwm1] = f1, f2
		resk += wgk[jtwm1] * (f1 + f2)
		resabs += wgk[jtwm1] * (math.Abs(f1) + math.Abs(f2))
	}
	if bad {
		return segment{a: a, b: b, bad: true}
	}
	reskh := 0.5 * resk
	resasc := wgk[10] * math.Abs(fc-reskh)
	for j := 0; j < 10; j++ {
		resasc += wgk[j] * (math.Abs(fv1[j]-reskh) + math.Abs(fv2[j]-reskh))
	}
	result := resk * half
	resabs *= abshalf
	resasc *= abshalf
	abserr := math.Abs((resk - resg) * half)
	if resasc != 0 && abserr != 0 {
		abserr = resasc * math.Min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	if resabs > uflow/(50*epmach) {
		abserr = math.Max(epmach*50*resabs, abserr)
	}
	return segment{a: a, b: b, value: result, err: abserr}
}
