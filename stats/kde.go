// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
)

// KDE is a one-dimensional Gaussian kernel density estimator.
// The default bandwidth uses Scott's rule.
type KDE struct {
	data []float64

	// Bandwidth is the kernel standard deviation.
	Bandwidth float64
}

// NewKDE returns a KDE over the given samples with Scott bandwidth.
// The samples must contain at least two distinct values.
func NewKDE(data []float64) (*KDE, error) {
	data = Finite(data)
	if len(data) < 2 {
		return nil, errors.New("stats: kde needs at least two samples")
	}
	sd := std(data)
	if sd == 0 {
		return nil, errors.New("stats: kde samples are all identical")
	}
	kd := &KDE{data: data}
	kd.Bandwidth = kd.ScottBandwidth()
	return kd, nil
}

// ScottBandwidth returns the Scott's-rule bandwidth n^(-1/5) * sigma.
func (kd *KDE) ScottBandwidth() float64 {
	n := float64(len(kd.data))
	return std(kd.data) * math.Pow(n, -1.0/5.0)
}

// SilvermanBandwidth returns the Silverman-rule bandwidth
// (n*3/4)^(-1/5) * sigma.
func (kd *KDE) SilvermanBandwidth() float64 {
	n := float64(len(kd.data))
	return std(kd.data) * math.Pow(n*3.0/4.0, -1.0/5.0)
}

// Evaluate returns the estimated density at each of the given points.
func (kd *KDE) Evaluate(points []float64) []float64 {
	out := make([]float64, len(points))
	h := kd.Bandwidth
	norm := 1.0 / (float64(len(kd.data)) * h * math.Sqrt(2*math.Pi))
	for i, p := range points {
		var sum float64
		for _, x := range kd.data {
			z := (p - x) / h
			sum += math.Exp(-0.5 * z * z)
		}
		out[i] = sum * norm
	}
	return out
}

// KDE2D is a two-dimensional Gaussian kernel density estimator with a
// full covariance bandwidth matrix scaled by Scott's rule.
type KDE2D struct {
	xs, ys []float64

	// inverse covariance of the scaled kernel and its normalization
	ia, ib, ic, id float64
	norm           float64
}

// NewKDE2D returns a KDE over the given paired samples.
func NewKDE2D(xs, ys []float64) (*KDE2D, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("stats: kde2d sample lengths differ")
	}
	if len(xs) < 2 {
		return nil, errors.New("stats: kde2d needs at least two samples")
	}
	n := float64(len(xs))
	mx, my := mean(xs), mean(ys)
	var cxx, cyy, cxy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		cxx += dx * dx
		cyy += dy * dy
		cxy += dx * dy
	}
	cxx /= n - 1
	cyy /= n - 1
	cxy /= n - 1

	// Scott's rule in d=2: factor n^(-1/6), covariance scaled by factor^2
	f2 := math.Pow(n, -1.0/3.0)
	cxx *= f2
	cyy *= f2
	cxy *= f2

	det := cxx*cyy - cxy*cxy
	if det <= 0 {
		return nil, errors.New("stats: kde2d covariance is singular")
	}
	kd := &KDE2D{xs: xs, ys: ys}
	kd.ia = cyy / det
	kd.ib = -cxy / det
	kd.ic = -cxy / det
	kd.id = cxx / det
	kd.norm = 1.0 / (n * 2 * math.Pi * math.Sqrt(det))
	return kd, nil
}

// Evaluate returns the estimated density at each (px, py) pair.
func (kd *KDE2D) Evaluate(px, py []float64) []float64 {
	out := make([]float64, len(px))
	for i := range px {
		var sum float64
		for j := range kd.xs {
			dx := px[i] - kd.xs[j]
			dy := py[i] - kd.ys[j]
			q := dx*(kd.ia*dx+kd.ib*dy) + dy*(kd.ic*dx+kd.id*dy)
			sum += math.Exp(-0.5 * q)
		}
		out[i] = sum * kd.norm
	}
	return out
}
