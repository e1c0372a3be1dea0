// Package simil implements the attribute-vector metrics on top of
// gonum's floats and stat primitives.
package simil

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for attribute-vector metrics.
var (
	// ErrDimensionMismatch indicates vectors of unequal length.
	ErrDimensionMismatch = errors.New("simil: vectors have unequal lengths")

	// ErrEmptyVector indicates a zero-length input vector.
	ErrEmptyVector = errors.New("simil: empty input vector")
)

// Cosine returns u·v / (‖u‖·‖v‖), defined as 0 when either norm is 0.
// Returns ErrEmptyVector or ErrDimensionMismatch for malformed input.
// Complexity: O(L).
func Cosine(u, v []float64) (float64, error) {
	if err := checkPair(u, v); err != nil {
		return 0, err
	}
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		return 0, nil
	}

	return floats.Dot(u, v) / (nu * nv), nil
}

// Pearson returns the sample correlation coefficient of u and v.
// The result is defined as 0 whenever the coefficient is mathematically
// undefined: fewer than two components, or zero variance in either
// vector. The zero-variance precondition is checked explicitly, so the
// function never emits NaN.
// Returns ErrEmptyVector or ErrDimensionMismatch for malformed input.
// Complexity: O(L).
func Pearson(u, v []float64) (float64, error) {
	if err := checkPair(u, v); err != nil {
		return 0, err
	}
	if len(u) < 2 {
		return 0, nil
	}
	if stat.Variance(u, nil) == 0 || stat.Variance(v, nil) == 0 {
		return 0, nil
	}

	return stat.Correlation(u, v, nil), nil
}

// MatchingNonZero returns the count of indices i where both u[i] and
// v[i] are non-zero.
// Returns ErrEmptyVector or ErrDimensionMismatch for malformed input.
// Complexity: O(L).
func MatchingNonZero(u, v []float64) (int, error) {
	if err := checkPair(u, v); err != nil {
		return 0, err
	}
	count := 0
	for i := range u {
		if u[i] != 0 && v[i] != 0 {
			count++
		}
	}

	return count, nil
}

// checkPair validates that u and v are non-empty and of equal length.
func checkPair(u, v []float64) error {
	if len(u) == 0 || len(v) == 0 {
		return ErrEmptyVector
	}
	if len(u) != len(v) {
		return ErrDimensionMismatch
	}

	return nil
}
