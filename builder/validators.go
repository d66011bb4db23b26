// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures got ≥ min, else wraps ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// validatePartition checks that both sides are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
			method, MinPartitionSize, n1, n2, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %f: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}
