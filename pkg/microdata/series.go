package microdata

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when two parallel arrays disagree in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrWeightMismatch is returned when arithmetic is attempted between two
	// series carrying different weight vectors.
	ErrWeightMismatch = errors.New("weight mismatch")
)

// Series pairs a numeric value array 1:1 with a survey weight array. A unit
// with weight 500 represents 500 real-world units, so every statistic on a
// Series is weight-aware.
type Series struct {
	values  []float64
	weights []float64
}

// New creates a weighted series. Values and weights must have equal length
// and weights must be non-negative.
func New(values, weights []float64) (*Series, error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("series: %d values vs %d weights: %w", len(values), len(weights), ErrLengthMismatch)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("series: negative weight %f at index %d", w, i)
		}
	}
	return &Series{values: values, weights: weights}, nil
}

// FromBools creates a 0/1-valued weighted series from a boolean indicator.
func FromBools(indicator []bool, weights []float64) (*Series, error) {
	values := make([]float64, len(indicator))
	for i, b := range indicator {
		if b {
			values[i] = 1
		}
	}
	return New(values, weights)
}

func (s *Series) Len() int { return len(s.values) }

// Values returns the underlying value array. Callers must not mutate it.
func (s *Series) Values() []float64 { return s.values }

// Weights returns the underlying weight array. Callers must not mutate it.
func (s *Series) Weights() []float64 { return s.weights }

// Sum returns the weighted sum Σ values[i]*weights[i].
func (s *Series) Sum() float64 {
	var total float64
	for i, v := range s.values {
		total += v * s.weights[i]
	}
	return total
}

// Count returns the total weight Σ weights[i].
func (s *Series) Count() float64 {
	var total float64
	for _, w := range s.weights {
		total += w
	}
	return total
}

// Mean returns the weighted mean. An empty-weight selection yields 0.0
// rather than NaN; callers that need to distinguish should check Count.
func (s *Series) Mean() float64 {
	count := s.Count()
	if count == 0 {
		return 0
	}
	return s.Sum() / count
}

// Filter selects the (value, weight) pairs where mask holds, preserving
// the pairing between them.
func (s *Series) Filter(mask []bool) (*Series, error) {
	if len(mask) != len(s.values) {
		return nil, fmt.Errorf("series: mask of %d over %d values: %w", len(mask), len(s.values), ErrLengthMismatch)
	}
	values := make([]float64, 0, len(s.values))
	weights := make([]float64, 0, len(s.weights))
	for i, keep := range mask {
		if keep {
			values = append(values, s.values[i])
			weights = append(weights, s.weights[i])
		}
	}
	return &Series{values: values, weights: weights}, nil
}

// Add returns the element-wise sum of two series. Both operands must carry
// identical weight vectors; the result inherits them.
func (s *Series) Add(o *Series) (*Series, error) {
	if err := s.checkCompatible(o); err != nil {
		return nil, err
	}
	values := make([]float64, len(s.values))
	for i := range s.values {
		values[i] = s.values[i] + o.values[i]
	}
	return &Series{values: values, weights: s.weights}, nil
}

// Sub returns the element-wise difference of two series. Both operands must
// carry identical weight vectors; the result inherits them.
func (s *Series) Sub(o *Series) (*Series, error) {
	if err := s.checkCompatible(o); err != nil {
		return nil, err
	}
	values := make([]float64, len(s.values))
	for i := range s.values {
		values[i] = s.values[i] - o.values[i]
	}
	return &Series{values: values, weights: s.weights}, nil
}

func (s *Series) checkCompatible(o *Series) error {
	if len(s.values) != len(o.values) {
		return fmt.Errorf("series: %d vs %d values: %w", len(s.values), len(o.values), ErrLengthMismatch)
	}
	for i := range s.weights {
		if s.weights[i] != o.weights[i] {
			return fmt.Errorf("series: weights differ at index %d (%f vs %f): %w",
				i, s.weights[i], o.weights[i], ErrWeightMismatch)
		}
	}
	return nil
}

// GroupSum partitions the series by a parallel integer key array and returns
// the weighted sum per distinct key.
func (s *Series) GroupSum(keys []int) (map[int]float64, error) {
	if len(keys) != len(s.values) {
		return nil, fmt.Errorf("series: %d keys over %d values: %w", len(keys), len(s.values), ErrLengthMismatch)
	}
	sums := make(map[int]float64)
	for i, k := range keys {
		sums[k] += s.values[i] * s.weights[i]
	}
	return sums, nil
}

// GroupCount returns the total weight per distinct key.
func (s *Series) GroupCount(keys []int) (map[int]float64, error) {
	if len(keys) != len(s.values) {
		return nil, fmt.Errorf("series: %d keys over %d values: %w", len(keys), len(s.values), ErrLengthMismatch)
	}
	counts := make(map[int]float64)
	for i, k := range keys {
		counts[k] += s.weights[i]
	}
	return counts, nil
}

// GroupMean returns the weighted mean per distinct key, with the same 0.0
// policy for zero-weight groups as Mean.
func (s *Series) GroupMean(keys []int) (map[int]float64, error) {
	sums, err := s.GroupSum(keys)
	if err != nil {
		return nil, err
	}
	counts, err := s.GroupCount(keys)
	if err != nil {
		return nil, err
	}
	means := make(map[int]float64, len(sums))
	for k, sum := range sums {
		if counts[k] == 0 {
			means[k] = 0
			continue
		}
		means[k] = sum / counts[k]
	}
	return means, nil
}
