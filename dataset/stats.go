package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// known returns the values of the given column that are not Missing, in row order.
func (m *Matrix) known(col int) []float64 {
	vals := make([]float64, 0, len(m.data))
	for _, row := range m.data {
		if row[col] != Missing {
			vals = append(vals, row[col])
		}
	}

	return vals
}

// ColumnMean returns the mean of the given column, ignoring Missing elements. The mean of a
// column with no known elements is NaN.
func (m *Matrix) ColumnMean(col int) float64 {
	vals := m.known(col)
	if len(vals) == 0 {
		return math.NaN()
	}

	return stat.Mean(vals, nil)
}

// ColumnMin returns the smallest element of the given column, ignoring Missing elements. A column
// with no known elements gives 1e300.
func (m *Matrix) ColumnMin(col int) float64 {
	min := 1e300
	for _, v := range m.known(col) {
		min = math.Min(min, v)
	}

	return min
}

// ColumnMax returns the largest element of the given column, ignoring Missing elements. A column
// with no known elements gives -1e300.
func (m *Matrix) ColumnMax(col int) float64 {
	max := -1e300
	for _, v := range m.known(col) {
		max = math.Max(max, v)
	}

	return max
}

// MostCommonValue returns the most frequent element of the given column, ignoring Missing
// elements. Ties go to the value that appears first. A column with no known elements gives 0.
func (m *Matrix) MostCommonValue(col int) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, v := range m.known(col) {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var value float64
	best := 0
	for _, v := range order {
		if counts[v] > best {
			value, best = v, counts[v]
		}
	}

	return value
}
