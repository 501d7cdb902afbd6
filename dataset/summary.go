package dataset

import (
	"github.com/jpuck/neural-network/utils"
)

// ColumnSummary holds the statistics of a single column, as given by Summarize.
type ColumnSummary struct {
	Name string

	// the number of nominal values; 0 for a continuous column
	Values int

	// the number of Missing elements
	Missing int

	Mean, Min, Max float64

	// the most common value, as used to fill in Missing nominal elements
	Mode float64
}

// Summarize returns the statistics of every column of m. Columns are processed concurrently; m
// must not be modified until Summarize returns.
func (m *Matrix) Summarize() []ColumnSummary {
	m.copyCheck()

	sums := make([]ColumnSummary, m.Cols())
	utils.MultiThread(0, m.Cols(), func(c int) {
		sums[c] = ColumnSummary{
			Name:    m.attrNames[c],
			Values:  m.ValueCount(c),
			Missing: m.Rows() - len(m.known(c)),
			Mean:    m.ColumnMean(c),
			Min:     m.ColumnMin(c),
			Max:     m.ColumnMax(c),
			Mode:    m.MostCommonValue(c),
		}
	}, 1, 1)

	return sums
}
