// Package dataset provides Matrix, a dense table of float64 values with per-column metadata, and
// reading and writing of the ARFF text format.
//
// Each element of a Matrix is a float64. Nominal (categorical) values are stored as their
// zero-based enumeration index; the column metadata maps between those indices and their labels.
// A column with no labels is continuous. Missing values are stored as Missing.
//
//		m := dataset.New()
//		m.SetSize(3, 2)
//		m.Set(0, 0, 1.0)
//		m.Row(2)[1] = 1234.567
//
// Matrices are large owning containers and must be passed by pointer. Using a Matrix that was
// copied by value panics with ErrCopied.
package dataset

import (
	"strconv"

	"github.com/jpuck/neural-network/rng"
	"github.com/pkg/errors"
)

// Missing marks an unknown element. It is excluded from every column statistic and is written to
// ARFF files as "?".
const Missing = -1e308

// These are the errors that may be returned (or, for ErrCopied, panicked) by Matrix methods.
var (
	ErrNoColumns  = errors.New("the matrix has no columns")
	ErrOutOfRange = errors.New("out of range")
	ErrCopied     = errors.New("Matrix copied by value; big objects should be passed by reference")
)

// SizeMismatchError documents an operation given two things whose sizes were required to match.
type SizeMismatchError struct {
	Expected, Got int
	What          string
}

func (err SizeMismatchError) Error() string {
	return "mismatched " + err.What + ": expected " + strconv.Itoa(err.Expected) + ", got " + strconv.Itoa(err.Got)
}

// noCopy lets `go vet` report copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Matrix is a table of rows, all with the same number of columns.
type Matrix struct {
	_ noCopy

	// addr is the address of the Matrix, set on first use, for detecting copies
	addr *Matrix

	data [][]float64

	// the name of the relation, taken from and written to ARFF files
	relation string

	// the name of each attribute (or column)
	attrNames []string

	// strToEnum[c] maps labels of column c to their index; enumToStr[c] holds the labels in order.
	// Both are empty for continuous columns.
	strToEnum []map[string]int
	enumToStr [][]string
}

// New returns an empty 0x0 Matrix. To give it dimensions, use SetSize, NewColumn, CopyMetaData or
// LoadARFF.
func New() *Matrix {
	m := new(Matrix)
	m.addr = m
	return m
}

// copyCheck panics if m is a copy of another Matrix.
func (m *Matrix) copyCheck() {
	if m.addr == nil {
		m.addr = m
	} else if m.addr != m {
		panic(ErrCopied)
	}
}

// SetSize makes m a rows x cols matrix of zeros in which every column is continuous. Any existing
// data and metadata are discarded.
func (m *Matrix) SetSize(rows, cols int) {
	m.copyCheck()

	m.data = make([][]float64, rows)
	for i := range m.data {
		m.data[i] = make([]float64, cols)
	}

	m.relation = ""
	m.attrNames = make([]string, cols)
	m.strToEnum = make([]map[string]int, cols)
	m.enumToStr = make([][]string, cols)
	for c := 0; c < cols; c++ {
		m.strToEnum[c] = map[string]int{}
	}
}

// CopyMetaData discards all rows of m and copies the column metadata of that: the result is a
// zero-row matrix with the same columns as that.
func (m *Matrix) CopyMetaData(that *Matrix) {
	m.copyCheck()
	that.copyCheck()

	m.data = nil
	m.relation = that.relation
	m.attrNames = append([]string(nil), that.attrNames...)
	m.strToEnum = make([]map[string]int, len(that.strToEnum))
	m.enumToStr = make([][]string, len(that.enumToStr))
	for c := range that.attrNames {
		m.copyColumnMeta(c, that, c)
	}
}

func (m *Matrix) copyColumnMeta(col int, that *Matrix, thatCol int) {
	m.attrNames[col] = that.attrNames[thatCol]
	m.enumToStr[col] = append([]string(nil), that.enumToStr[thatCol]...)
	m.strToEnum[col] = make(map[string]int, len(m.enumToStr[col]))
	for i, s := range m.enumToStr[col] {
		m.strToEnum[col][s] = i
	}
}

// NewColumn adds a column with the given number of nominal values, named "col_<n>" with values
// "val_0", "val_1", .... Use 0 for a continuous column. Because the layout of the rows changes,
// NewColumn also removes every row; add rows with NewRow or NewRows once all columns are in place.
func (m *Matrix) NewColumn(vals int) {
	m.copyCheck()

	m.data = nil
	c := m.Cols()
	m.attrNames = append(m.attrNames, "col_"+strconv.Itoa(c))

	labels := make([]string, vals)
	enum := make(map[string]int, vals)
	for i := range labels {
		labels[i] = "val_" + strconv.Itoa(i)
		enum[labels[i]] = i
	}

	m.strToEnum = append(m.strToEnum, enum)
	m.enumToStr = append(m.enumToStr, labels)
}

// NewRow adds one row of zeros to the bottom of m and returns it. NewRow returns ErrNoColumns if
// m has no columns yet.
func (m *Matrix) NewRow() ([]float64, error) {
	m.copyCheck()

	c := m.Cols()
	if c == 0 {
		return nil, errors.Wrapf(ErrNoColumns, "Can't add a row, you must add some columns first")
	}

	row := make([]float64, c)
	m.data = append(m.data, row)
	return row, nil
}

// NewRows adds n rows of zeros to the bottom of m.
func (m *Matrix) NewRows(n int) error {
	for i := 0; i < n; i++ {
		if _, err := m.NewRow(); err != nil {
			return err
		}
	}

	return nil
}

// Rows returns the number of rows in m.
func (m *Matrix) Rows() int {
	return len(m.data)
}

// Cols returns the number of columns (or attributes) in m.
func (m *Matrix) Cols() int {
	return len(m.attrNames)
}

// Row returns the row at the given index. The returned slice is not a copy.
func (m *Matrix) Row(index int) []float64 {
	m.copyCheck()
	return m.data[index]
}

// At returns the element at the given row and column.
func (m *Matrix) At(row, col int) float64 {
	return m.data[row][col]
}

// Set sets the element at the given row and column.
func (m *Matrix) Set(row, col int, v float64) {
	m.data[row][col] = v
}

// SetAll sets every element of m to v.
func (m *Matrix) SetAll(v float64) {
	m.copyCheck()
	for _, row := range m.data {
		for c := range row {
			row[c] = v
		}
	}
}

// Relation returns the name of the relation, as read from or written to ARFF.
func (m *Matrix) Relation() string {
	return m.relation
}

// SetRelation sets the name of the relation.
func (m *Matrix) SetRelation(name string) {
	m.copyCheck()
	m.relation = name
}

// AttrName returns the name of the given column.
func (m *Matrix) AttrName(col int) string {
	return m.attrNames[col]
}

// SetAttrName sets the name of the given column.
func (m *Matrix) SetAttrName(col int, name string) {
	m.copyCheck()
	m.attrNames[col] = name
}

// ValueCount returns the number of nominal values of the given column: 0 for a continuous
// column, 2 for a binary one, and so on.
func (m *Matrix) ValueCount(col int) int {
	return len(m.enumToStr[col])
}

// AttrValue returns the label of the given nominal value of a column.
func (m *Matrix) AttrValue(col, val int) (string, error) {
	if val < 0 || val >= len(m.enumToStr[col]) {
		return "", errors.Wrapf(ErrOutOfRange, "Column %d has no value %d", col, val)
	}

	return m.enumToStr[col][val], nil
}

// AttrIndex returns the enumeration index of the given label in a nominal column.
func (m *Matrix) AttrIndex(col int, label string) (int, bool) {
	i, ok := m.strToEnum[col][label]
	return i, ok
}

// CopyPart copies the rectangular region of that, starting at (rowBegin, colBegin) and spanning
// rowCount x colCount elements, to the bottom of m. If colCount differs from the number of columns
// of m, m is cleared first. The column metadata of the region always replaces that of m.
//
// CopyPart returns ErrOutOfRange if the region exceeds the bounds of that.
func (m *Matrix) CopyPart(that *Matrix, rowBegin, colBegin, rowCount, colCount int) error {
	m.copyCheck()
	that.copyCheck()

	if rowBegin < 0 || colBegin < 0 || rowCount < 0 || colCount < 0 ||
		rowBegin+rowCount > that.Rows() || colBegin+colCount > that.Cols() {
		return errors.Wrapf(ErrOutOfRange, "Can't copy %dx%d region at (%d, %d) from a %dx%d matrix",
			rowCount, colCount, rowBegin, colBegin, that.Rows(), that.Cols())
	}

	if m.Cols() != colCount {
		m.SetSize(0, colCount)
	}
	for c := 0; c < colCount; c++ {
		m.copyColumnMeta(c, that, colBegin+c)
	}

	for r := 0; r < rowCount; r++ {
		row := make([]float64, colCount)
		copy(row, that.data[rowBegin+r][colBegin:colBegin+colCount])
		m.data = append(m.data, row)
	}

	return nil
}

// CheckCompatibility returns an error if that has a different number of columns than m, or if
// any of its columns has a different number of nominal values.
func (m *Matrix) CheckCompatibility(that *Matrix) error {
	if that.Cols() != m.Cols() {
		return errors.WithStack(SizeMismatchError{m.Cols(), that.Cols(), "number of columns"})
	}

	for c := 0; c < m.Cols(); c++ {
		if m.ValueCount(c) != that.ValueCount(c) {
			return errors.Errorf("Column %d has mismatching number of values (%d != %d)", c, m.ValueCount(c), that.ValueCount(c))
		}
	}

	return nil
}

// Shuffle randomly permutes the rows of m with a Fisher-Yates shuffle drawn from r. If buddy is
// not nil, its rows are permuted in lock-step, so that a feature matrix and its label matrix stay
// aligned; buddy must have the same number of rows as m.
func (m *Matrix) Shuffle(r *rng.Stream, buddy *Matrix) error {
	m.copyCheck()
	if buddy != nil {
		buddy.copyCheck()
		if buddy.Rows() != m.Rows() {
			return errors.WithStack(SizeMismatchError{m.Rows(), buddy.Rows(), "number of rows to shuffle"})
		}
	}

	for j := m.Rows() - 1; j > 0; j-- {
		k, err := r.NextN(uint64(j + 1))
		if err != nil {
			return err
		}

		m.data[j], m.data[k] = m.data[k], m.data[j]
		if buddy != nil {
			buddy.data[j], buddy.data[k] = buddy.data[k], buddy.data[j]
		}
	}

	return nil
}
