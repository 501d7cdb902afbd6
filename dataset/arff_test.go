package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const irisLike = `% a comment before the header
@relation 'iris sample'

@ATTRIBUTE sepal_length REAL
@Attribute 'petal width' numeric
@attribute class {setosa, versicolor,virginica}
@DATA
5.1,0.2,setosa
% a comment inside the data

4.9, ?, versicolor
6.3,1.8,?
1e-05,-123.456789,virginica
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadARFF(t *testing.T) {
	m := New()
	if err := m.LoadARFF(writeFile(t, "iris.arff", irisLike)); err != nil {
		t.Fatal(err)
	}

	if m.Rows() != 4 || m.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Rows(), m.Cols())
	}
	if m.Relation() != "'iris sample'" {
		t.Errorf("relation = %q", m.Relation())
	}
	if m.AttrName(1) != "petal width" {
		t.Errorf("AttrName(1) = %q", m.AttrName(1))
	}
	if m.ValueCount(0) != 0 || m.ValueCount(1) != 0 || m.ValueCount(2) != 3 {
		t.Errorf("value counts = %d, %d, %d", m.ValueCount(0), m.ValueCount(1), m.ValueCount(2))
	}
	if v, _ := m.AttrValue(2, 1); v != "versicolor" {
		t.Errorf("AttrValue(2, 1) = %q", v)
	}

	want := [][]float64{
		{5.1, 0.2, 0},
		{4.9, Missing, 1},
		{6.3, 1.8, Missing},
		{1e-05, -123.456789, 2},
	}
	for r := range want {
		for c := range want[r] {
			if got := m.At(r, c); got != want[r][c] {
				t.Errorf("(%d, %d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestARFFRoundTrip(t *testing.T) {
	m := New()
	if err := m.LoadARFF(writeFile(t, "iris.arff", irisLike)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.arff")
	if err := m.SaveARFF(path); err != nil {
		t.Fatal(err)
	}

	back := New()
	if err := back.LoadARFF(path); err != nil {
		t.Fatal(err)
	}

	if back.Relation() != m.Relation() {
		t.Errorf("relation %q != %q", back.Relation(), m.Relation())
	}
	if err := back.CheckCompatibility(m); err != nil {
		t.Fatal(err)
	}
	for c := 0; c < m.Cols(); c++ {
		if back.AttrName(c) != m.AttrName(c) {
			t.Errorf("attribute %d: name %q != %q", c, back.AttrName(c), m.AttrName(c))
		}
		for v := 0; v < m.ValueCount(c); v++ {
			a, _ := back.AttrValue(c, v)
			b, _ := m.AttrValue(c, v)
			if a != b {
				t.Errorf("attribute %d value %d: %q != %q", c, v, a, b)
			}
		}
	}
	if back.Rows() != m.Rows() {
		t.Fatalf("rows %d != %d", back.Rows(), m.Rows())
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if back.At(r, c) != m.At(r, c) {
				t.Errorf("(%d, %d): %v != %v", r, c, back.At(r, c), m.At(r, c))
			}
		}
	}

	// a second save is byte-identical to the first
	var first, second bytes.Buffer
	if err := m.WriteARFF(&first); err != nil {
		t.Fatal(err)
	}
	if err := back.WriteARFF(&second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("saves differ:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestWriteARFF(t *testing.T) {
	m := New()
	m.SetSize(2, 2)
	m.NewColumn(2)
	m.SetRelation("demo")
	m.SetAttrName(2, "flag")
	m.NewRows(2)
	m.Set(0, 0, 1.0/3)
	m.Set(0, 2, 1)
	m.Set(1, 0, 1234567890123)
	m.Set(1, 1, Missing)

	var buf bytes.Buffer
	if err := m.WriteARFF(&buf); err != nil {
		t.Fatal(err)
	}

	want := "@RELATION demo\n" +
		"@ATTRIBUTE x REAL\n" +
		"@ATTRIBUTE x REAL\n" +
		"@ATTRIBUTE flag {val_0,val_1}\n" +
		"@DATA\n" +
		"0.3333333333,0,val_1\n" +
		"1.23456789e+12,?,val_0\n"
	if buf.String() != want {
		t.Errorf("WriteARFF:\n%s\nwant:\n%s", buf.String(), want)
	}

	m.Set(0, 2, 5)
	if err := m.WriteARFF(&buf); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("nominal value out of range: error = %v", err)
	}
}

func TestARFFParseErrors(t *testing.T) {
	header := "@relation r\n@attribute a real\n@attribute b {x,y}\n@data\n"
	cases := map[string]struct {
		contents string
		line     int
		msg      string
	}{
		"unknown nominal": {header + "1,x\n2,z\n", 6, "unrecognized enumeration value"},
		"short row":       {header + "1\n", 5, "expected 2 elements"},
		"bad number":      {header + "abc,x\n", 5, "invalid number"},
		"no type":         {"@relation r\n@attribute a\n", 2, "has no type"},
		"bad type":        {"@relation r\n@attribute a string\n", 2, "unsupported type"},
		"open braces":     {"@relation r\n@attribute a {x,y\n", 2, "unterminated value list"},
		"junk header":     {"@relation r\nhello\n", 2, "unrecognized line"},
	}

	for name, c := range cases {
		m := New()
		err := m.ReadARFF(strings.NewReader(c.contents), name)
		pe, ok := errors.Cause(err).(ParseError)
		if !ok {
			t.Errorf("%s: error = %v, want ParseError", name, err)
			continue
		}

		if pe.Line != c.line || pe.File != name || !strings.Contains(pe.Msg, c.msg) {
			t.Errorf("%s: got %q at line %d, want %q at line %d", name, pe.Msg, pe.Line, c.msg, c.line)
		}
	}
}

func TestLoadARFFMissingFile(t *testing.T) {
	m := New()
	err := m.LoadARFF(filepath.Join(t.TempDir(), "nope.arff"))
	if _, ok := errors.Cause(err).(ParseError); !ok {
		t.Errorf("error = %v, want ParseError", err)
	}
}

func TestARFFAttributeNamesRoundTrip(t *testing.T) {
	names := []string{"it's here", "'lead", `say "hi"`, `back\slash`, `tab	and \ both'`, "plain"}

	m := New()
	for range names {
		m.NewColumn(0)
	}
	for c, name := range names {
		m.SetAttrName(c, name)
	}
	m.NewRows(1)

	var buf bytes.Buffer
	if err := m.WriteARFF(&buf); err != nil {
		t.Fatal(err)
	}

	back := New()
	if err := back.ReadARFF(strings.NewReader(buf.String()), "names"); err != nil {
		t.Fatalf("reloading:\n%s\nerror: %v", buf.String(), err)
	}
	if back.Cols() != len(names) {
		t.Fatalf("reloaded %d columns, want %d", back.Cols(), len(names))
	}
	for c, name := range names {
		if back.AttrName(c) != name {
			t.Errorf("column %d: name %q, want %q", c, back.AttrName(c), name)
		}
	}
}
