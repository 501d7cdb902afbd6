package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError is returned for malformed ARFF input. Line is 1-based; it is 0 if the error isn't
// tied to a line, such as a file that can't be opened.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (err ParseError) Error() string {
	if err.Line == 0 {
		return err.File + ": " + err.Msg
	}

	return err.File + ":" + strconv.Itoa(err.Line) + ": " + err.Msg
}

// keywords that declare a continuous attribute
var continuousTypes = map[string]bool{
	"real":    true,
	"numeric": true,
	"integer": true,
}

// LoadARFF replaces the contents of m with the relation in the given ARFF file.
func (m *Matrix) LoadARFF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(ParseError{path, 0, "failed to open the file: " + err.Error()})
	}
	defer f.Close()

	return m.ReadARFF(f, path)
}

// ReadARFF replaces the contents of m with the relation read from r. name is used to give context
// to errors, typically the name of the file being read.
//
// Keywords are case-insensitive. Blank lines and lines starting with '%' are skipped. Nominal
// values are resolved through the declared enumeration of their attribute, and '?' marks a
// Missing element of any column.
func (m *Matrix) ReadARFF(r io.Reader, name string) error {
	m.SetSize(0, 0)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	fail := func(format string, args ...interface{}) error {
		return errors.WithStack(ParseError{name, lineNum, fmt.Sprintf(format, args...)})
	}

	inData := false
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '%' {
			continue
		}

		if inData {
			row, err := m.parseRow(trimmed)
			if err != nil {
				return fail("%s", err.Error())
			}

			m.data = append(m.data, row)
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "@relation"):
			m.relation = strings.TrimSpace(trimmed[len("@relation"):])
		case strings.HasPrefix(lower, "@attribute"):
			if err := m.parseAttribute(trimmed[len("@attribute"):]); err != nil {
				return fail("%s", err.Error())
			}
		case strings.HasPrefix(lower, "@data"):
			inData = true
		default:
			return fail("unrecognized line %q", trimmed)
		}
	}

	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "Can't read ARFF from %s", name)
	}

	return nil
}

// parseAttribute adds the column declared by the rest of an @attribute line.
func (m *Matrix) parseAttribute(decl string) error {
	decl = strings.TrimSpace(decl)
	if decl == "" {
		return errors.Errorf("attribute has no name")
	}

	var attrName string
	if decl[0] == '\'' || decl[0] == '"' {
		name, rest, ok := unquoteName(decl)
		if !ok {
			return errors.Errorf("unterminated attribute name %s", decl)
		}

		attrName, decl = name, rest
	} else {
		end := strings.IndexAny(decl, " \t")
		if end < 0 {
			return errors.Errorf("attribute %q has no type", decl)
		}

		attrName = decl[:end]
		decl = decl[end:]
	}

	typ := strings.TrimSpace(decl)
	if typ == "" {
		return errors.Errorf("attribute %q has no type", attrName)
	}

	var labels []string
	if typ[0] == '{' {
		end := strings.LastIndexByte(typ, '}')
		if end < 0 {
			return errors.Errorf("attribute %q: unterminated value list %s", attrName, typ)
		}

		for _, v := range strings.Split(typ[1:end], ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				return errors.Errorf("attribute %q: empty nominal value", attrName)
			}

			labels = append(labels, v)
		}
	} else if !continuousTypes[strings.ToLower(typ)] {
		return errors.Errorf("attribute %q: unsupported type %q", attrName, typ)
	}

	enum := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := enum[l]; ok {
			return errors.Errorf("attribute %q: duplicate nominal value %q", attrName, l)
		}
		enum[l] = i
	}

	m.attrNames = append(m.attrNames, attrName)
	m.strToEnum = append(m.strToEnum, enum)
	m.enumToStr = append(m.enumToStr, labels)
	return nil
}

// quoteName wraps name in single quotes, escaping backslashes and single quotes with a backslash.
func quoteName(name string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' || name[i] == '\'' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte('\'')
	return sb.String()
}

// unquoteName reads the quoted name at the start of decl, whose first byte is the quote
// character. A backslash makes the byte after it literal. It returns the name and the remainder
// of decl after the closing quote.
func unquoteName(decl string) (name, rest string, ok bool) {
	quote := decl[0]
	var sb strings.Builder
	for i := 1; i < len(decl); i++ {
		switch decl[i] {
		case '\\':
			if i+1 == len(decl) {
				return "", "", false
			}
			i++
			sb.WriteByte(decl[i])
		case quote:
			return sb.String(), decl[i+1:], true
		default:
			sb.WriteByte(decl[i])
		}
	}

	return "", "", false
}

// parseRow converts one line of the @data section. Fields beyond the declared attributes are
// ignored.
func (m *Matrix) parseRow(line string) ([]float64, error) {
	fields := strings.Split(line, ",")
	if len(fields) < m.Cols() {
		return nil, errors.Errorf("expected %d elements, found %d", m.Cols(), len(fields))
	}

	row := make([]float64, m.Cols())
	for c := range row {
		val := strings.TrimSpace(fields[c])
		if val == "?" {
			row[c] = Missing
			continue
		}

		if m.ValueCount(c) > 0 {
			i, ok := m.strToEnum[c][val]
			if !ok {
				return nil, errors.Errorf("unrecognized enumeration value %q, attr %d", val, c)
			}

			row[c] = float64(i)
			continue
		}

		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q, attr %d", val, c)
		}
		row[c] = f
	}

	return row, nil
}

// SaveARFF writes m to the given file, creating or truncating it.
func (m *Matrix) SaveARFF(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Error creating file %s", path)
	}

	if err = m.WriteARFF(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save ARFF to %s", path)
	}

	return f.Close()
}

// WriteARFF writes m in ARFF format. Continuous values are written with 10 significant digits,
// nominal values as their label and Missing elements as '?'. Columns with an empty name are
// written as "x".
func (m *Matrix) WriteARFF(w io.Writer) error {
	m.copyCheck()

	bw := bufio.NewWriter(w)
	bw.WriteString("@RELATION " + m.relation + "\n")
	for c, name := range m.attrNames {
		if name == "" {
			name = "x"
		} else if strings.ContainsAny(name, " \t'\"") {
			name = quoteName(name)
		}

		bw.WriteString("@ATTRIBUTE " + name)
		if m.ValueCount(c) == 0 {
			bw.WriteString(" REAL\n")
		} else {
			bw.WriteString(" {" + strings.Join(m.enumToStr[c], ",") + "}\n")
		}
	}

	bw.WriteString("@DATA\n")
	for r, row := range m.data {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(',')
			}

			if v == Missing {
				bw.WriteByte('?')
			} else if vals := m.ValueCount(c); vals == 0 {
				bw.WriteString(strconv.FormatFloat(v, 'g', 10, 64))
			} else {
				i := int(v)
				if i < 0 || i >= vals {
					return errors.Wrapf(ErrOutOfRange, "value %v at row %d, column %d", v, r, c)
				}
				bw.WriteString(m.enumToStr[c][i])
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
