// internal/app/system/csvutil/writer.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MaxRows caps the number of data rows a single export may write.
const MaxRows = 20000

// ErrTooManyRows is returned once a Writer has written MaxRows data rows.
var ErrTooManyRows = fmt.Errorf("csvutil: export exceeds %d rows", MaxRows)

// Writer writes spreadsheet-safe CSV with CRLF line endings. Cells are
// passed through SafeCell. Comment lines may precede the header.
type Writer struct {
	w    io.Writer
	cw   *csv.Writer
	rows int
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &Writer{w: w, cw: cw}
}

// Comment writes a "# text" line. Whitespace runs in text collapse to a
// single space so the comment stays on one line.
func (w *Writer) Comment(text string) error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.w, "# %s\r\n", strings.Join(strings.Fields(text), " "))
	return err
}

// Header writes the column row. It does not count toward MaxRows.
func (w *Writer) Header(cols []string) error {
	return w.cw.Write(cols)
}

// Write writes one data row.
func (w *Writer) Write(record []string) error {
	if w.rows >= MaxRows {
		return ErrTooManyRows
	}
	safe := make([]string, len(record))
	for i, c := range record {
		safe[i] = SafeCell(c)
	}
	if err := w.cw.Write(safe); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Rows reports how many data rows have been written.
func (w *Writer) Rows() int { return w.rows }

// Flush writes buffered data and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// SafeCell neutralizes values a spreadsheet would evaluate as a formula by
// prefixing them with a single quote. Signed numbers such as "-10" and
// "+5.2" are left alone.
func SafeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '@', '\t', '\r':
		return "'" + s
	case '+', '-':
		if isNumber(s[1:]) {
			return s
		}
		return "'" + s
	}
	return s
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
