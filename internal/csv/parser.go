package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"shootseeder/internal/models"

	"github.com/jszwec/csvutil"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MissingColumnsError is returned when a strict read finds the header
// lacks columns the caller needs.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing CSV columns: %s", strings.Join(e.Columns, ", "))
}

// EncodingError reports the first line holding bytes that are not UTF-8.
type EncodingError struct {
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 on line %d", e.Line)
}

type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseRows reads the whole file. Any name in required that the header
// does not carry fails the read; other absent columns decode as "".
func (p *Parser) ParseRows(required ...string) ([]models.ShootRow, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return Decode(file, required...)
}

// Decode is ParseRows over an arbitrary reader.
func Decode(r io.Reader, required ...string) ([]models.ShootRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, &EncodingError{Line: invalidLine(data)}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	decoder, err := csvutil.NewDecoder(&headerWidthReader{r: reader})
	if errors.Is(err, io.EOF) {
		// No header at all: nothing to read and nothing to check.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	if missing := missingColumns(decoder.Header(), required); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []models.ShootRow
	if err := decoder.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	return rows, nil
}

// headerWidthReader drops cells past the header width, so trailing commas
// in spreadsheet exports still decode. Short rows pass through unchanged
// and csvutil rejects them.
type headerWidthReader struct {
	r     *csv.Reader
	width int
}

func (h *headerWidthReader) Read() ([]string, error) {
	record, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if h.width == 0 {
		h.width = len(record)
		return record, nil
	}
	if len(record) > h.width {
		record = record[:h.width]
	}
	return record, nil
}

func missingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func invalidLine(data []byte) int {
	line := 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return line
		}
		if r == '\n' {
			line++
		}
		data = data[size:]
	}
	return line
}
