package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Client Email,Client,Client Company,Base Quote,Tax,Shoot Notes
A@x.com,Ann,Acme,"$1,234.50",7.5%,"front door, code 12"
b@y.com,Bob,,$80,,
`

func TestParseRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	rows, err := NewParser(path).ParseRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A@x.com", rows[0].ClientEmail)
	assert.Equal(t, "Acme", rows[0].ClientCompany)
	assert.Equal(t, "$1,234.50", rows[0].BaseQuote)
	assert.Equal(t, "7.5%", rows[0].Tax)
	assert.Equal(t, "front door, code 12", rows[0].ShootNotes)
	// Columns absent from the header read as empty.
	assert.Equal(t, "", rows[0].Photographer)
	assert.Equal(t, "", rows[1].ClientCompany)
}

func TestParseRowsMissingFile(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "nope.csv")).ParseRows()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeRequiredColumns(t *testing.T) {
	_, err := Decode(strings.NewReader(sampleCSV), "Client Email", "Address2", "Zip")
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Address2", "Zip"}, missing.Columns)
}

func TestDecodeStripsBOM(t *testing.T) {
	rows, err := Decode(strings.NewReader("\ufeff"+sampleCSV), "Client Email")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A@x.com", rows[0].ClientEmail)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	data := "Client Email\nok@x.com\nbad\xff@x.com\n"
	_, err := Decode(strings.NewReader(data))

	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 3, encErr.Line)
}

func TestDecodeEmptyInput(t *testing.T) {
	rows, err := Decode(strings.NewReader(""), "Client Email")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = Decode(strings.NewReader("Client Email,Client\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeTruncatesLongRows(t *testing.T) {
	rows, err := Decode(strings.NewReader("Client Email,Client Company\nA@x.com,Acme,\nb@x.com,Beta\nc@x.com,Cee,extra,cells\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme", rows[0].ClientCompany)
	assert.Equal(t, "b@x.com", rows[1].ClientEmail)
	assert.Equal(t, "Cee", rows[2].ClientCompany)
}

func TestDecodeRejectsShortRows(t *testing.T) {
	_, err := Decode(strings.NewReader("Client Email,Client Company,Zip\nA@x.com,Acme\n"))
	assert.Error(t, err)
}
