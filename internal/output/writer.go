package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shootseeder/internal/models"
	"shootseeder/internal/seed"

	"go.mongodb.org/mongo-driver/bson"
)

type Format string

const (
	FormatJSON Format = "json"
	// FormatExtJSON is relaxed MongoDB Extended JSON, one document per line.
	FormatExtJSON Format = "extjson"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatExtJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q. Use 'json' or 'extjson'", ErrUnknownFormat, s)
}

// Extension is the file extension WriteFile uses for f.
func (f Format) Extension() string {
	if f == FormatExtJSON {
		return "jsonl"
	}
	return "json"
}

type Writer struct {
	format Format
	now    func() time.Time
}

func NewWriter(format Format) *Writer {
	return &Writer{format: format, now: time.Now}
}

// Write renders the whole result before writing, so a rendering failure
// leaves w untouched.
func (w *Writer) Write(dst io.Writer, result *seed.Result) error {
	data, err := w.Render(result)
	if err != nil {
		return err
	}
	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile writes result to a timestamped file under outputDir and
// returns its path. The file is removed if writing fails.
func (w *Writer) WriteFile(outputDir string, result *seed.Result) (string, error) {
	data, err := w.Render(result)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := w.now().Format("20060102_150405")
	filename := fmt.Sprintf("seed_%s_%s.%s", result.Layout, timestamp, w.format.Extension())
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	return path, nil
}

func (w *Writer) Render(result *seed.Result) ([]byte, error) {
	switch w.format {
	case FormatJSON:
		return renderJSON(result)
	case FormatExtJSON:
		return renderExtJSON(result)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, w.format)
}

// Summary is the diagnostic line the shoots layout reports on stderr.
func Summary(result *seed.Result) (string, bool) {
	if result.Layout != seed.LayoutShoots {
		return "", false
	}
	return fmt.Sprintf("\n\nTotal shoots: %d", len(result.Shoots)), true
}

func renderJSON(result *seed.Result) ([]byte, error) {
	var doc any
	indent := "  "

	switch result.Layout {
	case seed.LayoutClients:
		doc = seederClients(result.Clients)
		indent = "    "
	case seed.LayoutHistory:
		clients := result.Clients
		if clients == nil {
			clients = []models.Client{}
		}
		doc = historyDocument{Clients: clients, Shoots: historyShoots(result.Shoots)}
	case seed.LayoutShoots:
		doc = scheduleShoots(result.Shoots)
	default:
		return nil, fmt.Errorf("%w: %q", seed.ErrUnknownLayout, result.Layout)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func renderExtJSON(result *seed.Result) ([]byte, error) {
	var docs []bson.D

	switch result.Layout {
	case seed.LayoutClients:
		for _, c := range seederClients(result.Clients) {
			docs = append(docs, envelope("clients", c))
		}
	case seed.LayoutHistory:
		for _, c := range result.Clients {
			docs = append(docs, envelope("clients", c))
		}
		for _, s := range historyShoots(result.Shoots) {
			docs = append(docs, envelope("shoots", s))
		}
	case seed.LayoutShoots:
		for _, s := range scheduleShoots(result.Shoots) {
			docs = append(docs, envelope("shoots", s))
		}
	default:
		return nil, fmt.Errorf("%w: %q", seed.ErrUnknownLayout, result.Layout)
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		data, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal to extended JSON: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func envelope(collection string, document any) bson.D {
	return bson.D{
		{Key: "collection", Value: collection},
		{Key: "document", Value: document},
	}
}
