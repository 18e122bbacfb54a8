package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/notesbridge/pkg/core"
	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a batch of notes in one format.
type Serializer interface {
	// Parse reads from r and returns the entries it contains.
	Parse(r io.Reader) ([]core.PlainTextEntry, error)
	// Serialize converts the entries to bytes.
	Serialize(entries []core.PlainTextEntry) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": &JSONSerializer{},
		".yaml": &YAMLSerializer{},
		".yml":  &YAMLSerializer{},
		".csv":  &CSVSerializer{},
		".md":   &MarkdownSerializer{},
	}
}

// ForFormat returns the serializer for a format name or extension
// ("json", ".json", "md", ...).
func ForFormat(format string) (Serializer, error) {
	ext := strings.ToLower(format)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	s, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, format)
	}
	return s, nil
}

// --- JSON Serializer ---

// JSONSerializer writes the same array shape the host enumeration returns.
type JSONSerializer struct{}

func (s *JSONSerializer) Parse(r io.Reader) ([]core.PlainTextEntry, error) {
	var entries []core.PlainTextEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return entries, nil
}

func (s *JSONSerializer) Serialize(entries []core.PlainTextEntry) ([]byte, error) {
	if entries == nil {
		entries = []core.PlainTextEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// --- YAML Serializer ---

type YAMLSerializer struct{}

func (s *YAMLSerializer) Parse(r io.Reader) ([]core.PlainTextEntry, error) {
	var entries []core.PlainTextEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return []core.PlainTextEntry{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return entries, nil
}

func (s *YAMLSerializer) Serialize(entries []core.PlainTextEntry) ([]byte, error) {
	if entries == nil {
		entries = []core.PlainTextEntry{}
	}
	return yaml.Marshal(entries)
}

// --- CSV Serializer ---

// CSVSerializer writes one row per note with an "id,plaintext" header.
// encoding/csv folds \r\n inside quoted fields to \n on read, so a CSV
// export does not round-trip carriage returns. Use json or yaml for that.
type CSVSerializer struct{}

func (s *CSVSerializer) Parse(r io.Reader) ([]core.PlainTextEntry, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(headers) != 2 || !strings.EqualFold(headers[0], "id") || !strings.EqualFold(headers[1], "plaintext") {
		return nil, fmt.Errorf("unexpected csv header: %v", headers)
	}

	entries := []core.PlainTextEntry{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		entries = append(entries, core.PlainTextEntry{ID: row[0], PlainText: row[1]})
	}
	return entries, nil
}

func (s *CSVSerializer) Serialize(entries []core.PlainTextEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "plaintext"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.ID, e.PlainText}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// --- Markdown Serializer ---

// MarkdownSerializer writes each note as a frontmatter block followed by
// its text. The frontmatter records the text length so that notes whose
// text contains "---" still parse back.
type MarkdownSerializer struct{}

type markdownFrontmatter struct {
	ID    string `yaml:"id"`
	Bytes int    `yaml:"bytes"`
}

const frontmatterDelimiter = "---\n"

func (s *MarkdownSerializer) Serialize(entries []core.PlainTextEntry) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(frontmatterDelimiter)
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(markdownFrontmatter{ID: e.ID, Bytes: len(e.PlainText)}); err != nil {
			return nil, err
		}
		encoder.Close()
		buf.WriteString(frontmatterDelimiter)
		buf.WriteString(e.PlainText)
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}

func (s *MarkdownSerializer) Parse(r io.Reader) ([]core.PlainTextEntry, error) {
	br := bufio.NewReader(r)
	entries := []core.PlainTextEntry{}

	for {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read markdown: %w", err)
		}
		if line == "\n" {
			continue
		}
		if line != frontmatterDelimiter {
			return nil, fmt.Errorf("expected frontmatter delimiter, got %q", strings.TrimSpace(line))
		}

		var header bytes.Buffer
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return nil, errors.New("frontmatter started but no closing delimiter found")
			}
			if line == frontmatterDelimiter {
				break
			}
			header.WriteString(line)
		}

		var fm markdownFrontmatter
		if err := yaml.Unmarshal(header.Bytes(), &fm); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}

		text := make([]byte, fm.Bytes)
		if _, err := io.ReadFull(br, text); err != nil {
			return nil, fmt.Errorf("note %s: truncated text: %w", fm.ID, err)
		}
		entries = append(entries, core.PlainTextEntry{ID: fm.ID, PlainText: string(text)})
	}
}
