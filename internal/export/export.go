// Package export renders parsed lyrics as structured JSON or YAML for
// tooling that does not want to speak LRC.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lkho/lrc-maker/internal/lrc"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat reports an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want json or yaml)", ErrUnknownFormat, value)
	}
}

// Info is the metadata block. It encodes as a mapping whose keys keep
// document order in both formats.
type Info []lrc.InfoEntry

// MarshalJSON writes the entries as an object in order.
func (i Info) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for n, entry := range i {
		if n > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns an ordered mapping node.
func (i Info) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range i {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Value},
		)
	}
	return node, nil
}

// Word is one timed or untimed word.
type Word struct {
	Time *float64 `json:"time,omitempty" yaml:"time,omitempty"`
	Text string   `json:"text" yaml:"text"`
}

// Line is one lyric line. Tag carries the millisecond rendering of Time.
type Line struct {
	Time  *float64 `json:"time,omitempty" yaml:"time,omitempty"`
	Tag   string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Text  string   `json:"text" yaml:"text"`
	Words []Word   `json:"words" yaml:"words"`
}

// View is the exported form of a document.
type View struct {
	Info  Info   `json:"info" yaml:"info"`
	Lines []Line `json:"lines" yaml:"lines"`
}

// FromDocument builds a View from doc.
func FromDocument(doc lrc.Document) View {
	view := View{
		Info:  Info(doc.Info.Entries()),
		Lines: make([]Line, 0, len(doc.Lines)),
	}
	for _, line := range doc.Lines {
		out := Line{
			Time:  seconds(line.Time),
			Text:  line.Text(),
			Words: make([]Word, 0, len(line.Words)),
		}
		if out.Time != nil {
			if tag, err := lrc.FormatTime(*out.Time, lrc.PrecisionMillis); err == nil {
				out.Tag = tag
			}
		}
		for _, w := range line.Words {
			out.Words = append(out.Words, Word{Time: seconds(w.Time), Text: w.Text})
		}
		view.Lines = append(view.Lines, out)
	}
	return view
}

func seconds(ts lrc.Timestamp) *float64 {
	value, ok := ts.Seconds()
	if !ok {
		return nil
	}
	return &value
}

// Encode writes view to w in the requested format.
func Encode(w io.Writer, view View, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
