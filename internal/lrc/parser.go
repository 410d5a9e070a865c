package lrc

import (
	"fmt"
	"io"
	"strings"
)

// ParseOptions controls whitespace trimming of lyric text.
type ParseOptions struct {
	TrimStart bool
	TrimEnd   bool
}

func (o ParseOptions) trim(text string) string {
	if o.TrimStart {
		text = strings.TrimLeftFunc(text, isWordSpace)
	}
	if o.TrimEnd {
		text = strings.TrimRightFunc(text, isWordSpace)
	}
	return text
}

// Parse converts LRC text into a Document. Metadata lines populate Info and
// every other line becomes a Line in source order.
func Parse(text string, opts ParseOptions) Document {
	var doc Document
	for _, raw := range splitLines(text) {
		c := classifyLine(raw)
		switch c.kind {
		case linePlain:
			doc.Lines = append(doc.Lines, Line{Words: []Word{{Text: opts.trim(c.text)}}})
		case lineTimed:
			seconds, err := decodeTime(c.minutes, c.seconds)
			if err != nil {
				doc.Lines = append(doc.Lines, Line{Words: parseWords(opts.trim(raw))})
				continue
			}
			doc.Lines = append(doc.Lines, Line{Time: At(seconds), Words: parseWords(opts.trim(c.text))})
		case lineMetadata:
			if c.value == "" {
				continue
			}
			doc.Info.set(c.key, c.value)
		case lineBracketed:
			doc.Lines = append(doc.Lines, Line{Words: parseWords(opts.trim(c.text))})
		}
	}
	return doc
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ParseOptions) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read lrc: %w", err)
	}
	return Parse(string(data), opts), nil
}
