package lrc

import (
	"math"
	"strings"
)

// Timestamp is an optional position in seconds. The zero value means the
// owner has no timestamp of its own.
type Timestamp struct {
	seconds float64
	valid   bool
}

// At returns a defined timestamp.
func At(seconds float64) Timestamp {
	return Timestamp{seconds: seconds, valid: true}
}

// Seconds reports the value and whether it is defined.
func (t Timestamp) Seconds() (float64, bool) {
	return t.seconds, t.valid
}

// Valid reports whether the timestamp is defined.
func (t Timestamp) Valid() bool {
	return t.valid
}

// Word is one unit of lyric text. Text holds the literal substring including
// any whitespace that followed it in the source line.
type Word struct {
	Time Timestamp
	Text string
}

// Line is one lyric line. A line without a timestamp is literal text.
type Line struct {
	Time  Timestamp
	Words []Word
}

// Text concatenates the word texts of the line.
func (l Line) Text() string {
	switch len(l.Words) {
	case 0:
		return ""
	case 1:
		return l.Words[0].Text
	}
	var b strings.Builder
	for _, w := range l.Words {
		b.WriteString(w.Text)
	}
	return b.String()
}

// InfoEntry is a single metadata pair.
type InfoEntry struct {
	Key   string
	Value string
}

// Info is an insertion-ordered metadata mapping with unique keys.
type Info struct {
	entries []InfoEntry
	index   map[string]int
}

// NewInfo builds an Info from entries. A repeated key replaces the earlier
// value but keeps the position of its first occurrence.
func NewInfo(entries ...InfoEntry) Info {
	var info Info
	for _, e := range entries {
		info.set(e.Key, e.Value)
	}
	return info
}

func (i *Info) set(key, value string) {
	if pos, ok := i.index[key]; ok {
		i.entries[pos].Value = value
		return
	}
	if i.index == nil {
		i.index = make(map[string]int)
	}
	i.index[key] = len(i.entries)
	i.entries = append(i.entries, InfoEntry{Key: key, Value: value})
}

// Get returns the value stored for key.
func (i Info) Get(key string) (string, bool) {
	pos, ok := i.index[key]
	if !ok {
		return "", false
	}
	return i.entries[pos].Value, true
}

// Len returns the number of entries.
func (i Info) Len() int {
	return len(i.entries)
}

// Keys returns the keys in insertion order.
func (i Info) Keys() []string {
	keys := make([]string, len(i.entries))
	for n, e := range i.entries {
		keys[n] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (i Info) Entries() []InfoEntry {
	out := make([]InfoEntry, len(i.entries))
	copy(out, i.entries)
	return out
}

// Document is the parsed form of an LRC file.
type Document struct {
	Info  Info
	Lines []Line
}

// NewDocument copies info and lines into a new Document so later changes to
// the caller's slices do not leak into it.
func NewDocument(info Info, lines []Line) Document {
	doc := Document{Info: NewInfo(info.entries...)}
	if len(lines) == 0 {
		return doc
	}
	doc.Lines = make([]Line, len(lines))
	for n, line := range lines {
		words := make([]Word, len(line.Words))
		copy(words, line.Words)
		doc.Lines[n] = Line{Time: line.Time, Words: words}
	}
	return doc
}

// Timed returns the number of lines carrying a timestamp.
func (d Document) Timed() int {
	count := 0
	for _, line := range d.Lines {
		if line.Time.Valid() {
			count++
		}
	}
	return count
}

// Duration returns the largest line timestamp, or 0 when no line is timed.
func (d Document) Duration() float64 {
	last := 0.0
	for _, line := range d.Lines {
		if sec, ok := line.Time.Seconds(); ok {
			last = math.Max(last, sec)
		}
	}
	return last
}

// Title returns the ti metadata value.
func (d Document) Title() string {
	v, _ := d.Info.Get("ti")
	return v
}

// Artist returns the ar metadata value.
func (d Document) Artist() string {
	v, _ := d.Info.Get("ar")
	return v
}
