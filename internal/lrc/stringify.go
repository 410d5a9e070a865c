package lrc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidTerminator reports a line terminator other than \n, \r\n or \r.
	ErrInvalidTerminator = errors.New("lrc: invalid line terminator")
	// ErrInvalidPadding reports a SpaceStart or SpaceEnd above MaxPadding.
	ErrInvalidPadding = errors.New("lrc: invalid padding")
	// ErrInvalidInfo reports a metadata entry that would not parse back unchanged.
	ErrInvalidInfo = errors.New("lrc: invalid info entry")
)

// MaxPadding is the largest accepted SpaceStart or SpaceEnd.
const MaxPadding = 64

var infoKey = regexp.MustCompile(`^\w{1,6}$`)

// DefaultLineTerminator is used when StringifyOptions leaves it empty.
const DefaultLineTerminator = "\r\n"

// StringifyOptions controls rendering. A negative SpaceStart or SpaceEnd
// leaves that side of the lyric text untouched.
type StringifyOptions struct {
	SpaceStart     int
	SpaceEnd       int
	Precision      Precision
	LineTerminator string
}

// LineTerminatorFromName maps crlf, lf and cr to their terminators.
func LineTerminatorFromName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "crlf":
		return "\r\n", nil
	case "lf":
		return "\n", nil
	case "cr":
		return "\r", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTerminator, name)
	}
}

// PadText replaces the leading and trailing whitespace of text with exactly
// spaceStart and spaceEnd spaces. Counts above MaxPadding are capped.
func PadText(text string, spaceStart, spaceEnd int) string {
	spaceStart, spaceEnd = min(spaceStart, MaxPadding), min(spaceEnd, MaxPadding)
	if spaceStart >= 0 {
		text = strings.Repeat(" ", spaceStart) + strings.TrimLeftFunc(text, isWordSpace)
	}
	if spaceEnd >= 0 {
		text = strings.TrimRightFunc(text, isWordSpace) + strings.Repeat(" ", spaceEnd)
	}
	return text
}

// Stringify renders doc as LRC text. Info entries come first, one per line,
// followed by the lyric lines.
func Stringify(doc Document, opts StringifyOptions) (string, error) {
	eol := opts.LineTerminator
	switch eol {
	case "":
		eol = DefaultLineTerminator
	case "\n", "\r\n", "\r":
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTerminator, eol)
	}
	if !opts.Precision.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, int(opts.Precision))
	}
	if opts.SpaceStart > MaxPadding || opts.SpaceEnd > MaxPadding {
		return "", fmt.Errorf("%w: %d/%d exceeds %d", ErrInvalidPadding, opts.SpaceStart, opts.SpaceEnd, MaxPadding)
	}

	out := make([]string, 0, doc.Info.Len()+len(doc.Lines))
	for _, e := range doc.Info.entries {
		if err := validInfo(e); err != nil {
			return "", err
		}
		out = append(out, "["+e.Key+": "+e.Value+"]")
	}
	for n, line := range doc.Lines {
		rendered, err := renderLine(line, opts)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, rendered)
	}
	return strings.Join(out, eol), nil
}

func renderLine(line Line, opts StringifyOptions) (string, error) {
	text, err := renderWords(line.Words, opts.Precision)
	if err != nil {
		return "", err
	}
	seconds, ok := line.Time.Seconds()
	if !ok {
		return text, nil
	}
	tag, err := FormatTag(seconds, opts.Precision, true)
	if err != nil {
		return "", err
	}
	return tag + PadText(text, opts.SpaceStart, opts.SpaceEnd), nil
}

// renderWords joins word texts, restoring an inline tag before every word
// that carries its own timestamp.
func renderWords(words []Word, p Precision) (string, error) {
	var b strings.Builder
	for _, w := range words {
		if seconds, ok := w.Time.Seconds(); ok {
			tag, err := FormatTime(seconds, p)
			if err != nil {
				return "", err
			}
			b.WriteByte('<')
			b.WriteString(tag)
			b.WriteByte('>')
		}
		b.WriteString(w.Text)
	}
	return b.String(), nil
}

// validInfo rejects entries whose rendered line would parse back as
// something else.
func validInfo(e InfoEntry) error {
	switch {
	case !infoKey.MatchString(e.Key):
		return fmt.Errorf("%w: key %q", ErrInvalidInfo, e.Key)
	case strings.TrimSpace(e.Value) == "":
		return fmt.Errorf("%w: %s has an empty value", ErrInvalidInfo, e.Key)
	case strings.TrimSpace(e.Value) != e.Value:
		return fmt.Errorf("%w: %s value %q has surrounding whitespace", ErrInvalidInfo, e.Key, e.Value)
	case strings.ContainsAny(e.Value, "]\r\n"):
		return fmt.Errorf("%w: %s value %q contains ] or a line break", ErrInvalidInfo, e.Key, e.Value)
	}
	return nil
}
