package lrc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Precision is the number of fractional second digits used when rendering.
type Precision int

const (
	PrecisionSeconds Precision = iota
	PrecisionTenths
	PrecisionHundredths
	PrecisionMillis
)

var (
	// ErrInvalidTime reports a timestamp that cannot be rendered.
	ErrInvalidTime = errors.New("lrc: invalid time")
	// ErrInvalidPrecision reports a precision outside 0-3.
	ErrInvalidPrecision = errors.New("lrc: invalid precision")
)

// Valid reports whether p is one of the supported levels.
func (p Precision) Valid() bool {
	return p >= PrecisionSeconds && p <= PrecisionMillis
}

// ParsePrecision converts "0" through "3" into a Precision.
func ParsePrecision(value string) (Precision, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || !Precision(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, value)
	}
	return Precision(n), nil
}

// secondsFormatter renders the seconds field for one precision level.
type secondsFormatter struct {
	scale  int64
	layout string
}

func newSecondsFormatter(p Precision) *secondsFormatter {
	f := &secondsFormatter{scale: 1, layout: "%02d"}
	if p > PrecisionSeconds {
		for range int(p) {
			f.scale *= 10
		}
		f.layout = "%02d.%0" + strconv.Itoa(int(p)) + "d"
	}
	return f
}

func (f *secondsFormatter) format(ticks int64) string {
	if f.scale == 1 {
		return fmt.Sprintf(f.layout, ticks)
	}
	return fmt.Sprintf(f.layout, ticks/f.scale, ticks%f.scale)
}

// formatters holds one lazily built formatter per precision level.
var formatters = [...]func() *secondsFormatter{
	sync.OnceValue(func() *secondsFormatter { return newSecondsFormatter(PrecisionSeconds) }),
	sync.OnceValue(func() *secondsFormatter { return newSecondsFormatter(PrecisionTenths) }),
	sync.OnceValue(func() *secondsFormatter { return newSecondsFormatter(PrecisionHundredths) }),
	sync.OnceValue(func() *secondsFormatter { return newSecondsFormatter(PrecisionMillis) }),
}

func formatterFor(p Precision) (*secondsFormatter, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(p))
	}
	return formatters[p](), nil
}

// FormatTime renders seconds as mm:ss with p fractional digits. The value is
// rounded to the precision before minutes are split off, so the seconds
// field always stays below 60.
func FormatTime(seconds float64, p Precision) (string, error) {
	f, err := formatterFor(p)
	if err != nil {
		return "", err
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, seconds)
	}
	ticks := math.Round(seconds * float64(f.scale))
	if ticks >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v out of range", ErrInvalidTime, seconds)
	}
	total := int64(ticks)
	perMinute := 60 * f.scale
	return fmt.Sprintf("%02d:%s", total/perMinute, f.format(total%perMinute)), nil
}

// FormatTag renders seconds as a line tag, wrapped in brackets when requested.
func FormatTag(seconds float64, p Precision, brackets bool) (string, error) {
	s, err := FormatTime(seconds, p)
	if err != nil {
		return "", err
	}
	if brackets {
		return "[" + s + "]", nil
	}
	return s, nil
}

// decodeTime converts the minute and second captures of a time tag. The
// seconds token may use either ':' or '.' before its fractional digits.
func decodeTime(minutes, seconds string) (float64, error) {
	mm, err := strconv.ParseFloat(minutes, 64)
	if err != nil {
		return 0, fmt.Errorf("minutes %q: %w", minutes, err)
	}
	ss, err := strconv.ParseFloat(strings.Replace(seconds, ":", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("seconds %q: %w", seconds, err)
	}
	return mm*60 + ss, nil
}
