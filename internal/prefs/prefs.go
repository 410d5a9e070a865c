package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/lkho/lrc-maker/internal/lrc"
)

// ErrUnknownKey reports a preference name that does not exist.
var ErrUnknownKey = errors.New("unknown preference")

// Preference keys as they appear in the stored document.
const (
	KeyLang         = "lang"
	KeySpaceStart   = "spaceStart"
	KeySpaceEnd     = "spaceEnd"
	KeyFixed        = "fixed"
	KeyBuiltInAudio = "builtInAudio"
	KeyScreenButton = "screenButton"
	KeyThemeColor   = "themeColor"
)

const fallbackLang = "en-US"

// ThemeColors is the named palette accepted for themeColor.
var ThemeColors = map[string]string{
	"orange": "#ff691f",
	"yellow": "#fab81e",
	"lime":   "#7fdbb6",
	"green":  "#19cf86",
	"blue":   "#91d2fa",
	"navy":   "#1b95e0",
	"grey":   "#abb8c2",
	"red":    "#e81c4f",
	"pink":   "#f58ea8",
	"purple": "#981ceb",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Prefs holds every user preference.
type Prefs struct {
	Lang         string        `json:"lang"`
	SpaceStart   int           `json:"spaceStart"`
	SpaceEnd     int           `json:"spaceEnd"`
	Precision    lrc.Precision `json:"fixed"`
	BuiltInAudio bool          `json:"builtInAudio"`
	ScreenButton bool          `json:"screenButton"`
	ThemeColor   string        `json:"themeColor"`
}

// Defaults returns the preferences used when nothing is stored. The language
// follows the process locale.
func Defaults() Prefs {
	return Prefs{
		Lang:       localeLang(),
		SpaceStart: 1,
		SpaceEnd:   0,
		Precision:  lrc.PrecisionMillis,
		ThemeColor: ThemeColors["pink"],
	}
}

// StringifyOptions converts the padding and precision preferences into
// render options using eol as the line terminator.
func (p Prefs) StringifyOptions(eol string) lrc.StringifyOptions {
	return lrc.StringifyOptions{
		SpaceStart:     p.SpaceStart,
		SpaceEnd:       p.SpaceEnd,
		Precision:      p.Precision,
		LineTerminator: eol,
	}
}

// field binds one key to its decode, parse, and display logic.
type field struct {
	key    string
	decode func(*Prefs, json.RawMessage) error
	parse  func(*Prefs, string) error
	show   func(Prefs) string
}

var fields = []field{
	{
		key: KeyLang,
		decode: func(p *Prefs, raw json.RawMessage) error {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			return setLang(p, s)
		},
		parse: setLang,
		show:  func(p Prefs) string { return p.Lang },
	},
	intField(KeySpaceStart, -1, lrc.MaxPadding, func(p *Prefs) *int { return &p.SpaceStart }),
	intField(KeySpaceEnd, -1, lrc.MaxPadding, func(p *Prefs) *int { return &p.SpaceEnd }),
	{
		key: KeyFixed,
		decode: func(p *Prefs, raw json.RawMessage) error {
			var n int
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
			return setPrecision(p, strconv.Itoa(n))
		},
		parse: setPrecision,
		show:  func(p Prefs) string { return strconv.Itoa(int(p.Precision)) },
	},
	boolField(KeyBuiltInAudio, func(p *Prefs) *bool { return &p.BuiltInAudio }),
	boolField(KeyScreenButton, func(p *Prefs) *bool { return &p.ScreenButton }),
	{
		key: KeyThemeColor,
		decode: func(p *Prefs, raw json.RawMessage) error {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			return setThemeColor(p, s)
		},
		parse: setThemeColor,
		show:  func(p Prefs) string { return p.ThemeColor },
	},
}

// intField accepts integers in [lo, hi].
func intField(key string, lo, hi int, ref func(*Prefs) *int) field {
	set := func(p *Prefs, n int) error {
		if n < lo || n > hi {
			return fmt.Errorf("%s must be between %d and %d, got %d", key, lo, hi, n)
		}
		*ref(p) = n
		return nil
	}
	return field{
		key: key,
		decode: func(p *Prefs, raw json.RawMessage) error {
			var n int
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
			return set(p, n)
		},
		parse: func(p *Prefs, value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", key, err)
			}
			return set(p, n)
		},
		show: func(p Prefs) string { return strconv.Itoa(*ref(&p)) },
	}
}

func boolField(key string, ref func(*Prefs) *bool) field {
	return field{
		key: key,
		decode: func(p *Prefs, raw json.RawMessage) error {
			return json.Unmarshal(raw, ref(p))
		},
		parse: func(p *Prefs, value string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%s must be true or false: %w", key, err)
			}
			*ref(p) = b
			return nil
		},
		show: func(p Prefs) string { return strconv.FormatBool(*ref(&p)) },
	}
}

func setLang(p *Prefs, value string) error {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("lang %q: %w", value, err)
	}
	p.Lang = tag.String()
	return nil
}

func setPrecision(p *Prefs, value string) error {
	precision, err := lrc.ParsePrecision(value)
	if err != nil {
		return fmt.Errorf("fixed: %w", err)
	}
	p.Precision = precision
	return nil
}

func setThemeColor(p *Prefs, value string) error {
	value = strings.TrimSpace(value)
	if named, ok := ThemeColors[strings.ToLower(value)]; ok {
		p.ThemeColor = named
		return nil
	}
	if !hexColor.MatchString(value) {
		return fmt.Errorf("themeColor %q must be a palette name or #rrggbb", value)
	}
	p.ThemeColor = strings.ToLower(value)
	return nil
}

func lookup(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Keys lists the preference keys in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the display form of one preference.
func Get(p Prefs, key string) (string, error) {
	f, ok := lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f.show(p), nil
}

// Apply returns a copy of p with key set to value.
func Apply(p Prefs, key, value string) (Prefs, error) {
	f, ok := lookup(key)
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	next := p
	if err := f.parse(&next, value); err != nil {
		return p, err
	}
	return next, nil
}

// Decode restores preferences from stored text. It never fails: unreadable
// text yields defaults, and each recognised key that decodes cleanly
// replaces its default. Unknown keys are ignored.
func Decode(text string) Prefs {
	p := Defaults()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return p
	}
	for _, f := range fields {
		msg, ok := raw[f.key]
		if !ok {
			continue
		}
		candidate := p
		if err := f.decode(&candidate, msg); err != nil {
			continue
		}
		p = candidate
	}
	return p
}

// Encode renders preferences as stored text.
func Encode(p Prefs) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode prefs: %w", err)
	}
	return string(data) + "\n", nil
}

// localeLang maps the POSIX locale environment to a BCP 47 tag.
func localeLang() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		if value == "C" || value == "POSIX" || value == "" {
			return fallbackLang
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err != nil {
			return fallbackLang
		}
		return tag.String()
	}
	return fallbackLang
}
