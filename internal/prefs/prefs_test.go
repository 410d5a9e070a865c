package prefs

import (
	"errors"
	"strings"
	"testing"

	"github.com/lkho/lrc-maker/internal/lrc"
)

func clearLocale(t *testing.T) {
	t.Helper()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDefaults(t *testing.T) {
	clearLocale(t)
	p := Defaults()
	want := Prefs{
		Lang:       "en-US",
		SpaceStart: 1,
		SpaceEnd:   0,
		Precision:  lrc.PrecisionMillis,
		ThemeColor: "#f58ea8",
	}
	if p != want {
		t.Fatalf("Defaults() = %+v, want %+v", p, want)
	}
}

func TestDefaultLangFollowsLocale(t *testing.T) {
	tests := map[string]string{
		"ja_JP.UTF-8":     "ja-JP",
		"zh_TW":           "zh-TW",
		"de_DE@euro":      "de-DE",
		"C":               "en-US",
		"POSIX":           "en-US",
		"not a locale!!!": "en-US",
	}
	for locale, want := range tests {
		clearLocale(t)
		t.Setenv("LANG", locale)
		if got := Defaults().Lang; got != want {
			t.Fatalf("LANG=%q gave %q, want %q", locale, got, want)
		}
	}

	clearLocale(t)
	t.Setenv("LANG", "fr_FR.UTF-8")
	t.Setenv("LC_ALL", "es_ES.UTF-8")
	if got := Defaults().Lang; got != "es-ES" {
		t.Fatalf("LC_ALL should win over LANG, got %q", got)
	}
}

func TestDecodeFallsBackToDefaults(t *testing.T) {
	clearLocale(t)
	for _, text := range []string{"", "not json", "[1,2]", "null"} {
		if got := Decode(text); got != Defaults() {
			t.Fatalf("Decode(%q) = %+v, want defaults", text, got)
		}
	}
}

func TestDecodeMergesFieldByField(t *testing.T) {
	clearLocale(t)
	text := `{
		"lang": "zh-hant-tw",
		"spaceStart": 0,
		"spaceEnd": "wide",
		"fixed": 9,
		"builtInAudio": true,
		"themeColor": "#19CF86",
		"unknown": 42
	}`
	got := Decode(text)
	want := Defaults()
	want.Lang = "zh-Hant-TW"
	want.SpaceStart = 0
	want.BuiltInAudio = true
	want.ThemeColor = "#19cf86"
	if got != want {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecodeRejectsOutOfRangePadding(t *testing.T) {
	clearLocale(t)
	got := Decode(`{"spaceStart": 9223372036854775807, "spaceEnd": -5}`)
	if got != Defaults() {
		t.Fatalf("Decode = %+v, want defaults", got)
	}

	got = Decode(`{"spaceStart": 64, "spaceEnd": -1}`)
	if got.SpaceStart != lrc.MaxPadding || got.SpaceEnd != -1 {
		t.Fatalf("in-range padding not restored: %+v", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	clearLocale(t)
	p := Prefs{
		Lang:         "ja-JP",
		SpaceStart:   -1,
		SpaceEnd:     2,
		Precision:    lrc.PrecisionHundredths,
		BuiltInAudio: true,
		ScreenButton: true,
		ThemeColor:   "#1b95e0",
	}
	text, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(text, `"fixed": 2`) {
		t.Fatalf("expected fixed key in %s", text)
	}
	if got := Decode(text); got != p {
		t.Fatalf("round trip = %+v, want %+v", got, p)
	}
}

func TestApply(t *testing.T) {
	clearLocale(t)
	base := Defaults()

	tests := []struct {
		key, value string
		check      func(Prefs) bool
	}{
		{KeySpaceStart, "-1", func(p Prefs) bool { return p.SpaceStart == -1 }},
		{KeySpaceEnd, " 2 ", func(p Prefs) bool { return p.SpaceEnd == 2 }},
		{KeyFixed, "1", func(p Prefs) bool { return p.Precision == lrc.PrecisionTenths }},
		{KeyScreenButton, "true", func(p Prefs) bool { return p.ScreenButton }},
		{KeyThemeColor, "Navy", func(p Prefs) bool { return p.ThemeColor == "#1b95e0" }},
		{KeyLang, "pt-br", func(p Prefs) bool { return p.Lang == "pt-BR" }},
	}
	for _, tt := range tests {
		got, err := Apply(base, tt.key, tt.value)
		if err != nil {
			t.Fatalf("Apply(%s=%q): %v", tt.key, tt.value, err)
		}
		if !tt.check(got) {
			t.Fatalf("Apply(%s=%q) = %+v", tt.key, tt.value, got)
		}
	}
	if base != Defaults() {
		t.Fatal("Apply must not modify its input")
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	base := Defaults()
	if _, err := Apply(base, "volume", "3"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if _, err := Apply(base, KeyFixed, "4"); !errors.Is(err, lrc.ErrInvalidPrecision) {
		t.Fatalf("expected ErrInvalidPrecision, got %v", err)
	}
	for key, value := range map[string]string{
		KeySpaceStart:   "one",
		KeyBuiltInAudio: "maybe",
		KeyThemeColor:   "#12345",
		KeyLang:         "!!",
	} {
		got, err := Apply(base, key, value)
		if err == nil {
			t.Fatalf("Apply(%s=%q) should fail", key, value)
		}
		if got != base {
			t.Fatalf("failed Apply changed prefs: %+v", got)
		}
	}
}

func TestApplyRejectsOutOfRangePadding(t *testing.T) {
	base := Defaults()
	for _, tt := range []struct{ key, value string }{
		{KeySpaceStart, "65"},
		{KeySpaceStart, "-2"},
		{KeySpaceEnd, "9223372036854775807"},
	} {
		got, err := Apply(base, tt.key, tt.value)
		if err == nil {
			t.Fatalf("Apply(%s=%q) should fail", tt.key, tt.value)
		}
		if got != base {
			t.Fatalf("failed Apply changed prefs: %+v", got)
		}
	}
}

func TestGetAndKeys(t *testing.T) {
	clearLocale(t)
	p := Defaults()
	keys := Keys()
	if len(keys) != 7 || keys[0] != KeyLang || keys[3] != KeyFixed {
		t.Fatalf("unexpected keys %v", keys)
	}
	for key, want := range map[string]string{
		KeyLang:         "en-US",
		KeySpaceStart:   "1",
		KeyFixed:        "3",
		KeyBuiltInAudio: "false",
		KeyThemeColor:   "#f58ea8",
	} {
		got, err := Get(p, key)
		if err != nil || got != want {
			t.Fatalf("Get(%s) = %q, %v; want %q", key, got, err, want)
		}
	}
	if _, err := Get(p, "nope"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestStringifyOptions(t *testing.T) {
	p := Prefs{SpaceStart: 2, SpaceEnd: -1, Precision: lrc.PrecisionTenths}
	opts := p.StringifyOptions("\n")
	want := lrc.StringifyOptions{SpaceStart: 2, SpaceEnd: -1, Precision: lrc.PrecisionTenths, LineTerminator: "\n"}
	if opts != want {
		t.Fatalf("StringifyOptions = %+v, want %+v", opts, want)
	}
}
