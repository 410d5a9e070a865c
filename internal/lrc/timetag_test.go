package lrc

import (
	"errors"
	"math"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		p       Precision
		want    string
	}{
		{"zero", 0, PrecisionHundredths, "00:00.00"},
		{"one second", 1, PrecisionHundredths, "00:01.00"},
		{"whole seconds", 75.4, PrecisionSeconds, "01:15"},
		{"tenths", 61.5, PrecisionTenths, "01:01.5"},
		{"millis", 83.123, PrecisionMillis, "01:23.123"},
		{"minutes past 99", 6000, PrecisionSeconds, "100:00"},
		{"rounds into next minute", 59.9996, PrecisionMillis, "01:00.000"},
		{"rounds down", 12.3449, PrecisionHundredths, "00:12.34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTime(tt.seconds, tt.p)
			if err != nil {
				t.Fatalf("FormatTime returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FormatTime(%v, %d) = %q, want %q", tt.seconds, tt.p, got, tt.want)
			}
		})
	}
}

func TestFormatTimeRejectsUnrepresentableValues(t *testing.T) {
	for _, v := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		if _, err := FormatTime(v, PrecisionMillis); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("FormatTime(%v) error = %v, want ErrInvalidTime", v, err)
		}
	}
	if _, err := FormatTime(1, Precision(4)); !errors.Is(err, ErrInvalidPrecision) {
		t.Fatalf("expected ErrInvalidPrecision, got %v", err)
	}
}

func TestFormatTag(t *testing.T) {
	got, err := FormatTag(12.5, PrecisionTenths, true)
	if err != nil {
		t.Fatalf("FormatTag returned error: %v", err)
	}
	if got != "[00:12.5]" {
		t.Fatalf("unexpected tag %q", got)
	}
	got, err = FormatTag(12.5, PrecisionTenths, false)
	if err != nil {
		t.Fatalf("FormatTag returned error: %v", err)
	}
	if got != "00:12.5" {
		t.Fatalf("unexpected bare tag %q", got)
	}
}

func TestFormatterIsMemoizedPerPrecision(t *testing.T) {
	for p := PrecisionSeconds; p <= PrecisionMillis; p++ {
		first, err := formatterFor(p)
		if err != nil {
			t.Fatalf("formatterFor(%d): %v", p, err)
		}
		second, _ := formatterFor(p)
		if first != second {
			t.Fatalf("precision %d built two formatters", p)
		}
	}
	if _, err := formatterFor(-1); !errors.Is(err, ErrInvalidPrecision) {
		t.Fatalf("expected ErrInvalidPrecision, got %v", err)
	}
}

func TestDecodeTime(t *testing.T) {
	tests := []struct {
		minutes, seconds string
		want             float64
	}{
		{"00", "01", 1},
		{"01", "02.5", 62.5},
		{"00", "12:34", 12.34},
		{"99", "59.999", 99*60 + 59.999},
		{"1234", "5", 1234*60 + 5},
	}
	for _, tt := range tests {
		got, err := decodeTime(tt.minutes, tt.seconds)
		if err != nil {
			t.Fatalf("decodeTime(%q, %q): %v", tt.minutes, tt.seconds, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("decodeTime(%q, %q) = %v, want %v", tt.minutes, tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDecodeRoundTrip(t *testing.T) {
	for p := PrecisionSeconds; p <= PrecisionMillis; p++ {
		tolerance := math.Pow(10, -float64(p))
		for mm := 0; mm <= 120; mm += 7 {
			for _, ss := range []float64{0, 0.25, 9.5, 30.125, 59.4} {
				value := float64(mm*60) + ss
				encoded, err := FormatTime(value, p)
				if err != nil {
					t.Fatalf("FormatTime(%v, %d): %v", value, p, err)
				}
				c := classifyLine("[" + encoded + "]")
				if c.kind != lineTimed {
					t.Fatalf("encoded %q did not classify as timed", encoded)
				}
				decoded, err := decodeTime(c.minutes, c.seconds)
				if err != nil {
					t.Fatalf("decodeTime(%q): %v", encoded, err)
				}
				if math.Abs(decoded-value) > tolerance {
					t.Fatalf("round trip of %v at precision %d gave %v", value, p, decoded)
				}
			}
		}
	}
}

func TestParsePrecision(t *testing.T) {
	p, err := ParsePrecision(" 2 ")
	if err != nil || p != PrecisionHundredths {
		t.Fatalf("ParsePrecision = %d, %v", p, err)
	}
	for _, bad := range []string{"", "4", "-1", "two"} {
		if _, err := ParsePrecision(bad); !errors.Is(err, ErrInvalidPrecision) {
			t.Fatalf("ParsePrecision(%q) error = %v", bad, err)
		}
	}
}
