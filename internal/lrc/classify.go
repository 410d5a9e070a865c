package lrc

import (
	"regexp"
	"strings"
)

type lineKind int

const (
	linePlain lineKind = iota
	lineTimed
	lineMetadata
	lineBracketed
)

var (
	lineTimeTag = regexp.MustCompile(`^\[\s*(\d+):(\d{1,2}(?:[:.]\d+)?)\s*]`)
	infoTag     = regexp.MustCompile(`\[\s*(\w{1,6})\s*:(.*?)]`)
	lineBreaks  = regexp.MustCompile(`\r\n|\n|\r`)
)

// classification is the result of inspecting one physical line.
type classification struct {
	kind lineKind
	// minutes and seconds hold the raw captures of a timed line.
	minutes string
	seconds string
	// text is the lyric text: the remainder after the tag for timed lines,
	// the whole line for plain and bracketed ones.
	text  string
	key   string
	value string
}

func splitLines(text string) []string {
	return lineBreaks.Split(text, -1)
}

func classifyLine(line string) classification {
	if !strings.HasPrefix(line, "[") {
		return classification{kind: linePlain, text: line}
	}

	if m := lineTimeTag.FindStringSubmatchIndex(line); m != nil {
		return classification{
			kind:    lineTimed,
			minutes: line[m[2]:m[3]],
			seconds: line[m[4]:m[5]],
			text:    line[m[1]:],
		}
	}

	if m := infoTag.FindStringSubmatch(line); m != nil {
		return classification{
			kind:  lineMetadata,
			key:   m[1],
			value: strings.TrimSpace(m[2]),
		}
	}

	return classification{kind: lineBracketed, text: line}
}
