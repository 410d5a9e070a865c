package lrc

import (
	"regexp"
	"strings"
	"unicode"
)

var inlineTimeTag = regexp.MustCompile(`<(\d+):(\d{1,2}(?:[:.]\d+)?)>`)

func isWordSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// parseWords splits one line of lyric text into words. Inline time tags, when
// present, start a timed word that runs until the next tag.
func parseWords(text string) []Word {
	if !strings.Contains(text, "<") {
		return splitWords(text)
	}

	matches := inlineTimeTag.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return splitWords(text)
	}

	words := splitWords(text[:matches[0][0]])
	for n, m := range matches {
		end := len(text)
		if n+1 < len(matches) {
			end = matches[n+1][0]
		}
		seconds, err := decodeTime(text[m[2]:m[3]], text[m[4]:m[5]])
		if err != nil {
			// The pattern only admits digits, so this keeps the tag as text.
			words = append(words, Word{Text: text[m[0]:end]})
			continue
		}
		words = append(words, Word{Time: At(seconds), Text: text[m[1]:end]})
	}
	return words
}

// splitWords breaks text at internal whitespace runs. Each run stays attached
// to the word before it, and runs at either end never split, so joining the
// result gives back text unchanged.
func splitWords(text string) []Word {
	if text == "" {
		return nil
	}

	var words []Word
	start := 0
	inSpace, seenWord := false, false
	for i, r := range text {
		space := isWordSpace(r)
		if !space {
			if inSpace && seenWord {
				words = append(words, Word{Text: text[start:i]})
				start = i
			}
			seenWord = true
		}
		inSpace = space
	}
	return append(words, Word{Text: text[start:]})
}
