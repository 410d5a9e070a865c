// Package lrc parses and renders enhanced LRC lyric files.
//
// Parse turns raw text into a Document: an ordered info mapping taken from
// `[key:value]` lines and a timeline of lyric lines, each split into words.
// Words may carry their own timestamps when the line uses inline karaoke tags
// such as `<00:12.34>`. Stringify renders a Document back to text with a
// configurable fractional precision, space padding, and line terminator.
//
// Parsing is total: any line that does not match a recognised structure is
// kept as literal text. The only errors come from rendering values that
// cannot be represented, such as negative timestamps.
package lrc
