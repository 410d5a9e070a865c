// Package textutil builds filesystem-safe names for exported lyric files.
package textutil
