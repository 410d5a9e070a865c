// Package prefs stores the user's editing preferences: interface language,
// lyric padding, timestamp precision, and a few display toggles.
//
// Preferences are persisted as a small JSON document. A missing or corrupt
// file yields defaults, and a stored document is merged key by key so one bad
// value never discards the rest. Writes hold a file lock and replace the file
// atomically.
package prefs
