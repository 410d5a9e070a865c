// Package drafts persists LRC working copies in SQLite.
//
// A draft is the raw text the user is editing together with a few summary
// columns (title, artist, line counts, duration) derived by parsing it, so
// listings never need to re-parse every row. The stored text is kept
// verbatim; Document re-parses it on demand.
//
// Schema changes are added as numbered files under migrations/ and applied
// in order when the store opens.
package drafts
