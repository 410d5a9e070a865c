// Package main hosts the lrcmaker CLI entrypoint and command graph.
//
// Commands parse, reformat and inspect LRC lyric files, manage the stored
// editor preferences, and keep named drafts in the local database. This
// package only resolves configuration, opens stores and renders output; the
// codec and persistence live under internal/.
package main
