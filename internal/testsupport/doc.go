// Package testsupport holds helpers shared by package tests: isolated
// configurations rooted in t.TempDir and a drafts store that closes itself
// on cleanup.
package testsupport
