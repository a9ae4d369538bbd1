// Package walker enumerates candidate documents beneath a directory root.
//
// Walks are lazy and restartable: each call to Documents returns a fresh
// sequence that descends the tree again. Entries that cannot be read
// (permission errors, broken symlinks) are skipped so a single bad entry
// never aborts the walk.
package walker
