// Package scaffold materializes a project template into a target directory.
// It powers the root command: the target is prepared (created, or emptied
// when the user agreed to overwrite it), the template tree is copied with
// optional exclusion patterns, and the template's package.json is rewritten
// with the project's package name.
//
// Failures are not rolled back. A copy that stops halfway leaves the files
// written so far in place.
package scaffold
