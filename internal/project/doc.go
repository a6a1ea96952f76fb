// Package project turns raw user input into the two names a new project
// needs: the directory it is written to and the package name recorded in its
// package.json. It also answers whether a target directory may be written to
// without asking the user first.
//
// Process-wide state (working directory, arguments) is captured once in a
// Context and passed in explicitly so callers can inject paths in tests.
package project
