// Package platform hides the permission differences between Unix and
// Windows when writing generated files.
package platform
