// Package manifest rewrites and checks the package.json of a generated
// project. Patch replaces the name field while keeping every other key, in
// its original order, untouched. Validate checks the result against the
// embedded JSON Schema and the semver rules for the version field.
package manifest
