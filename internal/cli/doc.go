// Package cli defines the Cobra command tree for create-vite-react. The root
// command scaffolds a project; version and config are the only subcommands.
// Commands only gather input and format output: naming rules live in
// internal/project and file work in internal/scaffold.
package cli
