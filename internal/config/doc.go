// Package config manages user-level settings stored at
// ~/.create-vite-react/config.yaml. Every key can also be set through an
// environment variable with the CREATE_VITE_REACT_ prefix, e.g.
// CREATE_VITE_REACT_TEMPLATE=ts.
package config
