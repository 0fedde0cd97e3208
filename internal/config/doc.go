// Package config defines the format-agnostic settings model and the Loader
// interface that concrete file formats implement.
package config
