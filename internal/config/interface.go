package config

import "context"

// Loader reads a settings file into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, path string) (*Settings, error)
}
