package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridcarbon/internal/config"
	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// fileSchema is the on-disk shape of a settings file.
type fileSchema struct {
	BalancingAuthorities []string           `hcl:"balancing_authorities,optional"`
	EmissionFactors      map[string]float64 `hcl:"emission_factors,optional"`
	Workers              int                `hcl:"workers,optional"`
	EIA                  *eiaSchema         `hcl:"eia,block"`
}

type eiaSchema struct {
	BaseURL   string `hcl:"base_url,optional"`
	APIKeyEnv string `hcl:"api_key_env,optional"`
	Timeout   string `hcl:"timeout,optional"`
	PageSize  int    `hcl:"page_size,optional"`
}

// Loader implements config.Loader for HCL files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return l.decode(ctx, file)
}

// LoadBytes parses src as if it were read from filename.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return l.decode(ctx, file)
}

func (l *Loader) decode(ctx context.Context, file *hcl.File) (*config.Settings, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, diags
	}

	s := &config.Settings{
		Authorities:     raw.BalancingAuthorities,
		EmissionFactors: raw.EmissionFactors,
		Workers:         raw.Workers,
	}
	if s.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if raw.EIA != nil {
		s.EIA = config.EIASettings{
			BaseURL:   raw.EIA.BaseURL,
			APIKeyEnv: raw.EIA.APIKeyEnv,
			PageSize:  raw.EIA.PageSize,
		}
		if raw.EIA.Timeout != "" {
			d, err := time.ParseDuration(raw.EIA.Timeout)
			if err != nil {
				return nil, fmt.Errorf("eia.timeout: %w", err)
			}
			s.EIA.Timeout = d
		}
		if s.EIA.PageSize < 0 {
			return nil, fmt.Errorf("eia.page_size must not be negative, got %d", s.EIA.PageSize)
		}
	}

	ctxlog.FromContext(ctx).Debug("Settings decoded.",
		"authorities", len(s.Authorities),
		"factor_overrides", len(s.EmissionFactors),
	)
	return s, nil
}

// evalContext exposes a few string helpers so authority lists can be built
// from shared locals such as upper("ciso").
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}
