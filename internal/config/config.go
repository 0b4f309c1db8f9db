// Package config defines the YAML run configuration for the technical CLI:
// which indicator variants to build and with which parameters.
package config

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/theAfricanQuant/capstone/internal/indicator"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Config is the root of the run configuration.
type Config struct {
	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators" jsonschema:"title=Indicators,description=Indicator variants to compute over the price series,required" validate:"required,min=1,dive"`
}

// IndicatorConfig selects one indicator variant. Omitted parameters fall
// back to the variant's documented default; parameters that do not apply
// to the selected variant are ignored.
type IndicatorConfig struct {
	Type           types.IndicatorType `yaml:"type" json:"type" jsonschema:"title=Type,description=Indicator variant,required,enum=williams_r,enum=ema_cross,enum=bollinger_bands,enum=cci,enum=stochastic_oscillator,enum=ichimoku,enum=rsi" validate:"required,oneof=williams_r ema_cross bollinger_bands cci stochastic_oscillator ichimoku rsi"`
	Window         int                 `yaml:"window,omitempty" json:"window,omitempty" jsonschema:"title=Window,description=Rolling window or smoothing span" validate:"omitempty,gt=0"`
	FastSpan       int                 `yaml:"fast_span,omitempty" json:"fastSpan,omitempty" jsonschema:"title=Fast span,description=Fast EMA smoothing span" validate:"omitempty,gt=0"`
	SlowSpan       int                 `yaml:"slow_span,omitempty" json:"slowSpan,omitempty" jsonschema:"title=Slow span,description=Slow EMA smoothing span" validate:"omitempty,gt=0"`
	NumSD          float64             `yaml:"numsd,omitempty" json:"numsd,omitempty" jsonschema:"title=Standard deviations,description=Bollinger band width in standard deviations" validate:"omitempty,gt=0"`
	StochWindow    int                 `yaml:"stoch_window,omitempty" json:"stochWindow,omitempty" jsonschema:"title=Stochastic smoothing,description=Smoothing period for %D" validate:"omitempty,gt=0"`
	TenkaSenWindow int                 `yaml:"tenka_sen_window,omitempty" json:"tenkaSenWindow,omitempty" jsonschema:"title=Tenka-sen window" validate:"omitempty,gt=0"`
	KijunSenWindow int                 `yaml:"kijun_sen_window,omitempty" json:"kijunSenWindow,omitempty" jsonschema:"title=Kijun-sen window" validate:"omitempty,gt=0"`
	SenkouWindow   int                 `yaml:"senkou_window,omitempty" json:"senkouWindow,omitempty" jsonschema:"title=Senkou window" validate:"omitempty,gt=0"`
}

// Parse unmarshals and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse YAML config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration selecting all seven variants with their
// default parameters.
func Default() *Config {
	return &Config{
		Indicators: []IndicatorConfig{
			{Type: types.IndicatorTypeWilliamsR},
			{Type: types.IndicatorTypeEMACross},
			{Type: types.IndicatorTypeBollingerBands},
			{Type: types.IndicatorTypeCCI},
			{Type: types.IndicatorTypeStochastic},
			{Type: types.IndicatorTypeIchimoku},
			{Type: types.IndicatorTypeRSI},
		},
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeConfigValidationError, "invalid config", err)
	}

	return nil
}

// Params converts the per-variant configuration into construction
// parameters for the indicator registry.
func (ic IndicatorConfig) Params() indicator.Params {
	return indicator.Params{
		Window:         ic.Window,
		FastSpan:       ic.FastSpan,
		SlowSpan:       ic.SlowSpan,
		NumSD:          ic.NumSD,
		StochWindow:    ic.StochWindow,
		TenkaSenWindow: ic.TenkaSenWindow,
		KijunSenWindow: ic.KijunSenWindow,
		SenkouWindow:   ic.SenkouWindow,
	}
}

// Schema returns the JSON schema of the configuration.
func Schema() ([]byte, error) {
	schema := jsonschema.Reflect(&Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to marshal config schema", err)
	}

	return data, nil
}
