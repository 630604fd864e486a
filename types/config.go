package types

import (
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rulego/pinotsql/logger"
)

// DefaultPercentileAggregationFunction T-Digest 近似百分位聚合，比精确 PERCENTILE 快得多
const DefaultPercentileAggregationFunction = "PERCENTILETDIGEST"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config 转换器配置
type Config struct {
	// PercentileAggregationFunction is the aggregate emitted for PERCENTILE;
	// the percentile value is appended to it, e.g. PERCENTILETDIGEST95.
	PercentileAggregationFunction string `json:"percentileAggregationFunction" yaml:"percentileAggregationFunction"`
	// ColumnMapping maps logical column names to physical engine columns.
	ColumnMapping map[string]string `json:"columnMapping" yaml:"columnMapping"`
	// StrictColumns rejects columns missing from ColumnMapping.
	StrictColumns bool `json:"strictColumns" yaml:"strictColumns"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR, OFF. Empty keeps the current level.
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		PercentileAggregationFunction: DefaultPercentileAggregationFunction,
	}
}

// PercentileFunction returns the configured percentile aggregate, falling back to the default.
func (c Config) PercentileFunction() string {
	if c.PercentileAggregationFunction == "" {
		return DefaultPercentileAggregationFunction
	}
	return c.PercentileAggregationFunction
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.PercentileAggregationFunction != "" && !identifierPattern.MatchString(c.PercentileAggregationFunction) {
		return errors.Errorf("invalid percentile aggregation function %q", c.PercentileAggregationFunction)
	}
	for logical, physical := range c.ColumnMapping {
		if physical == "" {
			return errors.Errorf("column %q is mapped to an empty name", logical)
		}
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrap(err, "invalid log level")
		}
	}
	return nil
}

// LoadConfig decodes a YAML document on top of the defaults. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	return LoadConfig(f)
}
