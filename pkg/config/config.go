// Package config loads the yaml run configuration: where the kline data
// comes from, which indicators to run, and where indicator state is
// persisted.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tastream/pkg/service"
)

// IndicatorType names a supported indicator in the config file.
type IndicatorType string

const (
	IndicatorTypeSMA    IndicatorType = "sma"
	IndicatorTypeEWMA   IndicatorType = "ewma"
	IndicatorTypeRMA    IndicatorType = "rma"
	IndicatorTypeStdDev IndicatorType = "stddev"
	IndicatorTypeROC    IndicatorType = "roc"
	IndicatorTypeRSI    IndicatorType = "rsi"
	IndicatorTypeATR    IndicatorType = "atr"
	IndicatorTypeSTOCH  IndicatorType = "stoch"
	IndicatorTypeMACD   IndicatorType = "macd"
	IndicatorTypeBOLL   IndicatorType = "boll"
	IndicatorTypeDMI    IndicatorType = "dmi"
)

var supportedIndicatorTypes = map[IndicatorType]struct{}{
	IndicatorTypeSMA:    {},
	IndicatorTypeEWMA:   {},
	IndicatorTypeRMA:    {},
	IndicatorTypeStdDev: {},
	IndicatorTypeROC:    {},
	IndicatorTypeRSI:    {},
	IndicatorTypeATR:    {},
	IndicatorTypeSTOCH:  {},
	IndicatorTypeMACD:   {},
	IndicatorTypeBOLL:   {},
	IndicatorTypeDMI:    {},
}

type IndicatorConfig struct {
	Type   IndicatorType `yaml:"type" json:"type"`
	Window int           `yaml:"window,omitempty" json:"window,omitempty"`

	// macd windows
	ShortWindow  int `yaml:"shortWindow,omitempty" json:"shortWindow,omitempty"`
	LongWindow   int `yaml:"longWindow,omitempty" json:"longWindow,omitempty"`
	SignalWindow int `yaml:"signalWindow,omitempty" json:"signalWindow,omitempty"`

	// stoch %D window, default 3
	DWindow int `yaml:"dWindow,omitempty" json:"dWindow,omitempty"`

	// bollinger band width, default 2
	BandWidth float64 `yaml:"bandWidth,omitempty" json:"bandWidth,omitempty"`

	// dmi adx smoothing window, default the same as window
	ADXSmoothing int `yaml:"adxSmoothing,omitempty" json:"adxSmoothing,omitempty"`
}

func (c IndicatorConfig) Validate() error {
	if _, ok := supportedIndicatorTypes[c.Type]; !ok {
		return errors.Errorf("unsupported indicator type: %s", c.Type)
	}
	return nil
}

type PersistenceConfig struct {
	Redis *service.RedisPersistenceConfig `yaml:"redis,omitempty" json:"redis,omitempty"`
	Json  *service.JsonPersistenceConfig  `yaml:"json,omitempty" json:"json,omitempty"`
}

type Config struct {
	// Symbol is a label for the stream, used for state keys and metrics
	Symbol string `yaml:"symbol" json:"symbol"`

	// CSVFile is the kline data source
	CSVFile string `yaml:"csvFile" json:"csvFile"`

	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators"`

	Persistence *PersistenceConfig `yaml:"persistence,omitempty" json:"persistence,omitempty"`

	// MetricsBind, when set, exposes prometheus metrics on this address,
	// e.g. ":9090"
	MetricsBind string `yaml:"metricsBind,omitempty" json:"metricsBind,omitempty"`
}

func (c *Config) Validate() error {
	if c.Symbol == "" {
		return errors.New("symbol is not defined")
	}

	if c.CSVFile == "" {
		return errors.New("csvFile is not defined")
	}

	if len(c.Indicators) == 0 {
		return errors.New("at least one indicator must be configured")
	}

	for i, indicator := range c.Indicators {
		if err := indicator.Validate(); err != nil {
			return errors.Wrapf(err, "indicator #%d", i)
		}
	}

	return nil
}

// Load reads and validates a yaml config file.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
