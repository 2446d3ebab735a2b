package handle

import "github.com/m3db/m3x/instrument"

// Configuration contains handle configuration.
type Configuration struct {
	// Name of the metrics sub-scope, defaults to "handle".
	MetricsScope *string `yaml:"metricsScope"`

	// Whether errors destroying a released value are logged, defaults to true.
	ReportDestroyErrors *bool `yaml:"reportDestroyErrors"`
}

// NewOptions creates a new set of handle options.
func (c *Configuration) NewOptions(
	instrumentOpts instrument.Options,
) *Options {
	opts := NewOptions().SetInstrumentOptions(instrumentOpts)
	if c.MetricsScope != nil {
		opts = opts.SetMetricsScopeName(*c.MetricsScope)
	}
	if c.ReportDestroyErrors != nil {
		opts = opts.SetReportDestroyErrors(*c.ReportDestroyErrors)
	}
	return opts
}
