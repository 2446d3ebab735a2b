package handle

import (
	"github.com/m3db/m3x/instrument"
	"github.com/uber-go/tally"
)

const (
	defaultMetricsScopeName    = "handle"
	defaultReportDestroyErrors = true
)

var defaultOptions = NewOptions()

type handleMetrics struct {
	blocksCreated   tally.Counter
	blocksDestroyed tally.Counter
	destroyErrors   tally.Counter
}

func newHandleMetrics(m tally.Scope) handleMetrics {
	return handleMetrics{
		blocksCreated:   m.Counter("blocks-created"),
		blocksDestroyed: m.Counter("blocks-destroyed"),
		destroyErrors:   m.Counter("destroy-errors"),
	}
}

// Options provide a set of options for shared handles. The options a handle
// is created with travel with its control block, so every clone reports to
// the same metrics scope and logger.
type Options struct {
	instrumentOpts      instrument.Options
	metricsScopeName    string
	reportDestroyErrors bool
	metrics             handleMetrics
}

// NewOptions creates a new set of handle options.
func NewOptions() *Options {
	o := &Options{
		instrumentOpts:      instrument.NewOptions(),
		metricsScopeName:    defaultMetricsScopeName,
		reportDestroyErrors: defaultReportDestroyErrors,
	}
	o.initMetrics()
	return o
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	opts.initMetrics()
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetMetricsScopeName sets the name of the sub-scope handle metrics are
// reported under.
func (o *Options) SetMetricsScopeName(v string) *Options {
	opts := *o
	opts.metricsScopeName = v
	opts.initMetrics()
	return &opts
}

// MetricsScopeName returns the name of the sub-scope handle metrics are
// reported under.
func (o *Options) MetricsScopeName() string { return o.metricsScopeName }

// SetReportDestroyErrors sets whether errors returned while destroying a value
// from Release are logged.
func (o *Options) SetReportDestroyErrors(v bool) *Options {
	opts := *o
	opts.reportDestroyErrors = v
	return &opts
}

// ReportDestroyErrors returns whether errors returned while destroying a value
// from Release are logged.
func (o *Options) ReportDestroyErrors() bool { return o.reportDestroyErrors }

func (o *Options) initMetrics() {
	scope := o.instrumentOpts.MetricsScope().SubScope(o.metricsScopeName)
	o.metrics = newHandleMetrics(scope)
}
