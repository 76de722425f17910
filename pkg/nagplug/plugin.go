package nagplug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/monitoring-kit/nagplug/pkg/threshold"
)

// Plugin ties the collectors of one check run together and renders the
// final plugin output. A Plugin must not be shared between concurrent
// check runs, each run owns its own instance.
type Plugin struct {
	name     string
	version  string
	results  ResultSet
	perfdata PerfdataList
	extdata  ExtData
	timer    *time.Timer

	// Out and ExitFunc are overridable for tests.
	Out      io.Writer
	ExitFunc func(code int)
}

// New creates a plugin with the given name, usually the program name.
func New(name string) *Plugin {
	return &Plugin{
		name:     name,
		version:  "undefined",
		Out:      os.Stdout,
		ExitFunc: os.Exit,
	}
}

// SetVersion sets the version reported by Version.
func (p *Plugin) SetVersion(version string) {
	p.version = version
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return p.name }

// Version returns the plugin version.
func (p *Plugin) Version() string { return p.version }

// AddResult records one sub-check outcome.
func (p *Plugin) AddResult(state State, message string) {
	p.results.Add(state, message)
}

// AddPerfdata records one performance value, see PerfdataList.Add.
func (p *Plugin) AddPerfdata(perf *Perfdata) error {
	return p.perfdata.Add(perf)
}

// AddExtdata appends one line of extended output.
func (p *Plugin) AddExtdata(line string) {
	p.extdata.Add(line)
}

// Results exposes the result aggregator.
func (p *Plugin) Results() *ResultSet { return &p.results }

// Perfdata exposes the performance data collector.
func (p *Plugin) Perfdata() *PerfdataList { return &p.perfdata }

// ExtData exposes the extended data collector.
func (p *Plugin) ExtData() *ExtData { return &p.extdata }

// Code returns the aggregate state of all recorded results.
func (p *Plugin) Code() State {
	return p.results.Code()
}

// Message returns the message matching the aggregate state.
func (p *Plugin) Message() string {
	return p.results.Message()
}

// CheckThreshold classifies a value against the given thresholds, see the
// package level CheckThreshold.
func (p *Plugin) CheckThreshold(value float64, warning, critical *threshold.Threshold) State {
	return CheckThreshold(value, warning, critical)
}

// BuildPluginOutput renders the wire format: the message, " | " and the
// perfdata tokens if any were added, then the extended data on the
// following lines.
func (p *Plugin) BuildPluginOutput(message string) string {
	var out strings.Builder
	out.WriteString(message)
	if p.perfdata.Len() > 0 {
		out.WriteString(" | ")
		out.WriteString(p.perfdata.String())
	}
	if p.extdata.Len() > 0 {
		out.WriteString("\n")
		out.WriteString(p.extdata.String())
	}

	return out.String()
}

// SetTimeout arms a timer that makes the plugin exit with the given state
// once the duration passed, so a stuck check still produces output that
// the scheduler can parse.
func (p *Plugin) SetTimeout(timeout time.Duration, state State) {
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(timeout, func() {
		p.Exit(state, fmt.Sprintf("plugin timed out after %d seconds", int(timeout.Seconds())))
	})
}

// Exit prints "<NAME> <STATE> - <output>" and terminates the process with
// the matching exit code.
func (p *Plugin) Exit(state State, message string) {
	if p.timer != nil {
		p.timer.Stop()
	}
	fmt.Fprintf(p.Out, "%s %s - %s\n", strings.ToUpper(p.name), state.String(), p.BuildPluginOutput(message))
	p.ExitFunc(state.ExitCode())
}

// Finish exits with the aggregate state and message of all added results.
func (p *Plugin) Finish() {
	p.Exit(p.Code(), p.Message())
}

// Die exits Unknown, to be used for internal errors.
func (p *Plugin) Die(message string) {
	p.Exit(Unknown, message)
}
