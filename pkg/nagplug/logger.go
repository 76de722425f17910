package nagplug

import (
	"strings"

	"github.com/kdar/factorlog"
)

// ExtDataLogFormat is the default format for log records captured as
// extended data. Timestamps are left out, the scheduler adds its own.
const ExtDataLogFormat = `[%{Severity}] %{Message}`

// ExtDataLogger returns a logger that writes every record as one extended
// data line, so verbose diagnostics end up in the long plugin output
// instead of breaking the summary line. Records below minLevel are
// dropped, levels are the factorlog severities (TRACE, DEBUG, INFO, WARN,
// ERROR).
func (p *Plugin) ExtDataLogger(minLevel string) *factorlog.FactorLog {
	logger := factorlog.New(p.extdata.Writer(), factorlog.NewStdFormatter(ExtDataLogFormat))
	logger.SetMinMaxSeverity(factorlog.StringToSeverity(strings.ToUpper(minLevel)), factorlog.StringToSeverity("PANIC"))

	return logger
}
