// Package nagplug helps monitoring checks produce guideline-compliant
// plugin output: a state, a summary line, performance data and extended
// output. See https://www.monitoring-plugins.org/doc/guidelines.html
package nagplug

// State is a plugin result state, ordered OK < Warning < Critical.
type State int

const (
	// OK is used for normal results.
	OK State = 0

	// Warning is used when a warning threshold is passed.
	Warning State = 1

	// Critical is used when a critical threshold is passed.
	Critical State = 2

	// Unknown is used when the check itself runs into a problem.
	Unknown State = 3
)

// String returns the uppercase state word used in plugin output.
func (s State) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	}

	return "UNKNOWN"
}

// ExitCode returns the process exit status for this state, 0-3 as defined
// by the plugin guidelines. States outside the defined range map to 3.
func (s State) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}

	return int(s)
}
