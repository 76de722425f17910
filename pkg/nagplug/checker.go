package nagplug

import "github.com/monitoring-kit/nagplug/pkg/threshold"

// CheckThreshold classifies a value against optional warning and critical
// thresholds. Critical is checked first: when both ranges would trigger,
// the result is Critical even if the warning range is not a subset.
// Nil thresholds are skipped, with none given the result is OK.
func CheckThreshold(value float64, warning, critical *threshold.Threshold) State {
	if critical != nil && critical.Check(value) {
		return Critical
	}
	if warning != nil && warning.Check(value) {
		return Warning
	}

	return OK
}
