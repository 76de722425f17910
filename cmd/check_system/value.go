package main

import (
	"fmt"

	"github.com/monitoring-kit/nagplug/pkg/nagplug"
	"github.com/spf13/cobra"
)

var valueFlags = struct {
	value    float64
	warning  string
	critical string
}{}

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Check a given value against warning and critical thresholds.",
	Run: func(_ *cobra.Command, _ []string) {
		checkValue()
	},
}

func init() {
	valueCmd.Flags().Float64Var(&valueFlags.value, "value", 0, "the value to check")
	valueCmd.Flags().StringVarP(&valueFlags.warning, "warning", "w", "", "warning threshold range")
	valueCmd.Flags().StringVarP(&valueFlags.critical, "critical", "c", "", "critical threshold range")
	_ = valueCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(valueCmd)
}

func checkValue() {
	plugin := newPlugin("check_value")
	warn := parseThreshold(plugin, "warning", valueFlags.warning)
	crit := parseThreshold(plugin, "critical", valueFlags.critical)

	zero := float64(0)
	hundred := float64(100)

	state := plugin.CheckThreshold(valueFlags.value, warn, crit)
	plugin.AddResult(state, fmt.Sprintf("value=%v", valueFlags.value))
	if err := plugin.AddPerfdata(&nagplug.Perfdata{
		Label:    "value",
		Value:    valueFlags.value,
		Warning:  warn,
		Critical: crit,
		Min:      &zero,
		Max:      &hundred,
	}); err != nil {
		plugin.Die(err.Error())
	}
	if rootFlags.verbose > 2 {
		plugin.AddExtdata(fmt.Sprintf("value has been determined to be %v", valueFlags.value))
	}

	plugin.Finish()
}
