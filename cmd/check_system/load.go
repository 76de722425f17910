package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/monitoring-kit/nagplug/pkg/nagplug"
	"github.com/monitoring-kit/nagplug/pkg/threshold"
	cpuinfo "github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/spf13/cobra"
)

var loadFlags = struct {
	warning  string
	critical string
	perCPU   bool
}{}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Check the load averages over 1, 5 and 15 minutes.",
	Run: func(_ *cobra.Command, _ []string) {
		checkLoad()
	},
}

func init() {
	loadCmd.Flags().StringVarP(&loadFlags.warning, "warning", "w", "", "warning thresholds: WLOAD1,WLOAD5,WLOAD15 or a single range for all")
	loadCmd.Flags().StringVarP(&loadFlags.critical, "critical", "c", "", "critical thresholds: CLOAD1,CLOAD5,CLOAD15 or a single range for all")
	loadCmd.Flags().BoolVarP(&loadFlags.perCPU, "percpu", "r", false, "divide the load averages by the number of CPUs")
	rootCmd.AddCommand(loadCmd)
}

func checkLoad() {
	plugin := newPlugin("check_load")
	logger := plugin.ExtDataLogger("DEBUG")

	warn := splitLoadThresholds(plugin, "warning", loadFlags.warning)
	crit := splitLoadThresholds(plugin, "critical", loadFlags.critical)

	loadStat, err := load.Avg()
	if err != nil {
		plugin.Die(fmt.Sprintf("load.Avg(): %s", err.Error()))
	}

	values := []float64{loadStat.Load1, loadStat.Load5, loadStat.Load15}
	if loadFlags.perCPU {
		numCPU, err2 := cpuinfo.Counts(true)
		if err2 != nil {
			plugin.Die(fmt.Sprintf("cpuinfo: %s", err2.Error()))
		}
		if numCPU == 0 {
			plugin.Die("cpu count is zero")
		}
		if rootFlags.verbose > 0 {
			logger.Infof("scaling load averages by %d cpus", numCPU)
		}
		for i := range values {
			values[i] /= float64(numCPU)
		}
	}

	zero := float64(0)
	for i, name := range []string{"load1", "load5", "load15"} {
		state := plugin.CheckThreshold(values[i], warn[i], crit[i])
		plugin.AddResult(state, fmt.Sprintf("%s=%.2f", name, values[i]))
		if err := plugin.AddPerfdata(&nagplug.Perfdata{
			Label:    name,
			Value:    toPrecision(values[i], 2),
			Warning:  warn[i],
			Critical: crit[i],
			Min:      &zero,
		}); err != nil {
			plugin.Die(err.Error())
		}
	}

	// show every window at the aggregate level, not just the first one
	code := plugin.Code()
	plugin.Exit(code, "load average: "+plugin.Results().Messages(", ", code))
}

// splitLoadThresholds parses "W1,W5,W15" flag values into one threshold
// per load window. A single range applies to all three windows, an empty
// flag to none.
func splitLoadThresholds(plugin *nagplug.Plugin, flag, expr string) [3]*threshold.Threshold {
	res := [3]*threshold.Threshold{}
	if expr == "" {
		return res
	}

	parts := strings.Split(expr, ",")
	if len(parts) == 1 {
		parts = append(parts, parts[0], parts[0])
	}
	if len(parts) != 3 {
		plugin.Die(fmt.Sprintf("%s threshold must be a single range or LOAD1,LOAD5,LOAD15", flag))
	}
	for i, part := range parts {
		res[i] = parseThreshold(plugin, flag, part)
	}

	return res
}

func toPrecision(value float64, precision int) float64 {
	format := fmt.Sprintf("%%.%df", precision)
	res, err := strconv.ParseFloat(fmt.Sprintf(format, value), 64)
	if err != nil {
		return value
	}

	return res
}
