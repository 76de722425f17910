package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/monitoring-kit/nagplug/pkg/nagplug"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/cobra"
)

var memoryFlags = struct {
	warning  string
	critical string
}{}

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Check the physical memory usage in percent.",
	Run: func(_ *cobra.Command, _ []string) {
		checkMemory()
	},
}

func init() {
	memoryCmd.Flags().StringVarP(&memoryFlags.warning, "warning", "w", "", "warning threshold in percent used")
	memoryCmd.Flags().StringVarP(&memoryFlags.critical, "critical", "c", "", "critical threshold in percent used")
	rootCmd.AddCommand(memoryCmd)
}

func checkMemory() {
	plugin := newPlugin("check_memory")
	warn := parseThreshold(plugin, "warning", memoryFlags.warning)
	crit := parseThreshold(plugin, "critical", memoryFlags.critical)

	memStat, err := mem.VirtualMemory()
	if err != nil {
		plugin.Die(fmt.Sprintf("mem.VirtualMemory(): %s", err.Error()))
	}

	percent := toPrecision(memStat.UsedPercent, 1)
	state := plugin.CheckThreshold(percent, warn, crit)
	plugin.AddResult(state, fmt.Sprintf("memory usage %.1f%% (%s / %s)",
		percent, humanize.IBytes(memStat.Used), humanize.IBytes(memStat.Total)))

	zero := float64(0)
	hundred := float64(100)
	total := float64(memStat.Total)
	for _, perf := range []*nagplug.Perfdata{
		{Label: "percent_used", Value: percent, Unit: "%", Warning: warn, Critical: crit, Min: &zero, Max: &hundred},
		{Label: "used", Value: float64(memStat.Used), Unit: "B", Min: &zero, Max: &total},
		{Label: "total", Value: total, Unit: "B", Min: &zero},
	} {
		if err := plugin.AddPerfdata(perf); err != nil {
			plugin.Die(err.Error())
		}
	}
	if rootFlags.verbose > 0 {
		plugin.AddExtdata(fmt.Sprintf("free: %s, available: %s",
			humanize.IBytes(memStat.Free), humanize.IBytes(memStat.Available)))
	}

	plugin.Finish()
}
