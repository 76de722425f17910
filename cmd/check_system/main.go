// Command check_system bundles a few host checks built on the nagplug
// library, one subcommand per check. Each subcommand prints a single
// plugin result line and exits with the matching status code.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/monitoring-kit/nagplug/pkg/nagplug"
	"github.com/monitoring-kit/nagplug/pkg/threshold"
	"github.com/spf13/cobra"
)

// Version contains the release version.
// compile passing -ldflags "-X main.Version=<version>" to set it.
var Version = "undefined"

var rootFlags = struct {
	timeout int
	verbose int
	version bool
}{}

var rootCmd = &cobra.Command{
	Use:   "check_system [command]",
	Short: "Host checks with Naemon/Nagios compatible output.",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stderr, "check_system called without a check, see --help for usage.\n")
		os.Exit(nagplug.Unknown.ExitCode())
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if rootFlags.version {
			fmt.Fprintf(os.Stdout, "check_system %s\n", Version)
			os.Exit(nagplug.OK.ExitCode())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&rootFlags.timeout, "timeout", "t", 30, "abort the check after this many seconds")
	rootCmd.PersistentFlags().CountVarP(&rootFlags.verbose, "verbose", "v", "increase verbosity, captured as extended output")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.version, "version", "V", false, "print version and exit")
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.DisableAutoGenTag = true
	rootCmd.DisableSuggestions = true
}

// newPlugin sets up the plugin for one check run with the shared flags
// applied.
func newPlugin(name string) *nagplug.Plugin {
	plugin := nagplug.New(name)
	plugin.SetVersion(Version)
	plugin.SetTimeout(time.Duration(rootFlags.timeout)*time.Second, nagplug.Unknown)

	return plugin
}

// parseThreshold turns a -w/-c flag value into a threshold, an empty flag
// means no threshold. Parse failures end the check with Unknown instead of
// a crash, a config mistake is not a host problem.
func parseThreshold(plugin *nagplug.Plugin, flag, expr string) *threshold.Threshold {
	if expr == "" {
		return nil
	}
	th, err := threshold.New(expr)
	if err != nil {
		plugin.Die(fmt.Sprintf("invalid %s threshold: %s", flag, err.Error()))
	}

	return th
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(nagplug.Unknown.ExitCode())
	}
}
