package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd/bench"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd/report"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd/util"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serbench",
		Short: "serialization format benchmark harness",
		Long: fmt.Sprintf(`serbench (v%s)

A micro-benchmark harness comparing serialization formats by
throughput and allocation footprint over a fixed sample record.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serbench v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(report.ReportCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	util.InitEnvConfig()
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
