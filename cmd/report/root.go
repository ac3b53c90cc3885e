package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd/util"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/logging"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/results"
)

var (
	ReportCmd = &cobra.Command{
		Use:     "report",
		Short:   "Aggregate a criterion-style result tree into a comparison table",
		Long:    "",
		RunE:    run,
		PreRunE: processReportConfig,
	}
	reportConfig = util.ReportConfig{}
)

func init() {
	// add flags
	key := "dir"
	ReportCmd.Flags().String(key, "target/criterion", util.WrapString("Root directory of the timing source tree"))
	key = "groups"
	ReportCmd.Flags().String(key, "", util.WrapString("Benchmark groups to aggregate (comma separated, default all formats)"))
}

func processReportConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Group names belong to the external timing tree, not to the in-process
	// registry, so any name is accepted; the registry only seeds the default.
	groups := splitList(viper.GetString("groups"))
	if len(groups) == 0 {
		groups, _ = util.ResolveFormats(nil)
	}
	sort.Strings(groups)

	reportConfig = util.ReportConfig{
		Dir:      viper.GetString("dir"),
		Groups:   groups,
		LogLevel: viper.GetString("log-level"),
	}

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	log := logging.GetLogger("report")
	log.SetLevel(logging.ParseLogLevel(reportConfig.LogLevel))

	fmt.Println("Serialization benchmark report")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(reportConfig.String())

	store := results.NewStore()

	for _, group := range reportConfig.Groups {
		samples, warnings := results.LoadGroupEstimates(reportConfig.Dir, group)
		for _, warning := range warnings {
			log.Warningf("%s", warning)
		}

		serializeNs, deserializeNs := results.SumPhases(samples)
		store.Put(group, serializeNs, deserializeNs)
		log.Debugf("(%s) - serialize total %.2fns, deserialize total %.2fns from %d samples",
			group, serializeNs, deserializeNs, len(samples))
	}

	fmt.Println(store.RenderTable())

	return nil
}

// splitList splits a comma separated flag value, dropping empty entries
func splitList(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
