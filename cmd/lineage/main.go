// Command lineage is the batch query CLI over the lineage event log:
// upstream traces, downstream impact analysis, graph export, and structural
// validation.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DataLineage-25-26J-512/lineage-backend/config"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/graph/export"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/service"
)

var (
	eventsDir    string
	traceDepth   int
	traceExport  string
	impactDepth  int
	impactExport string
	exportFormat string
	exportOutput string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "lineage",
	Short:         "Data lineage impact analysis over the batch event log",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var traceCmd = &cobra.Command{
	Use:   "trace <field>",
	Short: "Trace upstream lineage for a field (field_name or dataset.field_name)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrace,
}

var impactCmd = &cobra.Command{
	Use:   "impact <field>",
	Short: "Analyze downstream impact of a field change",
	Args:  cobra.ExactArgs(1),
	RunE:  runImpact,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the complete lineage graph",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate lineage consistency",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&eventsDir, "events", "", "events directory (default $LINEAGE_EVENTS_DIR)")

	traceCmd.Flags().IntVar(&traceDepth, "depth", -1, "maximum trace depth (default $LINEAGE_MAX_DEPTH)")
	traceCmd.Flags().StringVar(&traceExport, "export", "", "output format: json or yaml (default: tree rendering)")
	impactCmd.Flags().IntVar(&impactDepth, "depth", -1, "maximum analysis depth (default $LINEAGE_MAX_DEPTH)")
	impactCmd.Flags().StringVar(&impactExport, "export", "", "output format: json or yaml (default: tree rendering)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or yaml")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file path (default: stdout)")
	validateCmd.Flags().BoolVar(&verbose, "verbose", false, "print the full validation report as JSON")

	rootCmd.AddCommand(traceCmd, impactCmd, exportCmd, validateCmd)
}

// loadAnalyzer builds the analyzer from --events, falling back to the
// configured events directory.
func loadAnalyzer() (*service.Analyzer, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dir := eventsDir
	if dir == "" {
		dir = cfg.Lineage.EventsDir
	}
	a, err := service.New(dir)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

func resolveDepth(flagValue int, cfg *config.Config) int {
	if flagValue >= 0 {
		return flagValue
	}
	return cfg.Lineage.MaxDepth
}

func runTrace(cmd *cobra.Command, args []string) error {
	a, cfg, err := loadAnalyzer()
	if err != nil {
		return err
	}
	tree, err := a.TraceField(args[0], resolveDepth(traceDepth, cfg))
	if err != nil {
		return err
	}
	if traceExport != "" {
		return printEncoded(tree, traceExport)
	}
	fmt.Println("Upstream Lineage Analysis")
	fmt.Println("=========================")
	fmt.Print(renderTree(tree))
	return nil
}

func runImpact(cmd *cobra.Command, args []string) error {
	a, cfg, err := loadAnalyzer()
	if err != nil {
		return err
	}
	tree, err := a.AnalyzeImpact(args[0], resolveDepth(impactDepth, cfg))
	if err != nil {
		return err
	}
	if impactExport != "" {
		return printEncoded(tree, impactExport)
	}
	fmt.Println("Downstream Impact Analysis")
	fmt.Println("==========================")
	fmt.Print(renderTree(tree))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, _, err := loadAnalyzer()
	if err != nil {
		return err
	}
	doc := a.ExportGraph()
	if exportOutput == "" {
		return printEncoded(doc, exportFormat)
	}

	switch exportFormat {
	case "json":
		err = export.WriteJSON(exportOutput, doc)
	case "yaml":
		err = export.WriteYAML(exportOutput, doc)
	default:
		return fmt.Errorf("unsupported export format: %s", exportFormat)
	}
	if err != nil {
		return err
	}
	fmt.Printf("lineage graph exported to %s\n", exportOutput)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, _, err := loadAnalyzer()
	if err != nil {
		return err
	}
	report := a.Validate()
	fmt.Print(renderReport(report))
	if verbose {
		fmt.Println("\nDetailed validation results:")
		return printEncoded(report, "json")
	}
	return nil
}

func printEncoded(v any, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
