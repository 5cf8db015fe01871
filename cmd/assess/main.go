// Command assess runs a one-shot maturity assessment from a JSON answer
// file, without the server or any backing stores.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aimaturity/internal/agent"
	"aimaturity/internal/cache"
	"aimaturity/internal/catalog"
	"aimaturity/internal/config"
	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
)

var (
	answersFile string
	orgID       string
	compact     bool
)

var rootCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run AI maturity assessments from the command line",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assess a JSON answer file and print the report",
	Long:  `Reads an assessment input file (organizationId, responses, context), runs the full agent pipeline in-process, and prints the resulting report as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(answersFile)
		if err != nil {
			return fmt.Errorf("reading answers file: %w", err)
		}

		var data model.AssessmentData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parsing answers file: %w", err)
		}
		if orgID != "" {
			data.OrganizationID = orgID
		}
		if data.OrganizationID == "" {
			data.OrganizationID = "org_cli"
		}
		if len(data.Responses) == 0 {
			return fmt.Errorf("answers file contains no responses")
		}

		cfg := config.New()
		orc := orchestrator.New(
			agent.All(agent.DefaultPolicy),
			cache.NewMemoryResultCache(cfg.ResultCacheSize, cfg.ResultCacheTTL),
			logger.New("error"),
			metrics.New(),
			cfg)

		result, err := orc.Assess(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("running assessment: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(result)
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List every catalog question with its id and type",
	Long:  `Prints the full dimension catalog question by question, which is the easiest way to author an answers file for the run command.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, dim := range catalog.Dimensions {
			fmt.Printf("%s (%s, category %s)\n", dim.Name, dim.ID, dim.Category)
			for _, q := range dim.Questions {
				fmt.Printf("  %-24s %-16s %s\n", q.ID, q.Type, q.Text)
				if len(q.Options) > 0 {
					for _, opt := range q.Options {
						fmt.Printf("  %24s   - %s\n", "", opt)
					}
				}
			}
		}
		fmt.Printf("\n%d dimensions, %d questions\n", len(catalog.Dimensions), catalog.TotalQuestions())
	},
}

func init() {
	runCmd.Flags().StringVarP(&answersFile, "file", "f", "answers.json", "path to the assessment input JSON")
	runCmd.Flags().StringVar(&orgID, "org", "", "override the organization id")
	runCmd.Flags().BoolVar(&compact, "compact", false, "print the report without indentation")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(questionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
