// moodgraph — batch sentiment analysis for social-media comment exports.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/moodgraph/internal/config"
	"github.com/seenimoa/moodgraph/internal/pipeline"
	"github.com/seenimoa/moodgraph/internal/report"
	"github.com/seenimoa/moodgraph/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moodgraph",
	Short: "moodgraph — sentiment and emotion trends from comment exports",
	Long: `moodgraph loads a CSV export of social-media comments, scores each
comment with lexicon-based sentiment methods, classifies emotions,
smooths the resulting series into trend curves, flags internally
contradictory comments, and renders everything into one multi-page
chart document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(inspectCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moodgraph %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input.csv]",
	Short: "Run the full pipeline and write the chart document",
	Long: `Run the full pipeline on a comment export and write the multi-page
chart document. With --feed the positional argument is skipped and
comments are pulled from an RSS/Atom feed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyAnalyzeFlags(cmd, args)
		if err := cfg.Validate(); err != nil {
			return err
		}

		caps, err := pipeline.DefaultCapabilities(cfg)
		if err != nil {
			return err
		}

		log.Printf("loading comments from %s", inputName(cfg))
		res, err := pipeline.Run(cmd.Context(), cfg, caps)
		if err != nil {
			return err
		}
		for _, se := range res.ScoreErrs {
			log.Printf("warning: %s", se.Error())
		}
		if res.Empty {
			log.Printf("no comments survived filtering, writing placeholder document")
		} else {
			log.Printf("analyzed %d comments (%d emotion matches)", len(res.Cleaned), res.Aggregate.Total())
		}

		rcfg := reportConfig(cfg)
		pages := report.BuildPages(res.ReportData(cfg), rcfg)
		if err := report.Generate(pages, rcfg); err != nil {
			return err
		}
		fmt.Printf("📊 Report written: %s\n", cfg.Report.OutputPath)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("date", "", "keep only comments from this UTC day (YYYY-MM-DD)")
	analyzeCmd.Flags().String("out", "", "output document path")
	analyzeCmd.Flags().Int("max-rows", 0, "row cap applied after the date filter")
	analyzeCmd.Flags().Int("low-pass", 0, "DCT coefficients retained when smoothing")
	analyzeCmd.Flags().Int("points", 0, "trend curve output length")
	analyzeCmd.Flags().String("emotion", "", "category for the single-emotion trend page")
	analyzeCmd.Flags().StringSlice("method", nil, "sentiment methods to run (vader, afinn, bing)")
	analyzeCmd.Flags().String("feed", "", "read comments from an RSS/Atom feed URL instead of CSV")
	analyzeCmd.Flags().Bool("parallel", false, "score comments concurrently")
}

// --- Inspect Command ---

var inspectCmd = &cobra.Command{
	Use:   "inspect [input.csv]",
	Short: "Run the analysis and print a summary without writing a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyAnalyzeFlags(cmd, args)
		if err := cfg.Validate(); err != nil {
			return err
		}

		caps, err := pipeline.DefaultCapabilities(cfg)
		if err != nil {
			return err
		}
		res, err := pipeline.Run(cmd.Context(), cfg, caps)
		if err != nil {
			return err
		}
		if res.Empty {
			fmt.Println("No comments survived filtering.")
			return nil
		}

		fmt.Printf("Comments analyzed: %d\n\n", len(res.Cleaned))
		fmt.Println("Emotion counts:")
		for _, label := range models.EmotionLabels() {
			fmt.Printf("  %-13s %5d  (%.1f%%)\n", label, res.Aggregate[label], res.Percentages[label])
		}
		fmt.Println("\nMost mixed sentences:")
		for i, rec := range res.TopMixed {
			fmt.Printf("  %d. [%.3f] %s\n", i+1, rec.Entropy, rec.Sentence)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("date", "", "keep only comments from this UTC day (YYYY-MM-DD)")
	inspectCmd.Flags().Int("max-rows", 0, "row cap applied after the date filter")
	inspectCmd.Flags().String("emotion", "", "category for the single-emotion trend")
	inspectCmd.Flags().StringSlice("method", nil, "sentiment methods to run (vader, afinn, bing)")
	inspectCmd.Flags().String("feed", "", "read comments from an RSS/Atom feed URL instead of CSV")
	inspectCmd.Flags().Int("low-pass", 0, "DCT coefficients retained when smoothing")
	inspectCmd.Flags().Int("points", 0, "trend curve output length")
	inspectCmd.Flags().String("out", "", "ignored; inspect writes no document")
	inspectCmd.Flags().Bool("parallel", false, "score comments concurrently")
}

// applyAnalyzeFlags layers command-line flags over the loaded config.
// Only flags the user actually set override file and env values.
func applyAnalyzeFlags(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		cfg.Input.Source = "csv"
		cfg.Input.Path = args[0]
	}
	if feed, _ := cmd.Flags().GetString("feed"); feed != "" {
		cfg.Input.Source = "feed"
		cfg.Input.FeedURL = feed
	}
	if cmd.Flags().Changed("date") {
		cfg.Filter.Date, _ = cmd.Flags().GetString("date")
	}
	if cmd.Flags().Changed("out") {
		cfg.Report.OutputPath, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("max-rows") {
		cfg.Filter.MaxRows, _ = cmd.Flags().GetInt("max-rows")
	}
	if cmd.Flags().Changed("low-pass") {
		cfg.Analysis.LowPassSize, _ = cmd.Flags().GetInt("low-pass")
	}
	if cmd.Flags().Changed("points") {
		cfg.Analysis.CurvePoints, _ = cmd.Flags().GetInt("points")
	}
	if cmd.Flags().Changed("emotion") {
		cfg.Analysis.Emotion, _ = cmd.Flags().GetString("emotion")
	}
	if cmd.Flags().Changed("method") {
		cfg.Analysis.Methods, _ = cmd.Flags().GetStringSlice("method")
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Analysis.Parallel, _ = cmd.Flags().GetBool("parallel")
	}
}

func reportConfig(cfg *config.Config) report.Config {
	rcfg := report.DefaultConfig()
	rcfg.OutputPath = cfg.Report.OutputPath
	rcfg.PageSize = cfg.Report.PageSize
	rcfg.Orientation = cfg.Report.Orientation
	rcfg.TopMixed = cfg.Report.TopMixed
	if cfg.Report.Title != "" {
		rcfg.Title = cfg.Report.Title
	}
	rcfg.Subtitle = inputName(cfg)
	return rcfg
}

func inputName(cfg *config.Config) string {
	if cfg.Input.Source == "feed" {
		return cfg.Input.FeedURL
	}
	return cfg.Input.Path
}
