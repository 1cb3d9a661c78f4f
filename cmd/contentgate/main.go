package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"contentgate/internal/asset"
	"contentgate/internal/config"
	"contentgate/internal/corpus"
	"contentgate/internal/fatigue"
	"contentgate/internal/llm"
	"contentgate/internal/pipeline"
	"contentgate/internal/regen"
	"contentgate/internal/scoring"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "contentgate",
		Short: "Quality and freshness gate for advisor marketing content",
	}
	configPath string
	outDir     string
	historyDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "contentgate.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "output", "Directory for report artifacts")

	fatigueCmd.Flags().StringVar(&historyDir, "history", "output", "Directory tree of previously published sessions")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(fatigueCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(archiveCmd)
}

func loadCfg() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// initGenerator wires the configured content generator provider.
func initGenerator(ctx context.Context, cfg *config.Config) (llm.Generator, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("LLM API key not configured")
		}
		return llm.NewGeminiGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.GeneratorTimeout())
	case "openai":
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("LLM API key not configured")
		}
		return llm.NewOpenAIGenerator(cfg.LLM.APIKey, cfg.LLM.Model, cfg.GeneratorTimeout()), nil
	case "mock":
		return &llm.MockGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

func initFallbackStore(cfg *config.Config) *regen.FallbackStore {
	if cfg.Fallback.TemplatePath == "" {
		return regen.NewFallbackStore()
	}
	store, err := regen.LoadFallbackStore(cfg.Fallback.TemplatePath)
	if err != nil {
		// Generic templates still apply; curated ones are an upgrade, not a requirement.
		log.Printf("⚠️ Curated fallback templates unavailable: %v", err)
	}
	return store
}

var scoreCmd = &cobra.Command{
	Use:   "score [assets]",
	Short: "Score a batch of content assets and write the quality assessment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadCfg()

		assets, failures, err := asset.LoadDir(args[0])
		if err != nil {
			log.Fatalf("Failed to load assets: %v", err)
		}
		for _, f := range failures {
			log.Printf("⚠️ Skipped %s: %s", f.Path, f.Reason)
		}
		fmt.Printf("📊 Scoring %d assets...\n", len(assets))

		reports := scoring.ScoreAll(assets, cfg.ProfileMap())
		assessment := scoring.BuildAssessment(reports)

		path := filepath.Join(outDir, "quality_assessment.json")
		if err := assessment.Save(path); err != nil {
			log.Fatalf("Failed to write assessment: %v", err)
		}

		fmt.Printf("✅ %d auto-approved, %d manual review, %d rejected (avg %.2f)\n",
			assessment.AutoApproved, assessment.ManualReview, assessment.Rejected, assessment.AverageScore)
		fmt.Printf("🎉 Assessment written to %s\n", path)
	},
}

var fatigueCmd = &cobra.Command{
	Use:   "fatigue [assets]",
	Short: "Check a batch against published history for repetition fatigue",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadCfg()
		ctx := context.Background()

		assets, failures, err := asset.LoadDir(args[0])
		if err != nil {
			log.Fatalf("Failed to load assets: %v", err)
		}
		for _, f := range failures {
			log.Printf("⚠️ Skipped %s: %s", f.Path, f.Reason)
		}

		provider, closer, err := initCorpus(cfg)
		if err != nil {
			log.Fatalf("Failed to open corpus: %v", err)
		}
		defer closer()

		runner := &pipeline.Runner{
			Analyzer:   fatigue.NewAnalyzer(cfg.Fatigue, nil, nil),
			Corpus:     provider,
			WindowDays: cfg.Corpus.WindowDays,
		}
		report := pipeline.NewRunReport(uuid.NewString(), "fatigue", outDir)

		fmt.Printf("🔍 Analyzing freshness for %d assets...\n", len(assets))
		session, err := runner.RunFatigue(ctx, assets, report)
		if err != nil {
			log.Fatalf("Fatigue analysis failed: %v", err)
		}

		if err := session.SaveJSON(filepath.Join(outDir, "fatigue_analysis.json")); err != nil {
			log.Fatalf("Failed to write fatigue analysis: %v", err)
		}
		if err := session.SaveMarkdown(filepath.Join(outDir, "FATIGUE_REPORT.md")); err != nil {
			log.Fatalf("Failed to write fatigue report: %v", err)
		}
		report.Finalize(0, session.OverallScore)
		if err := report.Save(filepath.Join(outDir, "run_report.json")); err != nil {
			log.Printf("⚠️ Failed to write run report: %v", err)
		}

		fmt.Printf("✅ Session freshness %.1f/10 → %s (%s)\n",
			session.OverallScore, session.Status, session.Recommendation)
	},
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate [QUALITY_REPORT.json]",
	Short: "Run the bounded regenerate-or-fallback loop over a quality report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadCfg()
		ctx := context.Background()

		input, err := regen.LoadQualityReport(args[0])
		if err != nil {
			log.Fatalf("Failed to load quality report: %v", err)
		}

		assets, problems := input.LoadAssets(filepath.Dir(args[0]))
		for _, p := range problems {
			log.Printf("⚠️ Skipped %s: %s", p.Path, p.Reason)
		}
		fmt.Printf("🔁 Processing %d of %d assets...\n", len(assets), input.TotalAssets)

		gen, err := initGenerator(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize generator: %v", err)
		}

		runner := &pipeline.Runner{
			Controller:  regen.NewController(gen, initFallbackStore(cfg), cfg.ControllerConfig()),
			PlanConfig:  cfg.ControllerConfig(),
			Profiles:    cfg.ProfileMap(),
			Concurrency: cfg.Regeneration.Concurrency,
			Deadline:    cfg.RunDeadline(),
		}
		report := pipeline.NewRunReport(uuid.NewString(), "regenerate", outDir)

		plan := runner.RunRegeneration(ctx, assets, report)
		if err := plan.Save(filepath.Join(outDir, "regeneration-plan.json")); err != nil {
			log.Fatalf("Failed to write regeneration plan: %v", err)
		}
		report.Finalize(plan.FinalQualityRate, 0)
		if err := report.Save(filepath.Join(outDir, "run_report.json")); err != nil {
			log.Printf("⚠️ Failed to write run report: %v", err)
		}

		fmt.Printf("✅ Quality rate %.1f%% (%d accepted, %d fallbacks)\n",
			plan.FinalQualityRate, plan.Accepted, plan.FallbacksApplied)
		os.Exit(plan.ExitCode())
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive [assets]",
	Short: "Append distributed session output into the published-content archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadCfg()
		ctx := context.Background()

		assets, failures, err := asset.LoadDir(args[0])
		if err != nil {
			log.Fatalf("Failed to load assets: %v", err)
		}
		for _, f := range failures {
			log.Printf("⚠️ Skipped %s: %s", f.Path, f.Reason)
		}

		store, err := corpus.NewSQLiteStore(cfg.Corpus.DBPath)
		if err != nil {
			log.Fatalf("Failed to open archive: %v", err)
		}
		defer store.Close()

		if err := store.SaveAssets(ctx, assets); err != nil {
			log.Fatalf("Failed to archive assets: %v", err)
		}
		fmt.Printf("💾 Archived %d assets into %s\n", len(assets), cfg.Corpus.DBPath)
	},
}

// initCorpus prefers the sqlite archive when it exists; otherwise it scans the
// history directory tree given in config.
func initCorpus(cfg *config.Config) (corpus.Provider, func(), error) {
	if _, err := os.Stat(cfg.Corpus.DBPath); err == nil {
		store, err := corpus.NewSQLiteStore(cfg.Corpus.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	provider := corpus.NewFSProvider(historyDir)
	return provider, func() {}, nil
}
