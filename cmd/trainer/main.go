package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"wine-quality-service/internal/adapters/secondary/artifact"
	"wine-quality-service/internal/adapters/secondary/dataset"
	"wine-quality-service/internal/config"
	"wine-quality-service/internal/core/domain"
	"wine-quality-service/internal/core/services"
	"wine-quality-service/internal/logger"
	"wine-quality-service/internal/ml/forest"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Train the wine quality regressor and write its artifacts",
	Long: `trainer reads the wine quality dataset, fits a bagged regression tree
ensemble on a fixed 80/20 split, evaluates it on the held-out rows and writes
the model and its metrics to the artifacts directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTrain,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", os.Getenv("CONFIG_FILE"), "optional config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("training failed: %v", err)
		os.Exit(1)
	}
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.Logger)

	fitter := forest.NewFitter(forest.Config{
		NEstimators:    cfg.Trainer.NEstimators,
		Seed:           cfg.Trainer.Seed,
		MaxDepth:       cfg.Trainer.MaxDepth,
		MinSamplesLeaf: cfg.Trainer.MinSamplesLeaf,
	})
	svc := services.NewTrainerService(
		dataset.NewCSVReader(cfg.Trainer.DelimiterRune(), domain.LabelColumn),
		fitter,
		artifact.NewFileStore(cfg.Model.Path, cfg.Model.MetricsPath),
		cfg.Trainer.TestSize,
		cfg.Trainer.Seed,
	)

	report, err := svc.Train(cmd.Context(), cfg.Trainer.DatasetPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Model Performance: MSE=%v, R2=%v\n", report.Metrics.MSE, report.Metrics.R2)
	return nil
}
