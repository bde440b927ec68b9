package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goldenbell/qbank/internal/config"
	"github.com/goldenbell/qbank/internal/extract"
	"github.com/goldenbell/qbank/internal/logger"
	"github.com/goldenbell/qbank/internal/model"
	"github.com/goldenbell/qbank/internal/pipeline"
	"github.com/goldenbell/qbank/internal/report"
	"github.com/goldenbell/qbank/internal/store"
	"github.com/goldenbell/qbank/internal/ui"
)

var version = "0.1.0"

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Drill extracted questions in the terminal",
	Long: `Loads the extracted question file and asks the questions one by one.

Filter by course, month, difficulty or topic, type an answer and press enter.
Tab reveals the answer, esc quits.`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

var rootCmd = &cobra.Command{
	Use:   "goldenbell",
	Short: "Extract quiz questions from the Golden Star question bank PDF",
	Long: `Reads the question bank PDF, reconstructs every question from its
answer tag, checks the counts per course, month and difficulty,
and writes the questions as a JSON array.

With no flags the configured paths are used.`,
	Args:          cobra.NoArgs,
	RunE:          runExtract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(quizCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Question JSON file (written by extract, read by quiz)")
	rootCmd.Flags().StringP("pdf", "p", "", "Question bank PDF")
	rootCmd.Flags().IntP("lookback", "l", 0, "Characters searched before each answer tag for its question number")

	quizCmd.Flags().StringP("course", "c", "", "Only this course (체험 or 탐구)")
	quizCmd.Flags().IntP("month", "m", 0, "Only this month (1-12)")
	quizCmd.Flags().StringP("difficulty", "d", "", "Only this difficulty (하, 중, 상, 최상)")
	quizCmd.Flags().StringP("topic", "t", "", "Only this topic")

	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	if p, _ := cmd.Flags().GetString("pdf"); p != "" {
		config.SetPDFPath(p)
	}
	if n, _ := cmd.Flags().GetInt("lookback"); n > 0 {
		config.SetLookbackWindow(n)
	}

	log, err := logger.New(config.GetLogMode())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	styles := report.NewStyles(config.GetColorHeader(), config.GetColorOK(), config.GetColorDiff(), config.GetColorDim())
	_, err = pipeline.Run(extract.NewPDFExtractor(), pipeline.Options{
		Source:   config.GetPDFPath(),
		Output:   config.GetOutputPath(),
		Lookback: config.GetLookbackWindow(),
		Report:   os.Stdout,
		Styles:   styles,
	}, log)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return err
	}

	fmt.Printf("\n저장 완료: %s\n", config.GetOutputPath())
	return nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	questions, err := store.Load(config.GetOutputPath())
	if err != nil {
		return err
	}

	var filter model.Filter
	filter.Course, _ = cmd.Flags().GetString("course")
	filter.Month, _ = cmd.Flags().GetInt("month")
	filter.Difficulty, _ = cmd.Flags().GetString("difficulty")
	filter.Topic, _ = cmd.Flags().GetString("topic")

	summary, err := ui.Run(filter.Apply(questions))
	if err != nil {
		return err
	}
	fmt.Println(ui.FormatSummary(summary))
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
