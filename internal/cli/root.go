package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lokistudio/detell/internal/config"
	"github.com/lokistudio/detell/internal/humanize"
	"github.com/lokistudio/detell/internal/logger"
)

var (
	flagConfig     string
	flagAggressive bool
	flagType       string
	flagText       string
)

var rootCmd = &cobra.Command{
	Use:   "detell [input-file] [output-file]",
	Short: "Remove AI telltale signs from text",
	Long: "Detell rewrites text to strip stylistic markers of machine-generated\n" +
		"writing: em-dash clauses, AI-flavored word choices, hedging phrases,\n" +
		"formulaic intros. The output file defaults to overwriting the input.",
	Args:          cobra.MaximumNArgs(2),
	RunE:          runHumanize,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the detell CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&flagAggressive, "aggressive", "a", false, "apply tone-altering transformations (adds contractions)")
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", "", "content type (general|title|description|tags)")
	rootCmd.Flags().StringVar(&flagText, "text", "", "rewrite a literal string to stdout instead of a file")
}

// app bundles everything a command needs after config and flags resolve.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	rules  *humanize.Rules
	engine *humanize.Engine
	ct     humanize.ContentType
}

// buildApp loads configuration, applies flag overrides, and constructs the
// engine. Flags win over config file values.
func buildApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	logCfg := logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if cfg.Logging.File.Enabled {
		logCfg.File = &logger.FileConfig{Enabled: true, Path: cfg.Logging.File.Path}
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	aggressive := cfg.Humanize.Aggressive
	if cmd.Flags().Changed("aggressive") {
		aggressive = flagAggressive
	}

	ctName := cfg.Humanize.ContentType
	if flagType != "" {
		ctName = flagType
	}
	ct, err := humanize.ParseContentType(ctName)
	if err != nil {
		return nil, err
	}

	var extra []humanize.ReplaceRule
	for _, r := range cfg.Humanize.Rules {
		rule, err := humanize.CompileReplacement(r.Pattern, r.Replacement)
		if err != nil {
			return nil, err
		}
		extra = append(extra, rule)
	}
	rules := humanize.DefaultRules().Extend(extra)

	return &app{
		cfg:    cfg,
		log:    log,
		rules:  rules,
		engine: humanize.NewEngine(rules, aggressive),
		ct:     ct,
	}, nil
}

func runHumanize(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	if flagText != "" {
		fmt.Println(a.engine.Apply(flagText, a.ct))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("input file required (or use --text)")
	}

	inputPath := args[0]
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	text := string(data)

	result := a.engine.Apply(text, a.ct)

	outputPath := inputPath
	if len(args) == 2 {
		outputPath = args[1]
	}
	if err := os.WriteFile(outputPath, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	a.log.Info("File rewritten",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.String("content_type", string(a.ct)),
	)

	printStats(os.Stdout, text, result)
	return nil
}

// printStats mirrors the before/after summary users rely on to see whether
// a run changed anything.
func printStats(w io.Writer, original, rewritten string) {
	origLen := utf8.RuneCountInString(original)
	newLen := utf8.RuneCountInString(rewritten)

	fmt.Fprintf(w, "Original: %d characters\n", origLen)
	fmt.Fprintf(w, "Rewritten: %d characters\n", newLen)
	if diff := origLen - newLen; diff != 0 {
		fmt.Fprintf(w, "Difference: %+d characters\n", diff)
	}
	if tells := humanize.DetectTells(original); len(tells) > 0 {
		fmt.Fprintf(w, "Removed %d AI telltale signs\n", len(tells))
	}
}
