package cmd

import (
	"iter"
	"os"

	"iban-gen/internal/engine"
	"iban-gen/internal/schema"
	"iban-gen/internal/table"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	toStdout     bool
	showProgress bool

	// outputFlags is shared by generateCmd and RootCmd, which runs generate
	// when called without a subcommand.
	outputFlags = pflag.NewFlagSet("output", pflag.ContinueOnError)
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write addSpecification statements for every country in the registry",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)
	RootCmd.RunE = runGenerate
	RootCmd.Args = cobra.NoArgs

	outputFlags.String("output", "", "file to write the statements to")
	outputFlags.BoolVar(&toStdout, "stdout", false, "print the statements instead of writing the output file")
	outputFlags.BoolVar(&showProgress, "progress", false, "show a progress bar while reading the registry")
	generateCmd.Flags().AddFlagSet(outputFlags)
	RootCmd.Flags().AddFlagSet(outputFlags)

	viper.BindPFlag("output.path", outputFlags.Lookup("output"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	records, total, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	opts := cfg.BuildOptions()
	var progress *uiprogress.Progress
	if showProgress {
		progress = uiprogress.New()
		progress.SetOut(os.Stderr)
		bar := progress.AddBar(max(total, 1)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Transcoding: "
		})
		opts.OnRecord = func(schema.Record) { bar.Incr() }
		progress.Start()
	}

	sum, err := engine.Build(records, opts)
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		return err
	}

	if toStdout {
		return engine.Emit(cmd.OutOrStdout(), sum.Registry)
	}

	// Nothing is written until every row has been accepted.
	if err := engine.WriteFile(AppFs, cfg.Output.Path, sum.Registry); err != nil {
		return err
	}

	Logger.Info("wrote specifications",
		zap.String("input", cfg.Input.Path),
		zap.String("output", cfg.Output.Path),
		zap.Int("entries", sum.Registry.Len()),
		zap.Int("header_rows", sum.HeaderRows),
		zap.Int("duplicates", sum.Duplicates))
	return nil
}

// loadRecords reads the registry and returns its records along with the
// number the sequence is expected to yield.
func loadRecords(cfg *Config) (iter.Seq2[schema.Record, error], int, error) {
	layout, err := table.ParseLayout(cfg.Input.Layout)
	if err != nil {
		return nil, 0, err
	}

	Logger.Debug("loading registry",
		zap.String("path", cfg.Input.Path),
		zap.String("encoding", cfg.Input.Encoding),
		zap.String("layout", string(layout)))

	rows, err := table.Load(AppFs, cfg.Input.Path, cfg.Input.Encoding)
	if err != nil {
		return nil, 0, err
	}

	records, total := table.Records(rows, cfg.Columns, layout)
	return records, total, nil
}
