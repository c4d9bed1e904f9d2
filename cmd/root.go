package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"iban-gen/internal/logging"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfgErr  error

	// AppFs is where the registry is read from and the output written to.
	AppFs afero.Fs = afero.NewOsFs()
	// Logger is replaced once flags are parsed.
	Logger = zap.NewNop()
)

var RootCmd = &cobra.Command{
	Use:   "iban-gen",
	Short: "Generate IBAN specifications from the SWIFT registry",
	Long: `iban-gen reads the tab-separated SWIFT IBAN registry and writes one
addSpecification("<CC>", <LEN>, "<PATTERN>", <SEPA>); statement per country.

Run without a subcommand it behaves like "iban-gen generate".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}

		logger, err := logging.New(viper.GetString("log.level"))
		if err != nil {
			return err
		}
		Logger = logger

		if f := viper.ConfigFileUsed(); f != "" {
			Logger.Info("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = Logger.Sync()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults()

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./iban-gen.yaml)")
	flags.String("input", "", "registry file to read")
	flags.String("encoding", "", "character encoding of the registry file")
	flags.String("layout", "", `table layout: "rows" (one country per row) or "columns"`)
	flags.Bool("strict", false, "fail on repeated country codes instead of keeping the last one")
	flags.Bool("check-length", false, "require IBAN length to match the structure")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("input.path", flags.Lookup("input"))
	viper.BindPFlag("input.encoding", flags.Lookup("encoding"))
	viper.BindPFlag("input.layout", flags.Lookup("layout"))
	viper.BindPFlag("registry.strict", flags.Lookup("strict"))
	viper.BindPFlag("registry.check_length", flags.Lookup("check-length"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// iban-gen.yaml next to the binary wins over one in the working directory.
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("iban-gen")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("IBAN_GEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; a broken or explicitly named
	// one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}
