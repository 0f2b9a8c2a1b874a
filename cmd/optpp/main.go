// Package main provides the optpp command-line tool. It parses command lines
// against a YAML option schema and prints the result, or renders the usage
// text for a schema, which makes it handy for debugging option tables without
// writing a program around the library.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkikola/optpp/internal/logger"
	"github.com/gkikola/optpp/pkg/help"
	"github.com/gkikola/optpp/pkg/option"
	"github.com/gkikola/optpp/pkg/parser"
)

var (
	logLevel     string
	logFile      string
	allowUnknown bool
	allowBadArgs bool
	version      = "1.0.0" // overridable at build time
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "optpp",
	Short: "optpp - inspect command-line option schemas",
	Long: `optpp parses command lines against a YAML option schema and shows how each
token was classified, which makes option tables easy to debug before wiring
them into a program.`,
	PersistentPreRunE: setupLogging,
}

// parseCmd parses the given tokens against a schema and prints each entry.
var parseCmd = &cobra.Command{
	Use:   "parse <schema.yaml> [token...]",
	Short: "Parse tokens against a schema",
	Long: `Parse the given tokens against the option schema in the YAML file and print
one line per parsed entry, followed by the operand list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

// usageCmd renders the help text a program using the schema would show.
var usageCmd = &cobra.Command{
	Use:   "usage <schema.yaml>",
	Short: "Render the usage text for a schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsage,
}

// versionCmd reports the tool version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("optpp v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env values feed the same settings as flags and environment variables.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")
	parseCmd.Flags().BoolVar(&allowUnknown, "allow-unknown", false, "treat unknown options as operands")
	parseCmd.Flags().BoolVar(&allowBadArgs, "allow-bad-args", false, "treat malformed arguments as operands")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.SetEnvPrefix("OPTPP")
	viper.AutomaticEnv()

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	return logger.Configure(viper.GetString("log_level"), viper.GetString("log_file"))
}

func runParse(_ *cobra.Command, args []string) error {
	reg, err := option.LoadSchemaFile(args[0])
	if err != nil {
		return err
	}

	p := parser.New(reg)
	p.AllowUnknown(allowUnknown)
	p.AllowBadArgs(allowBadArgs)

	result, err := p.Parse(args[1:], false)
	if err != nil {
		return err
	}

	for _, entry := range result.Entries() {
		if !entry.IsOption {
			fmt.Printf("operand  %q\n", entry.OriginalText)
			continue
		}
		name := entry.LongName
		if name == "" {
			name = string(entry.ShortName)
		}
		if entry.Argument != "" || entry.Value.Kind != parser.ValueNone {
			fmt.Printf("option   %-20s argument=%q (%s)\n",
				name, entry.Argument, reg.At(entry.OptionIndex).Type())
		} else {
			fmt.Printf("option   %s\n", name)
		}
	}

	if operands := result.Operands(); len(operands) > 0 {
		fmt.Printf("operands: %q\n", operands)
	}
	return nil
}

func runUsage(_ *cobra.Command, args []string) error {
	reg, err := option.LoadSchemaFile(args[0])
	if err != nil {
		return err
	}

	formatter := help.NewFormatter(help.DefaultConfig(), parser.DefaultSyntax())
	if err := formatter.Write(os.Stdout, reg); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
