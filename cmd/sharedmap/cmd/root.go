package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag-backed variables, bound to both cobra's pflag set and viper so
// a config file or SHAREDMAP_* environment variable can override the
// defaults below (original: main.cpp's hardcoded defaults plus
// command_line_parser.h's flag table, expanded here with viper
// layering per SPEC_FULL.md's ambient-stack section).
var (
	graphIn         string
	mappingOut      string
	hierarchyString string
	distanceString  string
	imbalance       float64
	config          string
	threads         int
	strategyString  string
	seed            int64
	statsOut        string
	verbose         bool
	cfgFile         string
)

var rootCmd = &cobra.Command{
	Use:   "sharedmap",
	Short: "Parallel recursive-bisection hierarchical process mapping",
	Long: `sharedmap computes a hierarchical mapping of a weighted undirected
graph onto a k-leaf topology tree by recursive bisection, using one of
four concurrent scheduling strategies (naive, layer, queue, nb_layer).`,
	RunE: runSolve,
}

// Execute runs the root command and exits the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, prefix+err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "optional YAML/JSON config file overriding the flags below")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic detail while solving")

	rootCmd.Flags().StringVarP(&graphIn, "graph", "g", "", "filepath to the graph (METIS format, required)")
	rootCmd.Flags().StringVarP(&mappingOut, "mapping", "m", "mapping.txt", "output filepath for the generated mapping")
	rootCmd.Flags().StringVarP(&hierarchyString, "hierarchy", "", "4:8:6", "hierarchy in the form a1:a2:...:al")
	rootCmd.Flags().StringVarP(&distanceString, "distance", "d", "1:10:100", "distance in the form d1:d2:...:dl")
	rootCmd.Flags().Float64VarP(&imbalance, "imbalance", "e", 0.03, "allowed global imbalance (e.g. 0.03 for 3%)")
	rootCmd.Flags().StringVarP(&config, "config", "c", "fast", "partitioning configuration: fast, eco, or strong")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 4, "number of threads")
	rootCmd.Flags().StringVarP(&strategyString, "strategy", "s", "nb_layer", "scheduler strategy: naive, layer, queue, or nb_layer")
	rootCmd.Flags().Int64Var(&seed, "seed", -1, "random seed (negative selects a crypto/rand-derived seed)")
	rootCmd.Flags().StringVar(&statsOut, "stats", "", "optional output filepath for JSON partitioning statistics")

	_ = viper.BindPFlags(rootCmd.Flags())
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	viper.SetEnvPrefix("sharedmap")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "%sconfig file %s: %v\n", prefix, cfgFile, err)
		}
	}

	// Copy config-file/environment values into every flag the command
	// line did not set, so flags always win.
	for _, key := range viper.AllKeys() {
		if f := rootCmd.Flags().Lookup(key); f != nil && !f.Changed {
			_ = f.Value.Set(viper.GetString(key))
		}
	}
}

// parseColonList parses a "a1:a2:...:al" string into a []uint64,
// mirroring the original's split(...,':') + convert<u64> pipeline
// (original: algorithm_configuration.cpp's `split`/`convert`).
func parseColonList(s string) ([]uint64, error) {
	parts := strings.Split(s, ":")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}
