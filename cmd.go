package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stats_worker/stats"
)

// rootCmd processes one test run, or consumes the Sidekiq queue when run
// with --service or without arguments.
var rootCmd = &cobra.Command{
	Use:   "stats_worker [test-run-id]",
	Short: "Summarize benchmark samples",
	Long: `stats_worker computes descriptive statistics over the samples of a test run
and stores them in test_results. Without a test run id it runs as a service
that consumes Sidekiq jobs from Redis.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	testRunID    int64
	serviceMode  bool
	describeKind string
)

var describeCmd = &cobra.Command{
	Use:   "describe [values...]",
	Short: "Print statistics for the given values",
	Long: `describe reads numbers from its arguments, or whitespace separated from stdin
when no arguments are given, and prints mean, median, mode, variance and
standard deviation together with their NaN-ignoring variants. Put -- before
the values when the first one is negative.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			var err error
			if args, err = readFields(cmd.InOrStdin()); err != nil {
				return err
			}
		}
		return describeAs(describeKind, cmd.OutOrStdout(), args)
	},
}

var arangeCmd = &cobra.Command{
	Use:   "arange START END [STEP]",
	Short: "Print the integers from START up to END",
	Long:  `arange prints START, START+STEP, ... excluding END, one per line. STEP defaults to 1 and may be negative.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds := []int64{0, 0, 1}
		for i, a := range args {
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "argument %d", i+1)
			}
			bounds[i] = v
		}
		seq, err := stats.Arange(bounds[0], bounds[1], bounds[2])
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, v := range seq {
			fmt.Fprintln(w, v)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.Flags().Int64Var(&testRunID, "test-run-id", 0, "ID of test_runs row to attach results to (omit to run service)")
	rootCmd.Flags().BoolVar(&serviceMode, "service", false, "Run as background service listening to Sidekiq queue")
	describeCmd.Flags().StringVarP(&describeKind, "kind", "k", "float64", "numeric kind: int32, int64, uint32, uint64, float32 or float64")

	rootCmd.AddCommand(describeCmd, arangeCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if testRunID == 0 && len(args) == 1 {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid test run id")
		}
		testRunID = v
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if serviceMode || testRunID == 0 {
		cfg, err := redisConfigFromEnv()
		if err != nil {
			return err
		}
		runService(db, cfg)
		return nil
	}
	return processTestRun(db, testRunID)
}

func readFields(r io.Reader) ([]string, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	return fields, errors.Wrap(sc.Err(), "read values")
}

func describeAs(kind string, w io.Writer, raw []string) error {
	switch kind {
	case "int32":
		return describe[int32](w, raw)
	case "int64":
		return describe[int64](w, raw)
	case "uint32":
		return describe[uint32](w, raw)
	case "uint64":
		return describe[uint64](w, raw)
	case "float32":
		return describe[float32](w, raw)
	case "float64":
		return describe[float64](w, raw)
	}
	return errors.Errorf("unknown kind %q", kind)
}

func describe[T stats.Kind](w io.Writer, raw []string) error {
	values := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := stats.Parse[T](s)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(name string, v string, ok bool) {
		if !ok {
			v = "undefined"
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, v)
	}
	float := func(v float64, ok bool) (string, bool) {
		return strconv.FormatFloat(v, 'g', -1, 64), ok
	}
	value := func(v T, ok bool) (string, bool) {
		return stats.Format(v), ok
	}
	mode := func(v T, ok bool, err error) (string, bool) {
		if err != nil {
			return err.Error(), true
		}
		return stats.Format(v), ok
	}

	fmt.Fprintf(tw, "kind\t%s\n", stats.KindName[T]())
	fmt.Fprintf(tw, "count\t%s\n", humanize.Comma(int64(len(values))))
	fmt.Fprintf(tw, "nan\t%d\n", stats.CountNaN(values))

	sorted := sortedCopy(values)
	name, ok := value(stats.Min(sorted))
	row("min", name, ok)
	name, ok = value(stats.Quantile(sorted, 0.25))
	row("q1", name, ok)
	name, ok = value(stats.Quantile(sorted, 0.75))
	row("q3", name, ok)
	name, ok = value(stats.Max(sorted))
	row("max", name, ok)

	name, ok = float(stats.Mean[float64](values))
	row("mean", name, ok)
	name, ok = float(stats.NanMean[float64](values))
	row("nan_mean", name, ok)
	name, ok = float(stats.Median[float64](values))
	row("median", name, ok)
	name, ok = float(stats.NanMedian[float64](values))
	row("nan_median", name, ok)
	name, ok = mode(stats.Mode[T](values))
	row("mode", name, ok)
	name, ok = mode(stats.NanMode[T](values))
	row("nan_mode", name, ok)
	name, ok = float(stats.Variance(values))
	row("variance", name, ok)
	name, ok = float(stats.NanVariance(values))
	row("nan_variance", name, ok)
	name, ok = float(stats.Std(values))
	row("std", name, ok)
	name, ok = float(stats.NanStd(values))
	row("nan_std", name, ok)

	return tw.Flush()
}
