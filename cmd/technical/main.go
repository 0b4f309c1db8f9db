// Command technical computes technical-analysis indicator tables and
// crossover signals over a CSV price series.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/theAfricanQuant/capstone/internal/config"
	"github.com/theAfricanQuant/capstone/internal/datasource"
	"github.com/theAfricanQuant/capstone/internal/indicator"
	"github.com/theAfricanQuant/capstone/internal/logger"
	"github.com/theAfricanQuant/capstone/internal/stats"
)

func timeBounds(cmd *cli.Command) (start, end optional.Option[time.Time]) {
	start = optional.None[time.Time]()
	end = optional.None[time.Time]()

	if cmd.IsSet("from") {
		start = optional.Some(cmd.Timestamp("from"))
	}

	if cmd.IsSet("to") {
		end = optional.Some(cmd.Timestamp("to"))
	}

	return start, end
}

// computeAction loads the price series, builds every configured indicator,
// and logs a per-indicator signal summary.
func computeAction(ctx context.Context, cmd *cli.Command) error {
	zlog, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	cfg := config.Default()

	if cmd.IsSet("config") {
		data, err := os.ReadFile(cmd.String("config"))
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		cfg, err = config.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	source, err := datasource.NewDuckDBPriceSource(cmd.String("data"), zlog)
	if err != nil {
		return fmt.Errorf("failed to open price source: %w", err)
	}
	defer func() { _ = source.Close() }()

	start, end := timeBounds(cmd)

	prices, err := source.Load(start, end)
	if err != nil {
		return fmt.Errorf("failed to load prices: %w", err)
	}

	runID := uuid.NewString()
	zlog.Info("computing indicators",
		zap.String("run_id", runID),
		zap.Int("bars", prices.Len()),
		zap.Int("indicators", len(cfg.Indicators)))

	registry := indicator.NewDefaultRegistry()
	bar := progressbar.Default(int64(len(cfg.Indicators)), "computing")

	for _, ic := range cfg.Indicators {
		ind, err := registry.Build(ic.Type, prices, ic.Params())
		if err != nil {
			return fmt.Errorf("failed to build indicator %s: %w", ic.Type, err)
		}

		logIndicator(zlog, runID, ind)

		_ = bar.Add(1)
	}

	return nil
}

func logIndicator(zlog *logger.Logger, runID string, ind indicator.Indicator) {
	f := ind.Frame()

	fields := []zap.Field{
		zap.String("run_id", runID),
		zap.String("indicator", string(ind.Name())),
		zap.Strings("columns", f.Columns()),
	}

	sg, err := indicator.AsSignalGenerator(ind)
	if err != nil {
		// Metric-only tier: no crossing events or side column.
		zlog.Info("indicator computed (metric only)", fields...)

		return
	}

	lastSide := "undefined"
	if side := f.SideAt(f.Len() - 1); side.IsSome() {
		lastSide = side.Unwrap().String()
	}

	fields = append(fields,
		zap.Int("switch_up", sg.SwitchUp().Len()),
		zap.Int("switch_down", sg.SwitchDown().Len()),
		zap.String("side", lastSide))

	zlog.Info("indicator computed", fields...)
}

// autocorrAction computes the rolling lag-k autocorrelation of the price
// series.
func autocorrAction(ctx context.Context, cmd *cli.Command) error {
	zlog, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	source, err := datasource.NewDuckDBPriceSource(cmd.String("data"), zlog)
	if err != nil {
		return fmt.Errorf("failed to open price source: %w", err)
	}
	defer func() { _ = source.Close() }()

	start, end := timeBounds(cmd)

	prices, err := source.Load(start, end)
	if err != nil {
		return fmt.Errorf("failed to load prices: %w", err)
	}

	result, err := stats.RollingAutocorr(prices, int(cmd.Int("window")), int(cmd.Int("lag")))
	if err != nil {
		return fmt.Errorf("failed to compute autocorrelation: %w", err)
	}

	for i := 0; i < result.Len(); i++ {
		if v := result.Value(i); !math.IsNaN(v) {
			fmt.Printf("%s\t%s\t%.6f\n", result.Name(), result.Time(i).Format(time.RFC3339), v)
		}
	}

	return nil
}

// schemaAction prints the JSON schema of the run configuration.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	data, err := config.Schema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Println(string(data))

	return nil
}

func main() {
	dataFlag := &cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "Path to the CSV price file with time and price columns",
		Required: true,
	}
	fromFlag := &cli.TimestampFlag{
		Name:   "from",
		Usage:  "Start of the time range in `YYYY-MM-DD` format (inclusive)",
		Config: cli.TimestampConfig{Layouts: []string{"2006-01-02", time.RFC3339}},
	}
	toFlag := &cli.TimestampFlag{
		Name:   "to",
		Usage:  "End of the time range in `YYYY-MM-DD` format (inclusive)",
		Config: cli.TimestampConfig{Layouts: []string{"2006-01-02", time.RFC3339}},
	}

	cmd := &cli.Command{
		Name:  "technical",
		Usage: "Compute technical indicators and crossover signals over a price series",
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "Compute the configured indicators and their side signals",
				Flags: []cli.Flag{
					dataFlag,
					fromFlag,
					toFlag,
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the YAML run configuration (defaults to all indicators)",
					},
				},
				Action: computeAction,
			},
			{
				Name:  "autocorr",
				Usage: "Compute the rolling lag-k autocorrelation of the price series",
				Flags: []cli.Flag{
					dataFlag,
					fromFlag,
					toFlag,
					&cli.IntFlag{
						Name:  "window",
						Usage: "Rolling window length",
						Value: stats.DefaultAutocorrWindow,
					},
					&cli.IntFlag{
						Name:  "lag",
						Usage: "Autocorrelation lag",
						Value: stats.DefaultAutocorrLag,
					},
				},
				Action: autocorrAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the run configuration",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
