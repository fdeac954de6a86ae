// Command routespan runs the route optimizer end to end: read a node CSV,
// build the distance matrix and bounds, construct a seed route, improve it
// with the selected driver, and print the canonical report.
//
// Configuration comes from flags, with .env/environment fallbacks for the
// paths the data pipeline conventionally sets:
//
//	DATA_NODES_FILEPATH  default for --nodes
//	OUTPUT_DIR           default directory for --out
//	LOG_LEVEL            logrus level when --verbose is not given
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routespan/dataio"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
	"github.com/katalvlaran/routespan/report"
	"github.com/katalvlaran/routespan/search"
)

var (
	nodesPath     string
	algoName      string
	outPath       string
	seed          int64
	maxIterations int
	maxSeconds    float64
	initTemp      float64
	coolingRate   float64
	minTemp       float64
	removalFrac   float64
	historyLen    int
	weightDecay   float64
	progressEvery int
	verbose       bool
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "routespan",
		Short:        "Compute near-optimal constrained routes minimizing L·Δ + D",
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().StringVarP(&nodesPath, "nodes", "n", os.Getenv("DATA_NODES_FILEPATH"), "path to node CSV (id,x,y)")
	root.Flags().StringVarP(&algoName, "algo", "a", "local", "improver: local | anneal | alns")
	root.Flags().StringVarP(&outPath, "out", "o", "", "write the report to this file (default: stdout only)")
	root.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = fixed default stream)")
	root.Flags().IntVar(&maxIterations, "max-iterations", 10000, "iteration budget (0 = unlimited)")
	root.Flags().Float64Var(&maxSeconds, "max-seconds", 0, "wall-clock budget in seconds (0 = unlimited)")
	root.Flags().Float64Var(&initTemp, "init-temp", 1000, "annealing start temperature")
	root.Flags().Float64Var(&coolingRate, "cooling", 0.995, "annealing cooling rate in (0,1)")
	root.Flags().Float64Var(&minTemp, "min-temp", 1e-3, "annealing temperature floor")
	root.Flags().Float64Var(&removalFrac, "removal-fraction", 0.2, "ALNS interior removal fraction")
	root.Flags().IntVar(&historyLen, "history", 50, "ALNS late-acceptance history length")
	root.Flags().Float64Var(&weightDecay, "decay", 0.1, "ALNS weight decay in (0,1]")
	root.Flags().IntVar(&progressEvery, "progress-every", 500, "log progress every N iterations (0 = off)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	configureLogging()

	if nodesPath == "" {
		return fmt.Errorf("no node CSV: pass --nodes or set DATA_NODES_FILEPATH")
	}

	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}

	nodes, err := dataio.ReadNodesFile(nodesPath)
	if err != nil {
		return err
	}
	log.WithField("nodes", len(nodes)).Info("parsed node CSV")

	m, err := matrix.New(nodes)
	if err != nil {
		return err
	}
	bounds := matrix.EstimateBounds(m)
	ev := eval.New(m)
	log.WithFields(log.Fields{
		"lower":  bounds.Lower,
		"upper":  bounds.Upper,
		"scaleL": ev.ScaleL(),
	}).Info("instance bounds")

	opts := search.DefaultOptions()
	opts.Seed = seed
	opts.MaxIterations = maxIterations
	opts.MaxDuration = time.Duration(maxSeconds * float64(time.Second))
	opts.InitTemp = initTemp
	opts.CoolingRate = coolingRate
	opts.MinTemp = minTemp
	opts.RemovalFraction = removalFrac
	opts.HistoryLength = historyLen
	opts.WeightDecay = weightDecay

	res, err := search.Solve(nodes, m, algo, opts, progressLogger())
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"algo":       algo.String(),
		"iterations": res.Iterations,
		"duration":   res.Duration.Round(time.Millisecond).String(),
		"stopped":    res.Stopped.String(),
		"objective":  res.Metrics.Objective,
	}).Info("search finished")

	fmt.Println(report.Render(res))

	if outPath != "" {
		target := outPath
		if dir := os.Getenv("OUTPUT_DIR"); dir != "" && !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		if err := report.WriteFile(res, target); err != nil {
			return err
		}
	}

	return nil
}

// progressLogger samples the iteration stream: improvements always log,
// everything else only every --progress-every boundaries.
func progressLogger() search.Progress {
	if progressEvery <= 0 {
		return nil
	}

	return search.ProgressFunc(func(it search.Iteration) {
		if !it.Improved && (it.Index+1)%progressEvery != 0 {
			return
		}
		entry := log.WithFields(log.Fields{
			"iteration": it.Index,
			"current":   it.Current,
			"best":      it.Best,
		})
		if it.Improved {
			entry.Info("improved")
		} else {
			entry.Debug("progress")
		}
	})
}

func configureLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)

		return
	}
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)

		return
	}
	log.SetLevel(log.InfoLevel)
}
