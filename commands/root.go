package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/dataset"
	"github.com/perfviz/netcompare/internal/presentation/formatter"
	"github.com/perfviz/netcompare/internal/selection"
	"github.com/perfviz/netcompare/internal/selector"
	"github.com/perfviz/netcompare/internal/util"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Data and config paths
	datasetPath string
	configPath  string

	// Selection
	facetType   string
	facetIDs    []string
	filter1     string
	filter2     string
	breakdownBy string

	// Metric and time range
	metricName  string
	startDate   string
	endDate     string
	aggregation string

	// Output related
	outputFormat string
	watchMode    bool

	rootCmd = &cobra.Command{
		Use:   "netcompare [flags]",
		Short: "Internet performance comparison tool",
		Long: `netcompare computes grouped comparison series from internet-performance
measurements across locations, client ISPs, and transit ISPs.

Given a pre-fetched dataset and a facet/filter selection, it expands the
selection into every id combination, joins the combined measurement records,
groups them by facet (and optional breakdown), and reports merged series
statuses and shared chart extents.

Examples:
  netcompare --dataset data.json --facet location --facet-ids nyc,lax
  netcompare --dataset data.json --facet location --facet-ids nyc --filter1 clientIsp=AS7922,AS701
  netcompare --dataset data.json --facet clientIsp --facet-ids AS7922 \
      --filter1 location=nyc --filter2 transitIsp=AS3356 --breakdown-by filter1
  netcompare --dataset data.json --metric rtt --output json
  netcompare --dataset data.json --watch`,
		RunE: runCompare,
	}
)

const defaultConfigFile = "netcompare.yaml"

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log to stderr")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file path")
	rootCmd.Flags().StringVar(&datasetPath, "dataset", "", "Dataset JSON file (required)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config YAML file")
	rootCmd.Flags().StringVar(&facetType, "facet", "", "Facet dimension: location, clientIsp, or transitIsp")
	rootCmd.Flags().StringSliceVar(&facetIDs, "facet-ids", nil, "Selected facet entity ids")
	rootCmd.Flags().StringVar(&filter1, "filter1", "", "First filter, e.g. clientIsp=AS7922,AS701")
	rootCmd.Flags().StringVar(&filter2, "filter2", "", "Second filter, e.g. transitIsp=AS3356")
	rootCmd.Flags().StringVar(&breakdownBy, "breakdown-by", "", "Breakdown filter: filter1 or filter2")
	rootCmd.Flags().StringVar(&metricName, "metric", "", "Metric: download, upload, rtt, or retransmit")
	rootCmd.Flags().StringVar(&startDate, "start", "", "Range start (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&endDate, "end", "", "Range end (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&aggregation, "aggregation", "", "Time bucket: day or hour (inferred from range when unset)")
	rootCmd.Flags().StringVar(&outputFormat, "output", "", "Output format: table or json")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-run when the dataset file changes")

	rootCmd.MarkFlagRequired("dataset")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := util.InitLogger("debug", logFile, debug); err != nil {
		return err
	}

	explicitConfig := configPath != ""
	if configPath == "" {
		configPath = defaultConfigFile
	}
	config, err := loadConfig(configPath, explicitConfig)
	if err != nil {
		return err
	}
	applyDefaults(config)

	sel, err := buildSelection()
	if err != nil {
		return err
	}

	metric := model.MetricByValue(metricName)
	agg, err := resolveAggregation()
	if err != nil {
		return err
	}

	loader := dataset.NewLoader(datasetPath)
	store, err := loader.Load()
	if err != nil {
		return err
	}

	selectors := selector.New(store)
	output := formatter.New(outputFormat)

	render := func() error {
		return output.Format(buildReport(selectors, sel, metric, agg, config.Palette))
	}

	if err := render(); err != nil {
		return err
	}

	if !watchMode {
		return nil
	}

	watcher, err := dataset.NewWatcher(loader)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	util.LogInfof("Watching %s for changes", datasetPath)
	err = watcher.Run(ctx, func(store *dataset.Store) {
		selectors.SetStore(store)
		fmt.Printf("\nDataset reloaded (version %d)\n\n", store.Version)
		if renderErr := render(); renderErr != nil {
			util.LogErrorf("Render failed: %v", renderErr)
		}
	})
	if err == context.Canceled {
		return nil
	}
	return err
}

// buildSelection assembles the pipeline selection from the CLI flags.
func buildSelection() (selection.Selection, error) {
	sel := selection.Selection{
		FacetType:    selection.FacetTypeOrDefault(facetType),
		FacetItemIDs: facetIDs,
	}

	var err error
	if sel.Filter1, err = parseFilter(filter1); err != nil {
		return sel, err
	}
	if sel.Filter2, err = parseFilter(filter2); err != nil {
		return sel, err
	}

	allowed := selection.FilterTypes(sel.FacetType)
	for _, f := range []selection.FilterDimension{sel.Filter1, sel.Filter2} {
		if len(f.IDs) > 0 && !containsDimension(allowed, f.Type) {
			util.LogWarnf("Filter dimension %q overlaps the facet; the combination degenerates to empty", f.Type.Name())
		}
	}

	switch breakdownBy {
	case "":
		return selection.ApplyBreakdown(sel, selection.BreakdownNone), nil
	case "filter1":
		return selection.ApplyBreakdown(sel, selection.BreakdownFilter1), nil
	case "filter2":
		return selection.ApplyBreakdown(sel, selection.BreakdownFilter2), nil
	default:
		return sel, fmt.Errorf("invalid --breakdown-by %q: expected filter1 or filter2", breakdownBy)
	}
}

// parseFilter parses "dimension=id1,id2" into a filter dimension. Empty
// input yields an inactive filter.
func parseFilter(spec string) (selection.FilterDimension, error) {
	if spec == "" {
		return selection.FilterDimension{Type: model.DimensionUnknown}, nil
	}

	name, idList, found := strings.Cut(spec, "=")
	if !found {
		return selection.FilterDimension{}, fmt.Errorf("invalid filter %q: expected dimension=id,id", spec)
	}

	dim, ok := model.ParseDimension(name)
	if !ok {
		return selection.FilterDimension{}, fmt.Errorf("invalid filter dimension %q", name)
	}

	var ids []string
	for _, id := range strings.Split(idList, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return selection.FilterDimension{}, fmt.Errorf("filter %q has no ids", spec)
	}

	return selection.FilterDimension{Type: dim, IDs: ids}, nil
}

// resolveAggregation picks the time bucket: the explicit flag wins, then the
// date range infers one, then daily.
func resolveAggregation() (selection.TimeAggregation, error) {
	switch aggregation {
	case "day":
		return selection.AggregationDay, nil
	case "hour":
		return selection.AggregationHour, nil
	case "":
	default:
		return "", fmt.Errorf("invalid --aggregation %q: expected day or hour", aggregation)
	}

	if startDate == "" || endDate == "" {
		return selection.AggregationDay, nil
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", fmt.Errorf("invalid --start %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return "", fmt.Errorf("invalid --end %q: %w", endDate, err)
	}

	return selection.InferTimeAggregation(start, end), nil
}

func containsDimension(dims []model.Dimension, dim model.Dimension) bool {
	for _, d := range dims {
		if d == dim {
			return true
		}
	}
	return false
}
