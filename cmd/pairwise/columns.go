package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ensemble"
	"github.com/katalvlaran/pairwise/pairwise"
	"github.com/katalvlaran/pairwise/stats"
	"github.com/katalvlaran/pairwise/table"
)

var errCatalogRequired = errors.New("a catalog file is required (--catalog or config \"catalog\")")

type columnsFlags struct {
	function  string
	catalog   string
	ensemble  string
	table     string
	columns   []string
	threshold float64
	workers   int
	format    string
}

func newColumnsCmd(a *app) *cobra.Command {
	var f columnsFlags
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Compute a column-by-column matrix and reorder it by single-linkage clustering",
		Example: `  pairwise columns --function "dependence probability" --catalog cat.yaml --ensemble ens.json --threshold 0.5
  pairwise columns --function correlation --catalog cat.yaml --table data.csv --columns age,income`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runColumns(cmd, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.function, "function", stats.NameDependenceProbability, a.functionUsage(stats.Column))
	fl.StringVar(&f.catalog, "catalog", "", "catalog file (.json or .yaml)")
	fl.StringVar(&f.ensemble, "ensemble", "", "ensemble file (.json or .yaml)")
	fl.StringVar(&f.table, "table", "", "CSV data file with a header row")
	fl.StringSliceVar(&f.columns, "columns", nil, "comma-separated column names (default: all, catalog order)")
	fl.Float64Var(&f.threshold, "threshold", 0, "report connected components linked by values above this")
	fl.IntVar(&f.workers, "workers", 1, "concurrent statistic evaluations (overrides config)")
	fl.StringVar(&f.format, "format", "json", "output format: json or yaml (overrides config)")

	return cmd
}

func (a *app) runColumns(cmd *cobra.Command, f *columnsFlags) error {
	cat, ens, err := a.loadModel(cmd, f.catalog, f.ensemble)
	if err != nil {
		return err
	}
	var tb *table.Table
	if path := pick(cmd, "table", f.table, a.cfg.TablePath); path != "" {
		if tb, err = table.LoadCSV(path, cat); err != nil {
			return err
		}
	}

	req := pairwise.ColumnRequest{
		Function:  f.function,
		Catalog:   cat,
		Ensemble:  ens,
		Table:     tb,
		MISamples: a.cfg.MISamples,
	}
	if cmd.Flags().Changed("columns") {
		req.ColumnNames = f.columns
	}
	if cmd.Flags().Changed("threshold") {
		req.ComponentThreshold = &f.threshold
	}

	res, err := pairwise.GenerateColumnMatrix(cmd.Context(), req, a.options(cmd, f.workers)...)
	if err != nil {
		return err
	}

	return write(a.out, pick(cmd, "format", f.format, a.cfg.OutputFormat), columnReport(res))
}

// loadModel reads the catalog (required) and the ensemble (when a path is known).
func (a *app) loadModel(cmd *cobra.Command, catalogFlag, ensembleFlag string) (*catalog.Catalog, *ensemble.Ensemble, error) {
	catPath := pick(cmd, "catalog", catalogFlag, a.cfg.CatalogPath)
	if catPath == "" {
		return nil, nil, errCatalogRequired
	}
	cat, err := catalog.Load(catPath)
	if err != nil {
		return nil, nil, err
	}
	var ens *ensemble.Ensemble
	if path := pick(cmd, "ensemble", ensembleFlag, a.cfg.EnsemblePath); path != "" {
		if ens, err = ensemble.Load(path); err != nil {
			return nil, nil, err
		}
	}

	return cat, ens, nil
}

func (a *app) options(cmd *cobra.Command, workersFlag int) []pairwise.Option {
	workers := a.cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = workersFlag
	}

	return []pairwise.Option{
		pairwise.WithWorkers(max(workers, 1)),
		pairwise.WithLogger(a.logger),
		pairwise.WithResolver(a.resolver),
	}
}
