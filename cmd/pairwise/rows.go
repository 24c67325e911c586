package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/pairwise"
	"github.com/katalvlaran/pairwise/stats"
)

type rowsFlags struct {
	function  string
	catalog   string
	ensemble  string
	rows      []int
	targets   []string
	threshold float64
	workers   int
	format    string
}

func newRowsCmd(a *app) *cobra.Command {
	var f rowsFlags
	cmd := &cobra.Command{
		Use:     "rows",
		Short:   "Compute a row-by-row similarity matrix",
		Example: `  pairwise rows --catalog cat.yaml --ensemble ens.json --rows 0,3,7 --threshold 0.8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRows(cmd, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.function, "function", stats.NameSimilarity, a.functionUsage(stats.Row))
	fl.StringVar(&f.catalog, "catalog", "", "catalog file (.json or .yaml)")
	fl.StringVar(&f.ensemble, "ensemble", "", "ensemble file (.json or .yaml)")
	fl.IntSliceVar(&f.rows, "rows", nil, "comma-separated row ids (default: all rows)")
	fl.StringSliceVar(&f.targets, "target-columns", nil, "restrict similarity to these columns")
	fl.Float64Var(&f.threshold, "threshold", 0, "report connected components linked by values above this")
	fl.IntVar(&f.workers, "workers", 1, "concurrent statistic evaluations (overrides config)")
	fl.StringVar(&f.format, "format", "json", "output format: json or yaml (overrides config)")

	return cmd
}

func (a *app) runRows(cmd *cobra.Command, f *rowsFlags) error {
	cat, ens, err := a.loadModel(cmd, f.catalog, f.ensemble)
	if err != nil {
		return err
	}

	req := pairwise.RowRequest{
		Function: f.function,
		Catalog:  cat,
		Ensemble: ens,
	}
	if cmd.Flags().Changed("rows") {
		req.Rows = f.rows
	}
	if cmd.Flags().Changed("target-columns") {
		req.TargetColumns = f.targets
	}
	if cmd.Flags().Changed("threshold") {
		req.ComponentThreshold = &f.threshold
	}

	res, err := pairwise.GenerateRowMatrix(cmd.Context(), req, a.options(cmd, f.workers)...)
	if err != nil {
		return err
	}

	return write(a.out, pick(cmd, "format", f.format, a.cfg.OutputFormat), rowReport(res))
}
