package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newParametersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parameters [path]",
		Short: "List the parameter tree, or the published values of one parameter.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer a.sync()

			tree, err := a.loadParameters()
			if err != nil {
				return fmt.Errorf("failed to load parameters: %w", err)
			}

			if len(args) == 1 {
				series, ok := tree.Lookup(args[0])
				if !ok {
					return fmt.Errorf("could not find parameter %s", args[0])
				}
				return renderSeries(cmd.OutOrStdout(), series)
			}
			return renderTree(cmd.OutOrStdout(), tree, a.conf.Parameters.Options)
		},
	}
}

func renderTree(w io.Writer, tree *parameters.Tree, options []string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Path", "Selectable", "Entries", "Description"})

	var data [][]string
	for _, path := range tree.Paths() {
		series, _ := tree.Lookup(path)
		selectable := "no"
		if slices.Contains(options, path) {
			selectable = "yes"
		}
		data = append(data, []string{path, selectable, strconv.Itoa(series.Len()), series.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func renderSeries(w io.Writer, series *parameters.Series) error {
	if series.Description != "" {
		if _, err := fmt.Fprintln(w, series.Description); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Instant", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, entry := range series.Entries() {
		data = append(data, []string{
			entry.Instant.Format(constants.InstantLayout),
			strconv.FormatFloat(entry.Value, 'f', -1, 64),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
