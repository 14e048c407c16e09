// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/iwvelando/uprating-calculator/internal/calculator"
	"github.com/iwvelando/uprating-calculator/internal/uprating"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/format"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Column headers shared by the table and CSV outputs.
const (
	HeaderYear      = "Year"
	HeaderFactor    = "Uprating Factor"
	HeaderMonth     = "Source Month"
	HeaderPreRound  = "Pre-Rounded Value"
	HeaderDefaultRd = "Rounded Value"
)

// Options controls rendering.
type Options struct {
	UseColors bool
}

// Write renders result to w in the given output format.
func Write(w io.Writer, result *calculator.Result, outputFormat string, opts Options) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		return JSONFormat(w, result)
	case constants.OutputFormatCSV:
		return CsvFormat(w, result)
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, result, opts)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result *calculator.Result, opts Options) error {
	yellow := fmt.Sprint
	grey := fmt.Sprint
	if opts.UseColors {
		yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
		grey = color.New(color.FgHiBlack).SprintFunc()
	}

	title := fmt.Sprintf("--- Uprated values for %s from %d ---", result.Input.Parameter, result.Input.StartYear)
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if result.Description != "" {
		if _, err := fmt.Fprintln(w, result.Description); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{HeaderYear, HeaderFactor, HeaderMonth, HeaderPreRound, roundedHeader(result)})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range result.Rows {
		month := row.Month.String()
		if !row.Month.IsResolved() {
			month = grey(month)
		}
		data = append(data, []string{
			strconv.Itoa(row.Year),
			row.FactorDisplay,
			month,
			format.Currency(row.Value),
			format.Currency(row.Rounded),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		if _, err := fmt.Fprintln(w, yellow("warning: "+warning)); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, result *calculator.Result) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{
		strings.ToLower(HeaderYear),
		"factor",
		"month",
		"value",
		"rounded",
	}); err != nil {
		return err
	}
	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.FormatFloat(row.Factor, 'f', -1, 64),
			row.Month.String(),
			fmt.Sprintf("%.2f", row.Value),
			fmt.Sprintf("%.2f", row.Rounded),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// CsvString returns the CSV rendering of result.
func CsvString(result *calculator.Result) string {
	var b strings.Builder
	if err := CsvFormat(&b, result); err != nil {
		return ""
	}
	return b.String()
}

// JSONFormat outputs the result as indented JSON.
func JSONFormat(w io.Writer, result *calculator.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func roundedHeader(result *calculator.Result) string {
	if result.RoundedHeader != "" {
		return result.RoundedHeader
	}
	return HeaderDefaultRd
}

// LabelCounts tallies how many rows carry each label kind.
func LabelCounts(result *calculator.Result) map[uprating.LabelKind]int {
	counts := make(map[uprating.LabelKind]int)
	for _, row := range result.Rows {
		counts[row.Month.Kind]++
	}
	return counts
}
