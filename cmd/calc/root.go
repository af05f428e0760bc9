package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"recruit-kit/internal/calc"
)

var (
	outputFormat string
	xlsxPath     string
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Recruitment calculators",
	Long: `calc runs the recruitment calculators from the command line:

  - contractor margins (PAYG or company engaged)
  - permanent placement fees
  - BDM and recruiter commission
  - working days between two dates, net of public holidays`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "table", "output format: table or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&xlsxPath, "xlsx", "", "also write the result to this spreadsheet file",
	)

	rootCmd.AddCommand(contractorCmd, fteCmd, bdmCmd, recruiterCmd, workdaysCmd)
}

// emit prints a calculator result and writes the spreadsheet if requested.
func emit(cmd *cobra.Command, result calc.Reporter) error {
	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	case "table", "":
		printReport(out, result.Report())
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	if xlsxPath == "" {
		return nil
	}
	data, err := calc.ExportXLSX(result.Report())
	if err != nil {
		return err
	}
	if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", xlsxPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", xlsxPath)
	return nil
}

func printReport(w io.Writer, r calc.Report) {
	fmt.Fprintln(w, r.Title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item", "Value"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, row := range r.Rows {
		table.Append([]string{row.Label, calc.FormatValue(row.Value)})
	}
	table.Render()
}
