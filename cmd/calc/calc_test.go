package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recruit-kit/internal/calc"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		outputFormat, xlsxPath = "table", ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("calc %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, calc.Report{
		Title: "BDM commission",
		Rows: []calc.Row{
			{Label: "Tier", Value: "Tier 2"},
			{Label: "Commission", Value: calc.Money(20000)},
		},
	})

	out := buf.String()
	for _, want := range []string{"BDM commission", "ITEM", "Tier 2", "$20,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBDMCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out := run(t, "bdm", "--revenue", "1500000", "--gp", "0.35", "-o", "json")

		var res calc.BDMResult
		if err := json.Unmarshal([]byte(out), &res); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if res.Tier != "Tier 2" || res.Commission != 20000 {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bdm.xlsx")
		out := run(t, "bdm", "--revenue", "1500000", "--gp", "0.35", "--xlsx", path)

		if !strings.Contains(out, "$20,000.00") {
			t.Errorf("table output:\n%s", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("PK")) {
			t.Error("spreadsheet is not a zip package")
		}
	})
}
