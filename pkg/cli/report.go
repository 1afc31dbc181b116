package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

var severityColors = map[string]*color.Color{
	"Critical": color.New(color.FgRed, color.Bold),
	"High":     color.New(color.FgMagenta),
	"Medium":   color.New(color.FgYellow),
	"Low":      color.New(color.FgGreen),
}

var (
	headingColor = color.New(color.Bold, color.Underline)
	totalColor   = color.New(color.Bold)
	warnColor    = color.New(color.FgYellow)
)

func currency(v int64) string {
	if v < 0 {
		return "-$" + humanize.Comma(-v)
	}
	return "$" + humanize.Comma(v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}

// renderReport writes a human-readable assessment report
func renderReport(w io.Writer, report *model.AssessmentReport) error {
	r := report.Result
	var buf bytes.Buffer

	title := "Risk assessment"
	if report.Name != "" {
		title += ": " + report.Name
	}
	headingColor.Fprintln(&buf, title)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Report ID\t%s\n", report.ID)
	fmt.Fprintf(tw, "Employees\t%s\n", humanize.Comma(int64(report.Profile.Employees)))
	fmt.Fprintf(tw, "Annual revenue\t%s\n", currency(int64(report.Profile.Revenue)))
	fmt.Fprintf(tw, "Insurance limit\t%s\n", currency(int64(report.Profile.InsuranceLimit)))
	fmt.Fprintf(tw, "Security score\t%d%%\n", r.SecurityScore)
	fmt.Fprintf(tw, "Risk reduction\t%d%%\n", r.RiskReduction)
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to format report")
	}

	for _, field := range types.AllInputFields() {
		if msg, ok := report.Warnings[field]; ok {
			warnColor.Fprintf(&buf, "warning: %s\n", msg)
		}
	}

	buf.WriteString("\n")
	headingColor.Fprintln(&buf, "Threat scenarios")
	if err := renderScenarios(&buf, r.Scenarios); err != nil {
		return err
	}

	buf.WriteString("\n")
	headingColor.Fprintln(&buf, "Cost breakdown")
	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, e := range r.CostBreakdown {
		fmt.Fprintf(tw, "%s\t%s\t-%.0f%%\t\n", e.Name, currency(e.AdjustedCost), e.ReductionFactor*100)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to format report")
	}

	buf.WriteString("\n")
	totalColor.Fprintf(&buf, "Total incident cost: %s\n", currency(r.TotalCost))
	totalColor.Fprintf(&buf, "Uninsured exposure:  %s\n", currency(r.UninsuredExposure))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}

// renderScenarios writes the percentile table. Names are padded before coloring since
// tabwriter would count escape sequences as cell width.
func renderScenarios(buf *bytes.Buffer, scenarios []model.ScenarioResult) error {
	names := make([]string, len(scenarios))
	width := len("Scenario")
	for i, s := range scenarios {
		names[i] = fmt.Sprintf("%s [%s]", s.Name, s.Severity)
		width = max(width, utf8.RuneCountInString(names[i]))
	}

	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, key := range types.AllPercentileKeys() {
		fmt.Fprintf(tw, "%s\t", key)
	}
	fmt.Fprintln(tw)
	for _, s := range scenarios {
		for _, v := range s.Percentiles.Values() {
			fmt.Fprintf(tw, "%s\t", currency(v))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to format scenario table")
	}

	rows := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	for i, row := range rows {
		label := "Scenario"
		var c *color.Color
		if i > 0 {
			label = names[i-1]
			c = severityColors[scenarios[i-1].Severity]
		}
		label += strings.Repeat(" ", width-utf8.RuneCountInString(label))
		if c != nil {
			label = c.Sprint(label)
		}
		buf.WriteString(label)
		buf.WriteString(row)
		buf.WriteString("\n")
	}
	return nil
}
