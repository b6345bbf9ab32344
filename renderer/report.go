// Package renderer converts analysis structs into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
)

// AnalysisMarkdown renders the full run report: dataset summary, current
// curve metrics and inversion analysis.
func AnalysisMarkdown(r *yieldcurve.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bond Yield Curve Analysis")
	doc.PlainText(fmt.Sprintf("Date range: %s", r.Range))
	doc.PlainText(fmt.Sprintf("Total observations: %d", r.Observations))

	metricsSection(doc, r.Metrics)
	inversionsSection(doc, r.Inversions)

	return doc.String()
}

// MetricsMarkdown renders the current curve metrics alone.
func MetricsMarkdown(m yieldcurve.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Yield Curve Metrics on %s", m.Date))
	metricsSection(doc, m)
	return doc.String()
}

// InversionsMarkdown renders the inversion analysis alone.
func InversionsMarkdown(is yieldcurve.InversionSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Inversion Analysis")
	inversionsSection(doc, is)
	return doc.String()
}

func metricsSection(doc *md.Markdown, m yieldcurve.Metrics) {
	doc.H2("Current Yield Curve Metrics")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Curve Slope (10Y-2Y)", m.Slope.String()},
			{"Curve Steepness (30Y-3M)", m.Steepness.String()},
			{"Short Rate", m.ShortRate.String()},
			{"Long Rate", m.LongRate.String()},
			{"Inversion Check", string(m.Condition)},
		},
	}
	doc.Table(table)
}

func inversionsSection(doc *md.Markdown, is yieldcurve.InversionSummary) {
	doc.H2("Inversion Analysis")
	doc.PlainText(fmt.Sprintf("Days with 2Y-10Y inversion: %d", is.InvertedDays))
	doc.PlainText(fmt.Sprintf("Percentage of time inverted: %.1f%%", 100*is.Fraction()))

	if is.InvertedDays == 0 {
		doc.PlainText("No inversions detected in the analyzed period.")
		return
	}
	doc.PlainText(fmt.Sprintf("Most recent inversion: %s", is.MostRecent))
	doc.PlainText(fmt.Sprintf("Deepest inversion: %s", is.Deepest))
}
