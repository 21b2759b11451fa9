package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderJSON writes r as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// RenderTable writes r as a two-column table.
func RenderTable(w io.Writer, r *Report) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Temperature series")
	tbl.AppendHeader(table.Row{"Statistic", "Value"})

	tbl.AppendRow(table.Row{"Readings", humanize.Comma(int64(r.Count))})
	tbl.AppendRow(table.Row{"Capacity", humanize.Comma(int64(r.Capacity))})

	if r.Summary != nil {
		tbl.AppendSeparator()
		tbl.AppendRow(table.Row{"Average", celsius(r.Summary.AvgTemp)})
		tbl.AppendRow(table.Row{"Deviation", celsius(r.Summary.DevTemp)})
		tbl.AppendRow(table.Row{"Min", celsius(r.Summary.MinTemp)})
		tbl.AppendRow(table.Row{"Max", celsius(r.Summary.MaxTemp)})
	}
	if r.ClosestToZero != nil {
		tbl.AppendRow(table.Row{"Closest to 0", celsius(*r.ClosestToZero)})
	}
	if r.ClosestToTarget != nil && r.Target != nil {
		tbl.AppendRow(table.Row{"Closest to " + humanize.Ftoa(*r.Target), celsius(*r.ClosestToTarget)})
	}

	filters := []struct {
		label  string
		filter *Filter
	}{
		{"Below", r.LessThan},
		{"Above", r.GreaterThan},
		{"Between", r.InRange},
	}
	separated := false
	for _, f := range filters {
		if f.filter == nil {
			continue
		}
		if !separated {
			tbl.AppendSeparator()
			separated = true
		}
		tbl.AppendRow(table.Row{f.label + " " + f.filter.describe(), list(f.filter.Temps)})
	}

	tbl.AppendSeparator()
	tbl.AppendRow(table.Row{"Sorted", list(r.Sorted)})

	if r.Summary == nil {
		tbl.AppendRow(table.Row{"Status", "series is empty"})
	}

	tbl.Render()
	return nil
}

func (f *Filter) describe() string {
	switch {
	case f.Bounds != nil:
		return fmt.Sprintf("(%s, %s)", humanize.Ftoa(f.Bounds.Lower), humanize.Ftoa(f.Bounds.Upper))
	case f.Threshold != nil:
		return humanize.Ftoa(*f.Threshold)
	}
	return ""
}

func celsius(v float64) string {
	return fmt.Sprintf("%.2f °C", v)
}

func list(temps []float64) string {
	if len(temps) == 0 {
		return "-"
	}
	parts := make([]string, len(temps))
	for i, t := range temps {
		parts[i] = humanize.Ftoa(t)
	}
	return strings.Join(parts, ", ")
}
