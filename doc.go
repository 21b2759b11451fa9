// Package tempstats provides statistics over a series of temperature readings.
//
// Readings are degrees Celsius and may not be lower than absolute zero
// (-273 °C). A series validates every batch before storing it, grows as
// readings are appended and answers aggregate queries: average, population
// standard deviation, minimum, maximum, the reading closest to a target,
// threshold and range filters, and a sorted copy.
//
// # Quick Start
//
//	series, err := tempseries.NewFromTemps([]float64{3.0, -5.0, 1.0, 5.0})
//	if err != nil {
//	    return err
//	}
//	series.AddTemps(7.5)
//	summary, _ := series.SummaryStatistics()
//	fmt.Println(summary)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - tempseries: the series type, its queries and the summary snapshot
//   - cmd/tempstats: command line tool (summary, analyze, serve, version)
//   - internal/readings: CSV and argument parsing
//   - internal/report: table and JSON reports
//   - internal/services, internal/handlers, internal/router: HTTP API
//   - internal/config, internal/logging: configuration and structured logging
package tempstats
