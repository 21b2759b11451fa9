package tempseries

import "fmt"

// TempSummaryStatistics is a snapshot of the main statistics of a series.
// It is computed once and does not follow later changes to the series.
type TempSummaryStatistics struct {
	AvgTemp float64 `json:"avg_temp"`
	DevTemp float64 `json:"dev_temp"`
	MinTemp float64 `json:"min_temp"`
	MaxTemp float64 `json:"max_temp"`
}

// String renders the snapshot with two decimals per value.
func (s TempSummaryStatistics) String() string {
	return fmt.Sprintf("TempSummaryStatistics { avgTemp=%.2f, devTemp=%.2f, minTemp=%.2f, maxTemp=%.2f }",
		s.AvgTemp, s.DevTemp, s.MinTemp, s.MaxTemp)
}
