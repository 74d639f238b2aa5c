package analytics

import "github.com/shopspring/decimal"

const (
	SeriesTotalTickets        = "Total Tkts"
	SeriesRevenue             = "Revenue"
	SeriesAverageTicketPrice  = "Avg Tkt Price"
	SeriesShowCount           = "All Shows"
	SeriesAverageSeatsPerShow = "Avg seats"
)

// Point is one labelled value of the dashboard chart.
type Point struct {
	Name  string
	Value decimal.Decimal
}

// Series returns the summary as chart points in display order.
func (s Summary) Series() []Point {
	return []Point{
		{Name: SeriesTotalTickets, Value: decimal.NewFromInt(int64(s.TotalTickets))},
		{Name: SeriesRevenue, Value: s.TotalRevenue},
		{Name: SeriesAverageTicketPrice, Value: s.AverageTicketPrice},
		{Name: SeriesShowCount, Value: decimal.NewFromInt(int64(s.ShowCount))},
		{Name: SeriesAverageSeatsPerShow, Value: s.AverageSeatsPerShow},
	}
}
