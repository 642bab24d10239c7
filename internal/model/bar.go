package model

import "time"

// Bar is one daily OHLCV bar for a ticker. DailyReturn is the
// close-on-close percentage change, 0 for the first bar of a series.
type Bar struct {
	Symbol      string
	Date        time.Time
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      int64
	DailyReturn float64
}
