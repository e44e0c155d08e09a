package chem

import (
	"sort"
	"time"
)

// StockItem is the reagent view the inventory projections consume. ID is
// opaque to this package and carried through for the caller.
type StockItem struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Quantity float64    `json:"quantity"`
	Unit     string     `json:"unit"`
	Location string     `json:"location"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

// ExpiringItem is a StockItem annotated with its distance to expiry.
type ExpiringItem struct {
	StockItem
	DaysToExpiry int `json:"days_to_expiry"`
}

// ExpiringReagents selects items whose expiry falls inside the inclusive
// window [today, today+windowDays], ascending by expiry date, together with
// a bar series of days-to-expiry per reagent. Comparison is at calendar-day
// granularity; items without an expiry date are skipped.
func ExpiringReagents(items []StockItem, today time.Time, windowDays int) ([]ExpiringItem, *PlotSeries) {
	out := make([]ExpiringItem, 0, len(items))
	for _, it := range items {
		if it.Expiry == nil {
			continue
		}
		days := daysBetween(today, *it.Expiry)
		if days < 0 || days > windowDays {
			continue
		}
		out = append(out, ExpiringItem{StockItem: it, DaysToExpiry: days})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Expiry.Equal(*out[j].Expiry) {
			return out[i].Expiry.Before(*out[j].Expiry)
		}
		return out[i].Name < out[j].Name
	})

	series := &PlotSeries{
		Title:  "Reagents Expiring Soon",
		Kind:   PlotBar,
		XLabel: "Reagent",
		YLabel: "Days Until Expiry",
		Points: make([]PlotPoint, 0, len(out)),
	}
	for i, it := range out {
		series.Points = append(series.Points, PlotPoint{
			Label: it.Name,
			X:     float64(i),
			Y:     float64(it.DaysToExpiry),
		})
	}
	return out, series
}

// LowStockReagents selects items with quantity strictly below threshold,
// ascending by quantity. The threshold is unit-agnostic.
func LowStockReagents(items []StockItem, threshold float64) []StockItem {
	out := make([]StockItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < threshold {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// daysBetween counts whole calendar days from one date to another,
// ignoring the time of day and zone of either.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
