package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

const (
	metricSleep = "sleep"
	metricSteps = "steps"
)

var (
	reportUsername string
	reportMetric   string
	reportDays     int
	reportEnd      string
)

// reportCmd charts sleep hours or daily steps for the last --days days.
// Days with nothing logged plot as zero.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Chart sleep hours or daily steps in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportMetric != metricSleep && reportMetric != metricSteps {
			return fmt.Errorf("invalid --metric %q (expected sleep or steps)", reportMetric)
		}
		if reportDays < 2 {
			return fmt.Errorf("--days must be at least 2")
		}
		end := time.Now()
		if reportEnd != "" {
			t, err := time.Parse(model.DateLayout, reportEnd)
			if err != nil {
				return fmt.Errorf("invalid --end %q (expected YYYY-MM-DD)", reportEnd)
			}
			end = t
		}

		ctx := cmd.Context()
		return withStore(ctx, func(s store.Store) error {
			id, err := userID(ctx, s, reportUsername)
			if err != nil {
				return err
			}
			r := reportRange(end, reportDays)
			values, err := loadMetric(ctx, s, id, reportMetric, r)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), reportMetric, reportSeries(values, end, reportDays))
		})
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportUsername, "username", "", "User to report on")
	reportCmd.Flags().StringVar(&reportMetric, "metric", metricSleep, "Metric to chart: sleep or steps")
	reportCmd.Flags().IntVar(&reportDays, "days", 14, "Number of days to chart, ending at --end")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "Last day to chart, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(reportCmd)
}

// reportRange is the inclusive key range covering days days ending at end.
func reportRange(end time.Time, days int) store.KeyRange {
	return store.KeyRange{
		From: end.AddDate(0, 0, -(days - 1)).Format(model.DateLayout),
		To:   end.Format(model.DateLayout),
	}
}

// loadMetric returns the metric's value per logged date.
func loadMetric(ctx context.Context, s store.Store, userID, metric string, r store.KeyRange) (map[string]float64, error) {
	values := make(map[string]float64)
	switch metric {
	case metricSleep:
		entries, err := store.ListAs[model.SleepEntry](ctx, s, userID, store.EntitySleep, r)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			values[e.Date] = float64(e.DurationMins) / 60
		}
	case metricSteps:
		entries, err := store.ListAs[model.ActivityEntry](ctx, s, userID, store.EntityActivity, r)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			values[e.Date] = float64(e.Steps)
		}
	}
	return values, nil
}

// reportSeries orders values oldest to newest over days days ending at end.
func reportSeries(values map[string]float64, end time.Time, days int) []float64 {
	series := make([]float64, days)
	for i := range series {
		date := end.AddDate(0, 0, i-(days-1)).Format(model.DateLayout)
		series[i] = values[date]
	}
	return series
}

func writeReport(w io.Writer, metric string, series []float64) error {
	caption := "sleep (hours)"
	if metric == metricSteps {
		caption = "steps"
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s, last %d days", caption, len(series))),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}
