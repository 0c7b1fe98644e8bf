// Command kpireport prints the revenue-management metrics of a dataset file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
)

type options struct {
	file      string
	delimiter string
	year      int
	month     int
	start     string
	end       string
	columns   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "data/hotel_luxo_jan2000_dez2024.csv", "dataset CSV file")
	flag.StringVar(&opts.delimiter, "delimiter", ",", "CSV delimiter")
	flag.IntVar(&opts.year, "year", 0, "filter by year (0 = all)")
	flag.IntVar(&opts.month, "month", 0, "filter by month (0 = all)")
	flag.StringVar(&opts.start, "start", "", "start date DD/MM/YYYY (needs -end)")
	flag.StringVar(&opts.end, "end", "", "end date DD/MM/YYYY (needs -start)")
	flag.BoolVar(&opts.columns, "columns", false, "list the dataset columns and exit")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := run(os.Stdout, opts); err != nil {
		log.WithError(err).Error("kpireport failed")
		os.Exit(1)
	}
}

func (o options) filter() (models.DashboardFilter, error) {
	var f models.DashboardFilter
	if o.year != 0 {
		f.Year = &o.year
	}
	if o.month != 0 {
		f.Month = &o.month
	}
	if o.start != "" {
		d, err := services.ParseDisplayDate(o.start)
		if err != nil {
			return f, err
		}
		f.StartDate = &d
	}
	if o.end != "" {
		d, err := services.ParseDisplayDate(o.end)
		if err != nil {
			return f, err
		}
		f.EndDate = &d
	}
	return f, nil
}

func run(w io.Writer, o options) error {
	delim := []rune(o.delimiter)
	if len(delim) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", o.delimiter)
	}

	raw, err := services.LoadCSV(o.file, delim[0])
	if err != nil {
		return err
	}

	if o.columns {
		fmt.Fprintln(w, "Columns:")
		for _, c := range raw.Columns() {
			fmt.Fprintf(w, " - %s\n", c)
		}
		return nil
	}

	table, err := services.DeriveMetrics(raw)
	if err != nil {
		return err
	}
	f, err := o.filter()
	if err != nil {
		return err
	}
	view, err := services.Filter(table, f)
	if err != nil {
		return err
	}
	summary, err := services.Summarize(view)
	if err != nil {
		return err
	}
	period, err := services.PeriodSummary(view)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Hotel metrics (%d days)\n", summary.Days)
	fmt.Fprintf(tw, "  Total rooms\t%d\n", summary.TotalRooms)
	fmt.Fprintf(tw, "  Total revenue\t%.2f\n", summary.TotalRevenue)
	fmt.Fprintf(tw, "  Mean occupancy\t%.2f%%\n", summary.MeanOccupancy)
	fmt.Fprintf(tw, "  Mean ADR\t%.2f\n", summary.MeanADR)
	fmt.Fprintf(tw, "  Mean GOP\t%.2f\n", summary.MeanGOP)
	fmt.Fprintf(tw, "  Mean GOPPAR\t%.2f\n", summary.MeanGOPPAR)
	fmt.Fprintln(tw, "Period")
	fmt.Fprintf(tw, "  Occupancy\t%.2f%%\n", period.Occupancy)
	fmt.Fprintf(tw, "  ADR\t%.2f\n", period.ADR)
	return tw.Flush()
}
