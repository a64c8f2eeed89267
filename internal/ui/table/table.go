package table

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const (
	timeFormat = "2006-01-02 15:04:05"
)

type Entry interface {
	GetLabel() string
	GetTimestamp() time.Time
}

type SortOrder int

const (
	SortDesc SortOrder = iota
	SortAsc
)

type PrintOptions struct {
	Header           string
	ShowRelativeTime bool
	Order            SortOrder
}

func PrintEntries[T Entry](entries []T, opts PrintOptions) {
	// Make a copy to avoid modifying the original slice
	sorted := make([]T, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		switch opts.Order {
		case SortAsc:
			return sorted[i].GetTimestamp().Before(sorted[j].GetTimestamp())
		default: // SortDesc
			return sorted[i].GetTimestamp().After(sorted[j].GetTimestamp())
		}
	})

	green := color.New(color.FgHiGreen).SprintfFunc()
	white := color.New(color.FgWhite).SprintfFunc()

	header := opts.Header
	if header == "" {
		header = "Label"
	}

	fmt.Printf("%s %s %s\n",
		green("%-20s", "Archived At"),
		green("%-18s", ""),
		green("%-30s", header),
	)

	for _, entry := range sorted {
		var middleColumn string
		if opts.ShowRelativeTime {
			middleColumn = "(" + humanize.Time(entry.GetTimestamp()) + ")"
		}

		fmt.Printf("%s %s %s\n",
			white("%-20s", entry.GetTimestamp().Format(timeFormat)),
			white("%-18s", middleColumn),
			white("%-30s", entry.GetLabel()),
		)
	}

	fmt.Println()
}
