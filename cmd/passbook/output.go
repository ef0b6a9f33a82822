package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

func printTable(out io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "no results")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func printEntries(out io.Writer, items []domain.Entry) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Service,
			item.Username,
			item.Hint,
			item.CreatedAt,
		})
	}
	printTable(out, []string{"SERVICE", "USERNAME", "HINT", "CREATED_AT (UTC)"}, rows)
}
