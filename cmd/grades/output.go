package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

var tierColors = map[domain.Tier]*color.Color{
	domain.TierHigh: color.New(color.FgGreen),
	domain.TierMid:  color.New(color.FgYellow),
	domain.TierLow:  color.New(color.FgRed),
}

func formatGrade(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func colorGrade(value float64) string {
	return tierColors[domain.TierFor(value)].Sprint(formatGrade(value))
}

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

func printGradeRows(out io.Writer, items []domain.GradeRow) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Subject, colorGrade(item.Value), item.Date})
	}
	printTable(out, []string{"SUBJECT", "GRADE", "DATE"}, rows)
}

func printSubjects(out io.Writer, items []domain.Subject) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{strconv.FormatUint(uint64(item.ID), 10), item.Name})
	}
	printTable(out, []string{"ID", "NAME"}, rows)
}
