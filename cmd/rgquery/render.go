package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/specterops/redisgraph/graph"
)

func renderTable(writer io.Writer, resultSet *graph.ResultSet) error {
	var (
		tableWriter = tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
		numColumns  = resultSet.NumColumns()
		row         = make([]string, numColumns)
	)

	if numColumns == 0 {
		return nil
	}

	for columnIdx := range row {
		row[columnIdx] = fmt.Sprintf("col%d", columnIdx)
	}

	if _, err := fmt.Fprintln(tableWriter, strings.Join(row, "\t")); err != nil {
		return err
	}

	for rowIdx := 0; rowIdx < resultSet.NumRows(); rowIdx++ {
		for columnIdx := range row {
			if cell, err := resultSet.Cell(rowIdx, columnIdx); err != nil {
				return err
			} else {
				row[columnIdx] = graph.FormatScalar(cell)
			}
		}

		if _, err := fmt.Fprintln(tableWriter, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tableWriter.Flush()
}

func renderStatistics(writer io.Writer, statistics graph.Statistics) error {
	for _, entry := range statistics {
		if _, err := fmt.Fprintln(writer, entry); err != nil {
			return err
		}
	}

	return nil
}
