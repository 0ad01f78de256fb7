// Package main provides a terminal demo host for the datagrid engine.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/datagrid"
	"github.com/iw2rmb/datagrid/grid"
	"github.com/iw2rmb/datagrid/internal/xlsxsource"
)

var (
	xlsxPath       string
	sheetName      string
	outPath        string
	autoAddRow     bool
	lockRows       bool
	showRowNumbers bool
	stickyRight    bool
	logPath        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "datagrid-demo",
		Short:   "Edit a spreadsheet grid in the terminal",
		Version: datagrid.Version(),
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Seed rows and columns from an .xlsx workbook")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to load (default: first sheet)")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "Workbook written on ctrl+s")
	rootCmd.Flags().BoolVar(&autoAddRow, "auto-add-row", true, "Append a row when Enter commits on the last row")
	rootCmd.Flags().BoolVar(&lockRows, "lock-rows", false, "Disable adding and deleting rows")
	rootCmd.Flags().BoolVar(&showRowNumbers, "show-row-numbers", true, "Render the row number gutter")
	rootCmd.Flags().BoolVar(&stickyRight, "sticky-right", false, "Keep the last column pinned to the right edge")
	rootCmd.Flags().StringVar(&logPath, "log", "", "Write debug logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(logrus.DebugLevel)
	}

	cols, rows := sampleData()
	if xlsxPath != "" {
		var err error
		cols, rows, err = xlsxsource.Load(xlsxPath, sheetName)
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return fmt.Errorf("%s: no columns", xlsxPath)
		}
	}

	m, err := newModel(options{
		columns:        cols,
		rows:           rows,
		autoAddRow:     autoAddRow,
		lockRows:       lockRows,
		showRowNumbers: showRowNumbers,
		stickyRight:    stickyRight,
		output:         outPath,
		sheet:          sheetName,
		log:            log,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func sampleData() ([]grid.Column, []grid.Row) {
	cols := []grid.Column{
		grid.KeyColumn("firstName", grid.TextColumn, grid.WithTitle("First"), grid.WithWidth(12)),
		grid.KeyColumn("lastName", grid.TextColumn, grid.WithTitle("Last"), grid.WithWidth(12)),
		grid.KeyColumn("age", grid.IntColumn, grid.WithTitle("Age"), grid.WithWidth(5)),
		grid.KeyColumn("email", grid.NewTextColumn(grid.TextOptions{Placeholder: "email"}), grid.WithTitle("Email"), grid.WithWidth(24)),
		grid.KeyColumn("active", grid.CheckboxColumn, grid.WithTitle("Active"), grid.WithWidth(6)),
	}
	rows := []grid.Row{
		{"firstName": "Ada", "lastName": "Lovelace", "age": int64(36), "active": true},
		{"firstName": "Alan", "lastName": "Turing", "age": int64(41), "email": "alan@example.com"},
		{"firstName": "Grace", "lastName": "Hopper", "age": int64(85), "active": true},
		{"firstName": "Edsger", "lastName": "Dijkstra", "age": int64(72)},
	}
	return cols, rows
}
