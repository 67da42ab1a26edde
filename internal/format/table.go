package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/colors"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right, center).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"ID":    16,
			"Type":  8,
			"Level": 12,
			"Meta":  12,
			"Title": 32,
		},
		ColumnAlignments: map[string]string{
			"Meta": "right",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Extractor extracts the cell value from an item.
	Extractor func(catalog.Item) string
}

// TableFormatter formats items in a table with headers.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a new TableFormatter with default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	cell := func(name string, value func(catalog.Item) string) TableColumn {
		width := config.ColumnWidths[name]
		align := config.ColumnAlignments[name]
		return TableColumn{
			Name:  name,
			Width: width,
			Extractor: func(item catalog.Item) string {
				return formatString(value(item), width, align)
			},
		}
	}
	columns := []TableColumn{
		cell("ID", func(i catalog.Item) string { return i.ID }),
		cell("Type", TypeBadge),
		cell("Level", LevelLabel),
		cell("Meta", func(i catalog.Item) string { return i.Meta() }),
		{
			Name:  "Title",
			Width: config.ColumnWidths["Title"],
			Extractor: func(i catalog.Item) string {
				return truncateString(Title(i), config.ColumnWidths["Title"])
			},
		},
	}
	return &TableFormatter{
		config:  config,
		columns: columns,
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatItems formats items in table format.
func (f *TableFormatter) FormatItems(title string, items []catalog.Item, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s%s (%d)%s\n", f.config.HeaderColor, title, len(items), colors.Reset); err != nil {
		return err
	}
	if len(items) == 0 {
		return writeEmpty(writer)
	}

	if f.config.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
	}
	if err := f.writeSeparator(writer); err != nil {
		return err
	}
	for _, item := range items {
		if err := f.writeRow(item, writer); err != nil {
			return err
		}
	}
	return nil
}

// FormatTracks formats tracks in table format.
func (f *TableFormatter) FormatTracks(tracks []catalog.Track, writer io.Writer) error {
	idWidth := f.config.ColumnWidths["ID"]
	titleWidth := f.config.ColumnWidths["Title"]
	if f.config.ShowHeaders {
		if _, err := fmt.Fprintf(writer, "%s%s  %s  %s%s\n", f.config.HeaderColor,
			formatString("ID", idWidth, "left"), formatString("Title", titleWidth, "left"), "Items", colors.Reset); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "%s%s  %s  %s%s\n", f.config.HeaderColor,
		makeSeparator(idWidth), makeSeparator(titleWidth), makeSeparator(5), colors.Reset); err != nil {
		return err
	}
	for _, t := range tracks {
		if _, err := fmt.Fprintf(writer, "%s  %s  %5d\n",
			formatString(t.ID, idWidth, "left"), truncateString(t.Title, titleWidth), len(t.ItemIDs)); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes the table header.
func (f *TableFormatter) writeHeader(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(col.Name, col.Width, "left"))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

// writeSeparator writes the table separator.
func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, makeSeparator(col.Width))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

// writeRow writes a single table row.
func (f *TableFormatter) writeRow(item catalog.Item, writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, col.Extractor(item))
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

// Helper functions

// formatString pads or cuts s to width runes with the given alignment.
func formatString(s string, width int, alignment string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-n) + s
	case "center":
		left := (width - n) / 2
		right := width - n - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-n)
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s + strings.Repeat(" ", width-len(runes))
	}
	if width < 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
