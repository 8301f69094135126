package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	ustr "github.com/42atomys/go-ustr"
)

var inspectText string

var inspectCmd = &cobra.Command{
	Use:   "inspect [FILE]",
	Short: "Show a per-scalar breakdown of a text",
	Long: `Print one row per scalar with its code point, the number of units it
occupies in UTF-8, UTF-16 and UTF-32, and its display width in a terminal.
The text is read from FILE, or given directly with --text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectText, "text", "t", "", "inspect this text instead of a file")
	rootCmd.AddCommand(inspectCmd)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	cellStyle   = lipgloss.NewStyle()
)

// inspectColumns holds each column's width, in cells.
var inspectColumns = []int{6, 10, 6, 6, 6, 6, 8}

func runInspect(cmd *cobra.Command, args []string) error {
	var s *ustr.String32
	switch {
	case len(args) == 1:
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		s = ustr.FromString[uint32](doc.String())
	case cmd.Flags().Changed("text"):
		s = ustr.FromString[uint32](inspectText)
	default:
		return errors.New("inspect needs a FILE or --text")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, row(headerStyle, headerStyle, "#", "scalar", "utf-8", "utf-16", "utf-32", "width", "glyph"))

	var u8, u16, cells int
	for i, r := range s.Runes() {
		w := runewidth.RuneWidth(r)
		u8 += ustr.UnitCount[uint8](r)
		u16 += ustr.UnitCount[uint16](r)
		cells += w
		fmt.Fprintln(out, row(indexStyle, pointStyle,
			strconv.Itoa(i),
			fmt.Sprintf("U+%04X", r),
			strconv.Itoa(ustr.UnitCount[uint8](r)),
			strconv.Itoa(ustr.UnitCount[uint16](r)),
			strconv.Itoa(ustr.UnitCount[uint32](r)),
			strconv.Itoa(w),
			glyph(r)))
	}
	fmt.Fprintln(out, row(headerStyle, headerStyle,
		"total",
		strconv.Itoa(s.Length()),
		strconv.Itoa(u8),
		strconv.Itoa(u16),
		strconv.Itoa(s.Size()),
		strconv.Itoa(cells),
		""))
	return nil
}

// row renders one line of the table: the first cell with first, the second
// with second and the rest unstyled.
func row(first, second lipgloss.Style, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		style := cellStyle
		switch i {
		case 0:
			style = first
		case 1:
			style = second
		}
		rendered[i] = style.Width(inspectColumns[i]).Render(c)
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ")
}

// glyph returns a printable form of r.
func glyph(r rune) string {
	if strconv.IsPrint(r) {
		return string(r)
	}
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}
