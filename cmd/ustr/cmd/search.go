package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	ustr "github.com/42atomys/go-ustr"
)

var splitCmd = &cobra.Command{
	Use:   "split FILE DIVIDER",
	Short: "Split a file at every occurrence of a divider",
	Long: `Split the text of FILE at every non-overlapping occurrence of DIVIDER
and print one quoted piece per line. The divider is searched in the
file's own encoding.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

var matchCmd = &cobra.Command{
	Use:   "match FILE NEEDLE",
	Short: "List every occurrence of a needle in a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(matchCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	divider := ustr.Lit8(args[1])
	out := cmd.OutOrStdout()

	var n int
	switch {
	case doc.UTF16 != nil:
		n = printPieces(out, ustr.Split[uint16, uint8](doc.UTF16, divider))
	case doc.UTF32 != nil:
		n = printPieces(out, ustr.Split[uint32, uint8](doc.UTF32, divider))
	default:
		n = printPieces(out, ustr.Split[uint8, uint8](doc.UTF8, divider))
	}
	logger.Debug("split done", "divider", args[1], "pieces", n)
	return nil
}

func printPieces[U ustr.Unit](w io.Writer, pieces []ustr.View[U]) int {
	for i, p := range pieces {
		fmt.Fprintf(w, "%d\t%s\n", i, strconv.Quote(p.String()))
	}
	return len(pieces)
}

func runMatch(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	needle := ustr.Lit8(args[1])
	out := cmd.OutOrStdout()

	var n int
	switch {
	case doc.UTF16 != nil:
		n = printMatches(out, doc.UTF16, needle)
	case doc.UTF32 != nil:
		n = printMatches(out, doc.UTF32, needle)
	default:
		n = printMatches(out, doc.UTF8, needle)
	}
	fmt.Fprintf(out, "%d match(es)\n", n)
	return nil
}

func printMatches[U ustr.Unit](w io.Writer, s *ustr.String[U], needle ustr.Literal[uint8]) int {
	offsets := ustr.IndexAll[U, uint8](s, needle)
	hits := ustr.Match[U, uint8](s, needle)
	for i, off := range offsets {
		fmt.Fprintf(w, "unit %d\t%s\n", off, strconv.Quote(hits[i].String()))
	}
	return len(offsets)
}
