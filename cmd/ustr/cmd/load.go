package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadQuiet bool

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Load a file and describe its encoding",
	Long: `Load a file, detect its byte-order mark and print the resulting
encoding, unit count and scalar count followed by the normalized text.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVarP(&loadQuiet, "quiet", "q", false, "print the summary only")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mark:     %s\n", doc.Mark)
	fmt.Fprintf(out, "encoding: %s\n", doc.Encoding())
	fmt.Fprintf(out, "units:    %d\n", doc.Size())
	fmt.Fprintf(out, "scalars:  %d\n", doc.Length())
	if !loadQuiet {
		fmt.Fprintln(out)
		fmt.Fprint(out, doc.String())
	}
	return nil
}
