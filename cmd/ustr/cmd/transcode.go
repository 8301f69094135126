package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ustr "github.com/42atomys/go-ustr"
	"github.com/42atomys/go-ustr/internal/config"
)

const latin1 = "latin-1"

var (
	transcodeOut   string
	transcodeTo    string
	transcodeOrder string
	transcodeMark  bool
	transcodeFrom  string
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode FILE",
	Short: "Convert a file to another encoding",
	Long: `Load FILE and write it out again in the requested encoding and byte
order, optionally preceded by a byte-order mark.

Unset flags fall back to the configuration file. --to also accepts
latin-1, which writes one byte per scalar and replaces scalars above
U+00FF with 0x1A. --from latin-1 reads FILE as ISO-8859-1 instead of
detecting its mark.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscode,
}

func init() {
	transcodeCmd.Flags().StringVarP(&transcodeOut, "output", "o", "-", "output file, - for stdout")
	transcodeCmd.Flags().StringVar(&transcodeTo, "to", "", "target encoding: utf-8, utf-16, utf-32 or latin-1")
	transcodeCmd.Flags().StringVar(&transcodeOrder, "order", "", "byte order: le, be or host")
	transcodeCmd.Flags().BoolVar(&transcodeMark, "mark", false, "write a byte-order mark")
	transcodeCmd.Flags().StringVar(&transcodeFrom, "from", "", "read the input as latin-1 instead of detecting its encoding")
	rootCmd.AddCommand(transcodeCmd)
}

func runTranscode(cmd *cobra.Command, args []string) error {
	doc, err := readInput(args[0])
	if err != nil {
		return err
	}

	to := cfg.Encoding
	if transcodeTo != "" {
		to = transcodeTo
	}
	orderName := cfg.ByteOrder
	if transcodeOrder != "" {
		orderName = transcodeOrder
	}
	order, err := config.ParseByteOrder(orderName)
	if err != nil {
		return err
	}
	mark := cfg.Mark
	if cmd.Flags().Changed("mark") {
		mark = transcodeMark
	}

	var w io.Writer = cmd.OutOrStdout()
	if transcodeOut != "-" {
		f, err := os.Create(transcodeOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", transcodeOut, err)
		}
		defer f.Close()
		w = f
	}

	n, err := writeAs(w, doc, to, order, mark)
	if err != nil {
		return err
	}
	logger.Info("transcoded",
		"input", args[0],
		"from", doc.Encoding(),
		"to", to,
		"order", order,
		"mark", mark,
		"bytes", n)
	return nil
}

// readInput loads path, or decodes it as ISO-8859-1 when --from asks so.
func readInput(path string) (*ustr.Document, error) {
	if !strings.EqualFold(transcodeFrom, latin1) {
		if transcodeFrom != "" {
			return nil, fmt.Errorf("%w: input encoding %q", config.ErrInvalid, transcodeFrom)
		}
		return loadDocument(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ustr.ErrOpen, err)
	}
	return &ustr.Document{UTF8: ustr.FromNarrow[uint8](b)}, nil
}

// writeAs converts doc to the named encoding and writes it to w.
func writeAs(w io.Writer, doc *ustr.Document, to string, order ustr.ByteOrder, mark bool) (int64, error) {
	if strings.EqualFold(to, latin1) {
		n, err := w.Write(ustr.Narrow[uint32](convert[uint32](doc)))
		return int64(n), err
	}
	enc, err := config.ParseEncoding(to)
	if err != nil {
		return 0, err
	}
	switch enc {
	case ustr.EncodingUTF16:
		return ustr.Write[uint16](w, convert[uint16](doc), order, mark)
	case ustr.EncodingUTF32:
		return ustr.Write[uint32](w, convert[uint32](doc), order, mark)
	default:
		return ustr.Write[uint8](w, convert[uint8](doc), order, mark)
	}
}

// convert returns the document's text in encoding B.
func convert[B ustr.Unit](doc *ustr.Document) *ustr.String[B] {
	switch {
	case doc.UTF16 != nil:
		return ustr.Transcode[B, uint16](doc.UTF16)
	case doc.UTF32 != nil:
		return ustr.Transcode[B, uint32](doc.UTF32)
	case doc.UTF8 != nil:
		return ustr.Transcode[B, uint8](doc.UTF8)
	}
	return ustr.New[B]()
}
