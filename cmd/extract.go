package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openbiblio/authormail/output"
	"github.com/openbiblio/authormail/source"
)

var (
	inputFile    string
	outputFile   string
	outputFormat string
	strictMatch  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [source]",
	Short: "Extract author contacts from a bibliographic export",
	Long: `Extract (title, author, email) triples from a bibliographic export file.

The source argument selects the parser (see "authormail sources"). When it is
omitted the source is detected from the input content.

Input is read from --input or stdin; output is written to --output or stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := readInput()
	if err != nil {
		return err
	}

	var parser source.Parser
	if len(args) == 1 {
		parser, err = source.GetParser(args[0])
		if err != nil {
			return err
		}
	} else {
		detected, err := source.DetectFromContent(peek(data))
		if err != nil {
			return err
		}
		slog.Info("detected source", "source", detected.Name())
		parser, err = source.GetParser(detected.Name())
		if err != nil {
			return err
		}
	}

	opts := source.NewParseOptions()
	opts.Strict = strictMatch || viper.GetBool("strict")
	opts.SourceName = inputFile

	result, err := source.Run(parser, bytes.NewReader(data), opts)
	if err != nil {
		return err
	}
	slog.Debug("parse complete",
		"source", parser.Name(),
		"processed", result.TotalProcessed,
		"extracted", len(result.Records))

	w, closeFn, err := openOutput()
	if err != nil {
		return err
	}
	defer closeFn()

	switch outputFormat {
	case "csv":
		return output.WriteCSV(w, result.Records)
	case "table":
		return output.WriteHuman(w, result)
	default:
		return fmt.Errorf("unknown output format: %s (use csv or table)", outputFormat)
	}
}

func readInput() ([]byte, error) {
	if inputFile == "" || inputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputFile, err)
	}
	return data, nil
}

func openOutput() (io.Writer, func(), error) {
	if outputFile == "" || outputFile == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", outputFile, err)
	}
	return f, func() { f.Close() }, nil
}

// peek returns the detection window of the input.
func peek(data []byte) []byte {
	const window = 4096
	if len(data) > window {
		return data[:window]
	}
	return data
}

func init() {
	extractCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file (default: stdin)")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().StringVar(&outputFormat, "format", "csv", "output format: csv or table")
	extractCmd.Flags().BoolVar(&strictMatch, "strict", false, "never guess an author when no match evidence exists")
}
