package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"char_frequency/internal/models"
	"char_frequency/internal/service"
)

type countOptions struct {
	maxLength int
	asJSON    bool
}

// NewCountCommand creates the 'count' subcommand.
func NewCountCommand(defaultMaxLength int) *cobra.Command {
	opts := &countOptions{}
	cmd := &cobra.Command{
		Use:   "count [text...]",
		Short: "Count character occurrences in the given text.",
		Long: `Counts each character of the arguments joined by single spaces.
With no arguments the text is read from standard input as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.maxLength, "max-length", defaultMaxLength, "maximum accepted input length in characters")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as an ordered JSON object")
	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string, opts *countOptions) error {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}
		input = string(data)
	}

	svc := service.NewFrequencyService(opts.maxLength)
	result, err := svc.CalculateFrequency(input)
	if err != nil {
		if errors.Is(err, service.ErrInputTooLong) {
			return fmt.Errorf("%s: input must not exceed %d characters", ErrorColor("error"), svc.MaxLength())
		}
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("could not encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(result) == 0 {
		fmt.Fprintln(out, InfoColor("No characters to count."))
		return nil
	}

	fmt.Fprintln(out, HeaderColor(fmt.Sprintf("%d characters, %d distinct:", result.Total(), len(result))))
	renderTable(out, result)
	return nil
}

func renderTable(out io.Writer, result models.Frequencies) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Character", "Code Point", "Count"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, cc := range result {
		table.Append([]string{displayCharacter(cc.Character), fmt.Sprintf("U+%04X", cc.Character), strconv.Itoa(cc.Count)})
	}
	table.Render()
}

// displayCharacter 讓空白與控制字元在表格中可見
func displayCharacter(ch rune) string {
	switch ch {
	case ' ':
		return "' '"
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	}
	if ch < 0x20 || ch == 0x7f {
		return strconv.QuoteRune(ch)
	}
	return string(ch)
}
