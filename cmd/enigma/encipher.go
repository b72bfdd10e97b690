package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/rshepherd549/enigma/machine"
	"github.com/rshepherd549/enigma/symbol"
)

func newEncipherCmd(flags *machineFlags) *cobra.Command {
	var (
		strict bool
		start  string
	)
	cmd := &cobra.Command{
		Use:     "encipher [TEXT...]",
		Aliases: []string{"e"},
		Short:   "Encipher (or decipher) text",
		Long: `Encipher joins its arguments, or reads standard input when there are none,
drops all white space and runs the letters through the configured machine.
Lower case is folded to upper case unless --strict is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, "")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				text = string(data)
			}
			text = normalise(text, strict)

			m, logger, err := flags.build(cmd)
			if err != nil {
				return err
			}
			if start != "" {
				pos, err := parsePositions(start)
				if err != nil {
					return err
				}
				m.SetPositions(pos)
			}
			logger.Info("enciphering", "machine", m.String())

			out, err := m.EncipherString(text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject lower-case letters instead of folding them")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Starting rotor positions, left to right (e.g. \"QEV\")")

	return cmd
}

// normalise removes white space and, unless strict, upper-cases the text.
func normalise(s string, strict bool) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if !strict {
		s = strings.ToUpper(s)
	}

	return s
}

// parsePositions reads one letter per rotor, leftmost rotor first.
func parsePositions(s string) ([machine.NumRotors]symbol.Letter, error) {
	var pos [machine.NumRotors]symbol.Letter
	ls, err := symbol.ParseLetters(s)
	if err != nil {
		return pos, fmt.Errorf("start positions: %w", err)
	}
	if len(ls) != len(pos) {
		return pos, fmt.Errorf("start positions: want %d letters, got %d", len(pos), len(ls))
	}
	copy(pos[:], ls)

	return pos, nil
}
