// internal/cli/count.go
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/pipeline"
	"strscan/internal/scanio"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var countSpec = writers.Spec[api.CountV1]{
	Header: []string{"source", "char", "count"},
	Row: func(c api.CountV1) []string {
		return []string{c.Source, c.Char, strconv.Itoa(c.Count)}
	},
}

func newCountCommand(a *app) *cobra.Command {
	var char string

	cmd := &cobra.Command{
		Use:   "count -c CHAR [TEXT...|-]",
		Short: "Count occurrences of a single character",
		Long:  "Counts case-sensitive occurrences of one character in each input.\nThe --char argument must be exactly one character; anything else is\nrejected rather than silently counted as a substring.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, nil)
			if err != nil {
				return err
			}
			out, err := pipeline.Map(cmd.Context(), pipeline.Config{Workers: a.cfg.Threads}, seqs,
				func(s scanio.Seq) (api.CountV1, error) {
					n, err := textscan.CountChar(s.Text, char)
					if err != nil {
						return api.CountV1{}, err
					}
					return api.CountV1{Source: s.Source, Char: char, Count: n}, nil
				})
			if err != nil {
				return err
			}
			return write(a, countSpec, out)
		},
	}
	cmd.Flags().StringVarP(&char, "char", "c", "", "character to count (exactly one) [*]")
	_ = cmd.MarkFlagRequired("char")
	return cmd
}
