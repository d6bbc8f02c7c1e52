// internal/cli/reverse.go
package cli

import (
	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/pipeline"
	"strscan/internal/scanio"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var reverseSpec = writers.Spec[api.ReverseV1]{
	Header: []string{"source", "reversed"},
	Row:    func(r api.ReverseV1) []string { return []string{r.Source, r.Reversed} },
}

func newReverseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [TEXT...|-]",
		Short: "Reverse the characters of each input",
		Long:  "Reverses inputs character by character (Unicode scalar values).\nA multi-scalar grapheme is split apart, matching scalar-level reversal\nrather than visual reversal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, nil)
			if err != nil {
				return err
			}
			a.log.Debug("reverse scan", "inputs", len(seqs))
			out, err := pipeline.Map(cmd.Context(), pipeline.Config{Workers: a.cfg.Threads}, seqs,
				func(s scanio.Seq) (api.ReverseV1, error) {
					return api.ReverseV1{Source: s.Source, Reversed: textscan.Reverse(s.Text)}, nil
				})
			if err != nil {
				return err
			}
			return write(a, reverseSpec, out)
		},
	}
}
