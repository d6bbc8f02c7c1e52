// internal/cli/validate.go
package cli

import (
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"strscan-core/dna"
	"strscan/internal/pipeline"
	"strscan/internal/scanio"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var validateSpec = writers.Spec[api.ValidateV1]{
	Header: []string{"source", "record", "valid", "length"},
	Row: func(v api.ValidateV1) []string {
		return []string{v.Source, v.Record, strconv.FormatBool(v.Valid), strconv.Itoa(v.Length)}
	},
}

func newValidateCommand(a *app) *cobra.Command {
	var fastaFiles []string

	cmd := &cobra.Command{
		Use:   "validate [SEQ...|-]",
		Short: "Check that sequences contain only A/T/G/C",
		Long:  "Reports whether each input is a valid DNA sequence: every character\none of A, T, G, C in either case. The empty sequence is valid. Ambiguity\ncodes such as N fail validation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, fastaFiles)
			if err != nil {
				return err
			}
			a.log.Debug("dna validation", "inputs", len(seqs))
			out, err := pipeline.Map(cmd.Context(), pipeline.Config{Workers: a.cfg.Threads}, seqs,
				func(s scanio.Seq) (api.ValidateV1, error) {
					return api.ValidateV1{
						Source: s.Source,
						Record: s.Record,
						Valid:  dna.Validate(s.Text),
						Length: utf8.RuneCountInString(s.Text),
					}, nil
				})
			if err != nil {
				return err
			}
			return write(a, validateSpec, out)
		},
	}
	cmd.Flags().StringArrayVarP(&fastaFiles, "fasta", "f", nil, "FASTA file(s) to validate (repeatable, '-' for stdin, gzip ok)")
	return cmd
}
