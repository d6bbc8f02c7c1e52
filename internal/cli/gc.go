// internal/cli/gc.go
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

var gcSpec = writers.Spec[api.GCV1]{
	Header: []string{"source", "record", "gc_percent", "length"},
	Row: func(g api.GCV1) []string {
		return []string{g.Source, g.Record, strconv.FormatFloat(g.GCPercent, 'f', 2, 64), strconv.Itoa(g.Length)}
	},
}

func newGCCommand(a *app) *cobra.Command {
	var fastaFiles []string

	cmd := &cobra.Command{
		Use:   "gc [SEQ...|-]",
		Short: "Compute the GC content of each sequence",
		Long:  "Computes (G+C)/length*100 over each input, matching G and C in either\ncase. The empty sequence yields 0. Inputs need not be valid DNA: any\nother character simply dilutes the percentage by counting toward the\nlength only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, fastaFiles)
			if err != nil {
				return err
			}
			a.log.Debug("gc scan", "inputs", len(seqs))
			out, err := pipeline.Map(cmd.Context(), pipeline.Config{Workers: a.cfg.Threads}, seqs,
				func(s scanio.Seq) (api.GCV1, error) {
					return api.GCV1{
						Source:    s.Source,
						Record:    s.Record,
						GCPercent: dna.GCContent(s.Text),
						Length:    utf8.RuneCountInString(s.Text),
					}, nil
				})
			if err != nil {
				return err
			}
			return write(a, gcSpec, out)
		},
	}
	cmd.Flags().StringArrayVarP(&fastaFiles, "fasta", "f", nil, "FASTA file(s) to scan (repeatable, '-' for stdin, gzip ok)")
	return cmd
}
