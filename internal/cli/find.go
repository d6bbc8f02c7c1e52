// internal/cli/find.go
package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/pipeline"
	"strscan/internal/scanio"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var findSpec = writers.Spec[api.FindV1]{
	Header: []string{"source", "record", "pattern", "count", "positions"},
	Row: func(f api.FindV1) []string {
		pos := make([]string, len(f.Positions))
		for i, p := range f.Positions {
			pos[i] = strconv.Itoa(p)
		}
		return []string{f.Source, f.Record, f.Pattern, strconv.Itoa(f.Count), strings.Join(pos, ",")}
	},
}

func newFindCommand(a *app) *cobra.Command {
	var (
		pattern    string
		fastaFiles []string
	)

	cmd := &cobra.Command{
		Use:   "find -p PATTERN [TEXT...|-]",
		Short: "Find every occurrence of a pattern, overlaps included",
		Long:  "Scans each input for a case-sensitive pattern and reports every\nstarting position in character offsets. Matches may overlap: the scan\nresumes one character after each hit, so 'aa' occurs in 'aaaa' at 0, 1,\nand 2. An empty pattern matches nothing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, fastaFiles)
			if err != nil {
				return err
			}
			a.log.Debug("pattern scan", "inputs", len(seqs), "pattern_len", utf8.RuneCountInString(pattern))
			out, err := pipeline.Map(cmd.Context(), pipeline.Config{Workers: a.cfg.Threads}, seqs,
				func(s scanio.Seq) (api.FindV1, error) {
					pos := textscan.FindPattern(s.Text, pattern)
					if pos == nil {
						pos = []int{}
					}
					return api.FindV1{
						Source:    s.Source,
						Record:    s.Record,
						Pattern:   pattern,
						Positions: pos,
						Count:     len(pos),
					}, nil
				})
			if err != nil {
				return err
			}
			return write(a, findSpec, out)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search for [*]")
	cmd.Flags().StringArrayVarP(&fastaFiles, "fasta", "f", nil, "FASTA file(s) to scan (repeatable, '-' for stdin, gzip ok)")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}
