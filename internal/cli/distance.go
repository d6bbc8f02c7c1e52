// internal/cli/distance.go
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var distanceSpec = writers.Spec[api.DistanceV1]{
	Header: []string{"a", "b", "levenshtein", "lcs", "lcs_length"},
	Row: func(d api.DistanceV1) []string {
		return []string{d.A, d.B, strconv.Itoa(d.Levenshtein), d.LCS, strconv.Itoa(d.LCSLength)}
	},
}

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Edit distance and longest common subsequence of two inputs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lcs := textscan.LCS(args[0], args[1])
			out := []api.DistanceV1{{
				A:           args[0],
				B:           args[1],
				Levenshtein: textscan.Levenshtein(args[0], args[1]),
				LCS:         lcs,
				LCSLength:   len([]rune(lcs)),
			}}
			return write(a, distanceSpec, out)
		},
	}
}
