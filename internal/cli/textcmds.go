// internal/cli/textcmds.go
package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/writers"
	"strscan/pkg/api"
)

var freqSpec = writers.Spec[api.FreqV1]{
	Header: []string{"source", "char", "count"},
	Row: func(f api.FreqV1) []string {
		return []string{f.Source, f.Char, strconv.Itoa(f.Count)}
	},
}

func newFreqCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "freq [TEXT...|-]",
		Short: "Per-character frequency of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, nil)
			if err != nil {
				return err
			}
			var out []api.FreqV1
			for _, s := range seqs {
				counts := textscan.CountAll(s.Text)
				chars := make([]rune, 0, len(counts))
				for r := range counts {
					chars = append(chars, r)
				}
				sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
				for _, r := range chars {
					out = append(out, api.FreqV1{Source: s.Source, Char: string(r), Count: counts[r]})
				}
			}
			return write(a, freqSpec, out)
		},
	}
}

var dedupeSpec = writers.Spec[api.DedupeV1]{
	Header: []string{"source", "deduped"},
	Row:    func(d api.DedupeV1) []string { return []string{d.Source, d.Deduped} },
}

func newDedupeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe [TEXT...|-]",
		Short: "Drop repeated characters, keeping first occurrences",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, nil)
			if err != nil {
				return err
			}
			out := make([]api.DedupeV1, 0, len(seqs))
			for _, s := range seqs {
				out = append(out, api.DedupeV1{Source: s.Source, Deduped: textscan.Dedupe(s.Text)})
			}
			return write(a, dedupeSpec, out)
		},
	}
}

var palindromeSpec = writers.Spec[api.PalindromeV1]{
	Header: []string{"source", "palindrome"},
	Row: func(p api.PalindromeV1) []string {
		return []string{p.Source, strconv.FormatBool(p.Palindrome)}
	},
}

func newPalindromeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome [TEXT...|-]",
		Short: "Check whether inputs read the same both ways",
		Long:  "Checks for palindromes ignoring case and non-alphanumeric characters,\nso \"A man, a plan, a canal: Panama\" qualifies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.collect(cmd, args, nil)
			if err != nil {
				return err
			}
			out := make([]api.PalindromeV1, 0, len(seqs))
			for _, s := range seqs {
				out = append(out, api.PalindromeV1{Source: s.Source, Palindrome: textscan.IsPalindrome(s.Text)})
			}
			return write(a, palindromeSpec, out)
		},
	}
}
