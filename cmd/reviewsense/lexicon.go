package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tsawler/reviewsense"
)

func newLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Compile the lexicon and report term counts and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := compileIndex()
			if err != nil {
				return err
			}
			return printLexicon(cmd.OutOrStdout(), idx)
		},
	}
}

func printLexicon(out io.Writer, idx *reviewsense.Index) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tTERMS")
	for _, c := range reviewsense.Classes {
		fmt.Fprintf(tw, "%s\t%d\n", c, len(idx.Expanded(c)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	warnings := idx.Warnings()
	if len(warnings) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\n%d warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  %s\n", w)
	}
	return nil
}
