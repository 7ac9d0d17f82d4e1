package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsawler/reviewsense"
)

type analyzeOutput struct {
	Sentiments []reviewsense.ReviewResult `json:"sentiments"`
	Stats      reviewsense.Stats          `json:"stats"`
}

func newAnalyzeCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze reviews from a file or stdin and print JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runAnalyze(cmd.Context(), in, cmd.OutOrStdout(), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func runAnalyze(ctx context.Context, in io.Reader, out io.Writer, pretty bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read reviews: %w", err)
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	reviews := p.splitter.Split(string(raw))
	if len(reviews) == 0 {
		return errors.New("no valid reviews found")
	}

	results, err := p.adjuster.Analyze(ctx, reviews)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(analyzeOutput{Sentiments: results, Stats: reviewsense.Summarize(results)})
}
