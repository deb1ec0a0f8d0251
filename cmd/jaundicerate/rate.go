package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	urlsFlag string
	feedFlag string
)

var rateCmd = &cobra.Command{
	Use:   "rate [urls...]",
	Short: "Rate a batch of articles and print JSON results",
	Long: `Rate downloads every URL concurrently and prints one JSON result per URL
in input order. URLs come from arguments, --urls, --feed, or stdin lines
when none of those are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := collectURLs(args, urlsFlag)

		if feedFlag != "" {
			links, err := application.FeedLinks(cmd.Context(), feedFlag)
			if err != nil {
				return fmt.Errorf("read feed %s: %w", feedFlag, err)
			}
			urls = append(urls, links...)
		}

		if len(urls) == 0 && feedFlag == "" {
			var err error
			urls, err = readURLs(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		if len(urls) == 0 {
			return fmt.Errorf("no urls given")
		}

		results := application.Rate(cmd.Context(), urls)
		return writeJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	rateCmd.Flags().StringVar(&urlsFlag, "urls", "", "comma-separated article URLs")
	rateCmd.Flags().StringVar(&feedFlag, "feed", "", "RSS/Atom feed whose item links are rated")
}

// collectURLs merges positional arguments with a comma-separated list.
func collectURLs(args []string, list string) []string {
	urls := make([]string, 0, len(args))
	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			urls = append(urls, arg)
		}
	}
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// readURLs reads one URL per line, skipping blanks and # comments.
func readURLs(r io.Reader) ([]string, error) {
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return nil, nil
		}
	}

	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
