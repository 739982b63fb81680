package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/opentag/tagparser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [tag]",
	Short: "Parse an open tag",
	Long:  "Parse the open tag given as an argument, or one open tag per line read from stdin.",
	Example: `  opentag parse '<a href="https://adamchalmers.com" >'
  printf '<div >\n<img src="a.png">\n' | opentag parse -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := cfg.parseOptions()
	if err != nil {
		return err
	}

	tw := newTagWriter(cmd.OutOrStdout(), cfg.Format)
	defer tw.Close()

	if len(args) == 1 {
		return parseOne(tw, cmd.ErrOrStderr(), args[0], opts)
	}
	return parseLines(tw, cmd.InOrStdin(), cmd.ErrOrStderr(), opts)
}

func parseOne(tw *tagWriter, stderr io.Writer, input string, opts []tagparser.Option) error {
	tag, err := tagparser.Parse(input, opts...)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(input, err))
		return fmt.Errorf("parsing tag: %w", err)
	}
	log.Info().Str("name", tag.Name).Int("attributes", tag.Attributes.Len()).Msg("parsed tag")
	return tw.Write(tag)
}

// parseLines parses every non-blank line of r, reporting each failure and
// continuing with the next line.
func parseLines(tw *tagWriter, r io.Reader, stderr io.Writer, opts []tagparser.Option) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNo, total, failed int
	for scanner.Scan() {
		lineNo++
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		total++

		tag, err := tagparser.Parse(input, opts...)
		if err != nil {
			failed++
			fmt.Fprintf(stderr, "stdin:%d: %s\n", lineNo, diagnostic(input, err))
			continue
		}
		log.Debug().Int("line", lineNo).Str("name", tag.Name).Msg("parsed tag")
		if err := tw.Write(tag); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	log.Info().Int("tags", total).Int("failed", failed).Msg("parse complete")
	if failed > 0 {
		return fmt.Errorf("%d of %d tags failed to parse", failed, total)
	}
	return nil
}
