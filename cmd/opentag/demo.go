package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// demoInput is a div with one width and 45 repeated height attributes.
var demoInput = `<div width="40"` + strings.Repeat(`, height="30"`, 45) + `>`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Parse a built-in sample tag",
	Long:  "Parse a built-in div with 46 attributes, most of them duplicate height keys, and print the result.",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := cfg.parseOptions()
	if err != nil {
		return err
	}

	log.Info().Str("input", demoInput).Msg("demo input")

	tw := newTagWriter(cmd.OutOrStdout(), cfg.Format)
	defer tw.Close()
	return parseOne(tw, cmd.ErrOrStderr(), demoInput, opts)
}
