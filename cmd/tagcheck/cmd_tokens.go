package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/tagcheck/lint"
	"github.com/dhamidi/tagcheck/markup"
	"github.com/spf13/cobra"
)

func newTokensCmd(globals *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tag tokens found in a file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, globals)
			if err != nil {
				return err
			}
			return runTokens(cmd.OutOrStdout(), args[0], asJSON, cfg.MarkupOptions())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print tokens and findings as JSON")
	cmd.Flags().StringSlice("raw-text", nil, "extra elements whose content is not scanned for tags")
	cmd.Flags().StringSlice("void", nil, "extra elements that never take a closing tag")

	return cmd
}

func runTokens(w io.Writer, path string, asJSON bool, opts []markup.Option) error {
	var (
		content []byte
		err     error
	)
	if path == lint.Stdin {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result, err := markup.Validate(string(content), opts...)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}

	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, tag := range result.Tags {
		fmt.Fprintln(w, tag)
	}
	if err := result.Err(); err != nil {
		log.Infof("%s: %s", path, err)
	}
	return nil
}
