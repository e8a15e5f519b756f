package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"standby-builder/internal/adapters/config"
	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
)

// errInvalidConfig makes the process exit non-zero after the result was printed.
var errInvalidConfig = errors.New("configuration has validation errors")

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a JSON or YAML field map against the standby rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			fields, err := loadFieldMap(cmd, config.NewFileProvider(args[0]))
			if err != nil {
				return err
			}
			result, err := a.service.Validate(cmd.Context(), fields)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if result.HasErrors() {
				return errInvalidConfig
			}
			return nil
		},
	}
}

func newRenderCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the dispatch payload for a field map without sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			fields, err := loadFieldMap(cmd, config.NewFileProvider(args[0]))
			if err != nil {
				return err
			}
			payload, err := a.service.Render(cmd.Context(), fields)
			if err != nil {
				return err
			}
			if output != "" {
				var sink ports.PayloadSink = config.NewFileProvider(output)
				return sink.SavePayload(cmd.Context(), payload)
			}
			return printJSON(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the payload to this file instead of stdout")
	return cmd
}

func newTriggerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger FILE",
		Short: "Validate a field map and dispatch it to the pipeline (dry run without GITHUB_TOKEN)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			fields, err := loadFieldMap(cmd, config.NewFileProvider(args[0]))
			if err != nil {
				return err
			}
			result, err := a.service.Trigger(cmd.Context(), fields)
			if err != nil {
				var blocked *domain.BlockedError
				if errors.As(err, &blocked) {
					if perr := printJSON(cmd.OutOrStdout(), blocked.Result); perr != nil {
						return perr
					}
					return errInvalidConfig
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func loadFieldMap(cmd *cobra.Command, src ports.FieldMapSource) (domain.FieldMap, error) {
	return src.LoadFieldMap(cmd.Context())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
