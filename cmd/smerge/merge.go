package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nihei9/smerge"
	"github.com/nihei9/smerge/model"
)

// errConflictsDetected signals a successful merge whose output embeds
// conflict markers; the process exits non-zero while still writing the file.
var errConflictsDetected = errors.New("conflicts were detected during the merge")

var mergeFlags = struct {
	basePath  *string
	leftPath  *string
	rightPath *string
	mergePath *string
	language  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "merge",
		Short:   "Run structured merge on the scenario provided",
		Example: `  smerge merge --base-path base.java --left-path left.java --right-path right.java --merge-path merged.java`,
		Args:    cobra.NoArgs,
		RunE:    runMerge,
	}
	mergeFlags.basePath = cmd.Flags().StringP("base-path", "b", "", "path to file in base revision (two-way merge when absent)")
	mergeFlags.leftPath = cmd.Flags().StringP("left-path", "l", "", "path to file in left revision")
	mergeFlags.rightPath = cmd.Flags().StringP("right-path", "r", "", "path to file in right revision")
	mergeFlags.mergePath = cmd.Flags().StringP("merge-path", "m", "", "path where the merged file should be written (default stdout)")
	mergeFlags.language = cmd.Flags().String("language", "", "the language the files are written in; inferred from the extension if absent")
	cmd.MarkFlagRequired("left-path")
	cmd.MarkFlagRequired("right-path")
	rootCmd.AddCommand(cmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	language, err := detectLanguage(*mergeFlags.language, *mergeFlags.leftPath)
	if err != nil {
		return err
	}

	base := ""
	if *mergeFlags.basePath != "" {
		data, err := os.ReadFile(*mergeFlags.basePath)
		if err != nil {
			return fmt.Errorf("cannot read the base file %s: %w", *mergeFlags.basePath, err)
		}
		base = string(data)
	}
	left, err := os.ReadFile(*mergeFlags.leftPath)
	if err != nil {
		return fmt.Errorf("cannot read the left file %s: %w", *mergeFlags.leftPath, err)
	}
	right, err := os.ReadFile(*mergeFlags.rightPath)
	if err != nil {
		return fmt.Errorf("cannot read the right file %s: %w", *mergeFlags.rightPath, err)
	}

	result, err := smerge.RunMergeScenario(language, base, string(left), string(right))
	if err != nil {
		return err
	}

	if *mergeFlags.mergePath != "" {
		if err := os.WriteFile(*mergeFlags.mergePath, []byte(result.Output), 0o644); err != nil {
			return fmt.Errorf("cannot write the merged file %s: %w", *mergeFlags.mergePath, err)
		}
	} else {
		fmt.Fprintln(os.Stdout, result.Output)
	}

	if result.HasConflicts {
		log.Warn().Msg("the merged output contains conflict markers")
		return errConflictsDetected
	}
	return nil
}

func detectLanguage(name, fallbackPath string) (model.Language, error) {
	if name != "" {
		return smerge.LanguageFromName(name)
	}
	return smerge.LanguageFromFilePath(fallbackPath)
}
