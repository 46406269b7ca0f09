package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/smerge"
	"github.com/nihei9/smerge/model"
)

var diffFlags = struct {
	leftPath  *string
	rightPath *string
	language  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "diff",
		Short:   "Run only the parsing step on both input files",
		Example: `  smerge diff --left-path left.java --right-path right.java`,
		Args:    cobra.NoArgs,
		RunE:    runDiff,
	}
	diffFlags.leftPath = cmd.Flags().StringP("left-path", "l", "", "path to file in left revision")
	diffFlags.rightPath = cmd.Flags().StringP("right-path", "r", "", "path to file in right revision")
	diffFlags.language = cmd.Flags().String("language", "", "the language the files are written in; inferred from the extension if absent")
	cmd.MarkFlagRequired("left-path")
	cmd.MarkFlagRequired("right-path")
	rootCmd.AddCommand(cmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	language, err := detectLanguage(*diffFlags.language, *diffFlags.leftPath)
	if err != nil {
		return err
	}

	left, err := os.ReadFile(*diffFlags.leftPath)
	if err != nil {
		return fmt.Errorf("cannot read the left file %s: %w", *diffFlags.leftPath, err)
	}
	right, err := os.ReadFile(*diffFlags.rightPath)
	if err != nil {
		return fmt.Errorf("cannot read the right file %s: %w", *diffFlags.rightPath, err)
	}

	leftTree, rightTree, err := smerge.RunDiffScenario(language, string(left), string(right))
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, string(model.Format(leftTree)))
	fmt.Fprintln(os.Stdout, string(model.Format(rightTree)))
	return nil
}
