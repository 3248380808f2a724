package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/liquify/recipe"
)

// newInspectCmd returns a command that lists the fluids of a recipe.
func newInspectCmd() *cobra.Command {
	var recipePath string
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the fluids of a recipe",
		Long: `The liquify inspect command prints every fluid of a recipe as
        "name;<volume>ml;<concentration>(mg/ml);taste", then the flavour
        tastes on hand and the total volume available.

        $ liquify inspect --recipe recipe.yaml
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.Load(recipePath)
			if err != nil {
				return err
			}
			spec, err := r.Spec()
			if err != nil {
				return errors.Wrap(err, recipePath)
			}

			out := cmd.OutOrStdout()
			for _, f := range spec.Fluids {
				fmt.Fprintln(out, f.String())
			}
			tastes := "none"
			if ts := spec.Tastes(); len(ts) > 0 {
				tastes = strings.Join(ts, ", ")
			}
			fmt.Fprintln(out, "tastes: "+tastes)
			fmt.Fprintln(out, "total volume: "+strconv.FormatFloat(spec.TotalVolume(), 'f', -1, 64)+"ml")
			return nil
		},
	}

	inspectCmd.Flags().StringVarP(&recipePath, "recipe", "r", "", "Path to the recipe file.")
	if err := inspectCmd.MarkFlagRequired("recipe"); err != nil {
		log.Fatalf("Failed to mark `recipe` flag for `inspect` subcommand as required")
	}

	return inspectCmd
}
