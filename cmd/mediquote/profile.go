package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/config"
)

func bmiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Compute BMI and its category",
		RunE: func(cmd *cobra.Command, args []string) error {
			height, _ := cmd.Flags().GetInt("height")
			weight, _ := cmd.Flags().GetInt("weight")

			bmi, err := calculation.ComputeBMI(height, weight)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI: %s (%s)\n", bmi, bmi.Category)
			fmt.Fprintln(out, bmi.Advice())
			return nil
		},
	}
	cmd.Flags().Int("height", 0, "Height in cm")
	cmd.Flags().Int("weight", 0, "Weight in kg")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			sel := input.Selection()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile is valid (plan %s, %d years)\n", sel.PlanID, sel.Term)
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example profile file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "profile.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveProfile(parser.CreateExampleProfile(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example profile written to %s\n", filename)
			return nil
		},
	}
}
