package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/compare"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/output"
)

// premiumFlag parses the required --premium flag
func premiumFlag(cmd *cobra.Command) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString("premium")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("--premium is required")
	}
	premium, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid premium %q: %w", raw, err)
	}
	if premium.IsNegative() {
		return decimal.Zero, fmt.Errorf("premium must not be negative, got %s", raw)
	}
	return premium, nil
}

// selectionFlags reads --plan and --term; an omitted term takes the plan minimum
func selectionFlags(cmd *cobra.Command) (domain.PlanSelection, error) {
	planID, _ := cmd.Flags().GetString("plan")
	plan, err := domain.LookupPlan(planID)
	if err != nil {
		return domain.PlanSelection{}, err
	}
	sel := domain.PlanSelection{PlanID: plan.ID, Term: plan.MinTerm}
	if cmd.Flags().Changed("term") {
		term, _ := cmd.Flags().GetInt("term")
		return calculation.SelectTerm(sel, term)
	}
	return sel, nil
}

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Compare every insurance plan for a base premium",
		RunE: func(cmd *cobra.Command, args []string) error {
			premium, err := premiumFlag(cmd)
			if err != nil {
				return err
			}
			term, _ := cmd.Flags().GetInt("term")
			base, _ := cmd.Flags().GetString("base")
			with, _ := cmd.Flags().GetString("with")
			format, _ := cmd.Flags().GetString("format")

			_, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			engine := compare.NewCompareEngine()
			engine.Logger = logger

			options := compare.CompareOptions{BasePlanID: base, Term: term}
			if with != "" {
				for _, id := range strings.Split(with, ",") {
					options.PlanIDs = append(options.PlanIDs, strings.TrimSpace(id))
				}
			}

			compSet, err := engine.Compare(premium, options)
			if err != nil {
				return err
			}

			var rendered string
			switch format {
			case "table":
				rendered = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				rendered = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				rendered, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				rendered, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				rendered += "\n"
			default:
				return fmt.Errorf("unsupported format %q (table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().String("premium", "", "Base annual premium (required)")
	cmd.Flags().Int("term", domain.DefaultTerm, "Requested term in years, reset per plan when out of range")
	cmd.Flags().String("base", domain.PlanStandard, "Plan the others are compared against")
	cmd.Flags().String("with", "", "Comma-separated plans to compare (default: all)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the premium and claimable schedule for one plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			premium, err := premiumFlag(cmd)
			if err != nil {
				return err
			}
			sel, err := selectionFlags(cmd)
			if err != nil {
				return err
			}

			quote, err := calculation.PlanQuote(premium, sel)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatPlanQuote(quote))
			return nil
		},
	}

	cmd.Flags().String("premium", "", "Base annual premium (required)")
	cmd.Flags().String("plan", domain.DefaultPlanID, "Plan (basic, standard, premium)")
	cmd.Flags().Int("term", 0, "Policy term in years (default: plan minimum)")
	return cmd
}

func purchaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Simulate buying a plan; nothing is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			premium, err := premiumFlag(cmd)
			if err != nil {
				return err
			}
			sel, err := selectionFlags(cmd)
			if err != nil {
				return err
			}

			confirmation, err := calculation.NewPurchaser().Purchase(premium, sel)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatConfirmation(confirmation))
			return nil
		},
	}

	cmd.Flags().String("premium", "", "Base annual premium (required)")
	cmd.Flags().String("plan", domain.DefaultPlanID, "Plan (basic, standard, premium)")
	cmd.Flags().Int("term", 0, "Policy term in years (default: plan minimum)")
	return cmd
}
