package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/config"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/output"
	"github.com/rgehrsitz/mediquote/internal/prediction"
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [profile-file]",
		Short: "Estimate the annual premium for an applicant",
		Long: `Estimate the annual premium for an applicant described by a YAML profile
or by flags. The prediction service is called once; when it cannot be
reached a demo premium is shown instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := quoteInputFromCommand(cmd, args)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			settings, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if url, _ := cmd.Flags().GetString("url"); url != "" {
				settings.PredictionURL = url
			}

			client := prediction.NewClient(settings.PredictionURL, prediction.WithTimeout(settings.RequestTimeout))
			engine := calculation.NewEstimateEngine(client)
			engine.Selection = input.Selection()
			engine.SetLogger(logger)

			logger.Debugf("requesting premium from %s", client.URL())
			tracker := prediction.NewTracker()
			ticket, ctx := tracker.Begin(cmd.Context())
			defer tracker.Complete(ticket)
			est, err := engine.Estimate(ctx, input.Applicant)
			if err != nil {
				return err
			}
			est.SubmissionID = ticket.String()

			switch format {
			case "csv", "html":
				filename, err := output.WriteFormatted(formatter, est, format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Estimate written to %s\n", filename)
			default:
				data, err := formatter.Format(est)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			}

			if est.Status == domain.StatusRejected {
				// The report above already carries the server message.
				return fmt.Errorf("%w: %s", errPredictionRejected, est.Error)
			}
			return nil
		},
	}

	addProfileFlags(cmd.Flags())
	cmd.Flags().String("plan", "", "Plan to price in detail (basic, standard, premium)")
	cmd.Flags().Int("term", 0, "Policy term in years, checked against --plan (standard when omitted)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, html)")
	cmd.Flags().String("url", "", "Prediction endpoint, overriding settings")
	return cmd
}

// addProfileFlags registers the applicant fields as flags
func addProfileFlags(fs *pflag.FlagSet) {
	fs.Int("age", 0, "Age in years (18-100)")
	fs.Int("height", 0, "Height in cm (100-250)")
	fs.Int("weight", 0, "Weight in kg (30-300)")
	fs.Bool("smoker", false, "Applicant smokes")
	fs.String("region", string(domain.RegionNortheast), "Region (northeast, southeast, southwest, northwest)")
	fs.String("gender", "", "Gender (male, female, other)")
	fs.Int("children", 0, "Number of children (0-10)")
}

// profileFromFlags builds an applicant from the profile flags
func profileFromFlags(fs *pflag.FlagSet) domain.ApplicantProfile {
	age, _ := fs.GetInt("age")
	height, _ := fs.GetInt("height")
	weight, _ := fs.GetInt("weight")
	smoker, _ := fs.GetBool("smoker")
	region, _ := fs.GetString("region")
	gender, _ := fs.GetString("gender")
	children, _ := fs.GetInt("children")

	return domain.ApplicantProfile{
		Age:      age,
		HeightCm: height,
		WeightKg: weight,
		IsSmoker: smoker,
		Region:   domain.Region(strings.ToLower(region)),
		Gender:   domain.Gender(strings.ToLower(gender)),
		Children: children,
	}
}

// errPredictionRejected marks a rejection whose message has already been printed
var errPredictionRejected = errors.New("prediction rejected")

// termError names the plans that do offer term when the selected one does not
func termError(sel domain.PlanSelection, term int, err error) error {
	if !errors.Is(err, domain.ErrInvalidPlanTerm) {
		return fmt.Errorf("term %d: %w", term, err)
	}
	var offering []string
	for _, plan := range domain.PlanCatalog() {
		if plan.TermInRange(term) {
			offering = append(offering, plan.ID)
		}
	}
	if len(offering) == 0 {
		return fmt.Errorf("term %d is not offered by any plan: %w", term, err)
	}
	return fmt.Errorf("term %d is not offered by the %s plan, use --plan %s: %w",
		term, sel.PlanID, strings.Join(offering, " or --plan "), err)
}

// quoteInputFromCommand loads the profile file when given, otherwise reads the
// flags. --plan and --term override the file's selection.
func quoteInputFromCommand(cmd *cobra.Command, args []string) (*config.QuoteInput, error) {
	var input *config.QuoteInput
	if len(args) == 1 {
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		input = loaded
	} else {
		input = &config.QuoteInput{Applicant: profileFromFlags(cmd.Flags())}
	}

	sel := input.Selection()
	if cmd.Flags().Changed("plan") {
		planID, _ := cmd.Flags().GetString("plan")
		next, err := calculation.SelectPlan(sel, planID)
		if err != nil {
			return nil, err
		}
		sel = next
	}
	if cmd.Flags().Changed("term") {
		term, _ := cmd.Flags().GetInt("term")
		next, err := calculation.SelectTerm(sel, term)
		if err != nil {
			return nil, termError(sel, term, err)
		}
		sel = next
	}
	input.Plan = &sel
	return input, nil
}
