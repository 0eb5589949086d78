package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/prediction"
)

// QuoteRequester fetches a base premium for a profile. *prediction.Client implements it.
type QuoteRequester interface {
	RequestQuote(ctx context.Context, profile domain.ApplicantProfile, bmi *domain.BMIResult) (domain.PremiumQuote, error)
}

// EstimateEngine runs one submission from validation to priced plans
type EstimateEngine struct {
	Quotes    QuoteRequester
	Selection domain.PlanSelection
	Logger    Logger
}

// NewEstimateEngine creates an engine that prices plans at the default selection
func NewEstimateEngine(quotes QuoteRequester) *EstimateEngine {
	return &EstimateEngine{
		Quotes:    quotes,
		Selection: domain.DefaultPlanSelection(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (e *EstimateEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Estimate validates the profile, requests a premium and derives insights and
// plan quotes. Prediction failures are folded into the returned estimate; only
// validation failures, a missing requester and a cancelled ctx are returned as errors.
func (e *EstimateEngine) Estimate(ctx context.Context, profile domain.ApplicantProfile) (*domain.Estimate, error) {
	if e.Quotes == nil {
		return nil, errors.New("estimate engine has no quote requester")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	logger := e.logger()

	est := &domain.Estimate{Profile: profile}

	bmi, err := ComputeBMI(profile.HeightCm, profile.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("compute BMI: %w", err)
	}
	est.BMI = &bmi
	logger.Debugf("BMI %s (%s) for height=%d weight=%d", bmi, bmi.Category, profile.HeightCm, profile.WeightKg)

	quote, err := e.Quotes.RequestQuote(ctx, profile, est.BMI)
	var rejected *prediction.RejectedError
	switch {
	case err == nil:
		est.Status = domain.StatusQuoted
		logger.Infof("prediction service quoted %s", quote.Amount)
	case errors.As(err, &rejected):
		est.Status = domain.StatusRejected
		est.Error = rejected.Message
		logger.Warnf("prediction rejected: %v", rejected)
		return est, nil
	case ctx.Err() != nil:
		// An abandoned request is not an outage; no demo premium is shown for it.
		logger.Debugf("prediction request abandoned: %v", err)
		return nil, fmt.Errorf("prediction request: %w", ctx.Err())
	default:
		// Any other failure, including ErrUnreachable, takes the demo path.
		logger.Errorf("prediction service unavailable, using fallback premium: %v", err)
		est.Status = domain.StatusFallback
		quote = domain.NewFallbackQuote()
		est.Warnings = append(est.Warnings, domain.WarningConnection, domain.WarningDemoMode)
	}

	est.Quote = &quote
	insights := DeriveInsights(quote.Amount, est.BMI, profile.IsSmoker)
	est.Insights = &insights
	est.Plans = QuoteAllPlans(quote.Amount, e.selection())
	return est, nil
}

func (e *EstimateEngine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *EstimateEngine) selection() domain.PlanSelection {
	if e.Selection.PlanID == "" {
		return domain.DefaultPlanSelection()
	}
	return e.Selection
}
