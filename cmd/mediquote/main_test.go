package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// run executes the root command with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"estimate", "bmi", "plans", "schedule", "purchase", "validate", "example", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("settings"))
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mediquote dev")
}

func TestBMICommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"normal", []string{"bmi", "--height", "170", "--weight", "70"}, "BMI: 24.2 (Normal)", false},
		{"obese", []string{"bmi", "--height", "160", "--weight", "90"}, "BMI: 35.2 (Obese)", false},
		{"missing height", []string{"bmi", "--weight", "70"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestProfileFromFlags(t *testing.T) {
	cmd := estimateCmd()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--age", "42", "--height", "180", "--weight", "85", "--smoker",
		"--region", "SouthWest", "--gender", "Male", "--children", "2",
	}))

	profile := profileFromFlags(cmd.Flags())
	assert.Equal(t, domain.ApplicantProfile{
		Age:      42,
		HeightCm: 180,
		WeightKg: 85,
		IsSmoker: true,
		Region:   domain.RegionSouthwest,
		Gender:   domain.GenderMale,
		Children: 2,
	}, profile)
}

func TestQuoteInputFromCommand_SelectionOverrides(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPlan string
		wantTerm int
		wantErr  bool
	}{
		{"defaults", nil, domain.PlanStandard, 5, false},
		{"plan keeps in-range term", []string{"--plan", "premium"}, domain.PlanPremium, 5, false},
		{"plan then term", []string{"--plan", "basic", "--term", "8"}, domain.PlanBasic, 8, false},
		{"term outside plan", []string{"--plan", "basic", "--term", "15"}, "", 0, true},
		{"unknown plan", []string{"--plan", "gold"}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := estimateCmd()
			require.NoError(t, cmd.Flags().Parse(tt.args))

			input, err := quoteInputFromCommand(cmd, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			sel := input.Selection()
			assert.Equal(t, tt.wantPlan, sel.PlanID)
			assert.Equal(t, tt.wantTerm, sel.Term)
		})
	}
}

func TestQuoteInputFromCommand_TermWithoutPlan(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantTerm int
		wantMsg  string
	}{
		{"term offered by default plan", []string{"--term", "12"}, 12, ""},
		{"term only basic offers", []string{"--term", "3"}, 0, "use --plan basic"},
		{"term only premium offers", []string{"--term", "18"}, 0, "use --plan premium"},
		{"term no plan offers", []string{"--term", "25"}, 0, "not offered by any plan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := estimateCmd()
			require.NoError(t, cmd.Flags().Parse(tt.args))

			input, err := quoteInputFromCommand(cmd, nil)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPlanTerm)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PlanStandard, input.Selection().PlanID)
			assert.Equal(t, tt.wantTerm, input.Selection().Term)
		})
	}
}

func TestEstimateCommand(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predicted_premium": 18500}`))
	}))
	defer server.Close()

	out, err := run(t, "estimate", "--url", server.URL,
		"--age", "35", "--height", "170", "--weight", "70", "--gender", "female", "--children", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "HEALTH INSURANCE PREMIUM ESTIMATE")
	assert.Contains(t, out, "₹18,500  (service-provided)")
	assert.NotEmpty(t, received)
}

func TestEstimateCommand_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Invalid region"}`))
	}))
	defer server.Close()

	out, err := run(t, "estimate", "--url", server.URL,
		"--age", "35", "--height", "170", "--weight", "70", "--gender", "female")
	require.Error(t, err)
	assert.ErrorIs(t, err, errPredictionRejected)
	assert.Contains(t, err.Error(), "Invalid region")
	assert.Contains(t, out, "PREDICTION ERROR")
	assert.Equal(t, 1, strings.Count(out, "Invalid region"))
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain error", errors.New("boom"), "Error: boom\n"},
		{"rejection already printed", fmt.Errorf("%w: Invalid region", errPredictionRejected), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEstimateCommand_Fallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	out, err := run(t, "estimate", "--url", url, "--format", "json",
		"--age", "35", "--height", "170", "--weight", "70", "--gender", "male")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, string(domain.StatusFallback), decoded["status"])
}

func TestEstimateCommand_InvalidProfile(t *testing.T) {
	_, err := run(t, "estimate", "--url", "http://127.0.0.1:1/predict",
		"--age", "12", "--height", "170", "--weight", "70", "--gender", "male")
	assert.Error(t, err)
}

func TestEstimateCommand_UnknownFormat(t *testing.T) {
	_, err := run(t, "estimate", "--format", "pdf",
		"--age", "35", "--height", "170", "--weight", "70", "--gender", "male")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestPlansCommand(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{"table", "table", []string{"INSURANCE PLAN COMPARISON", "Standard Plan (base)", "Basic Plan", "Premium Plan"}},
		{"csv", "csv", []string{"Basic Plan", "Premium Plan"}},
		{"json", "json", []string{`"basePlanId": "standard"`, `"alternativeResults"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "plans", "--premium", "12500", "--format", tt.format)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPremiumFlag_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing", []string{"plans"}},
		{"not a number", []string{"plans", "--premium", "lots"}},
		{"negative", []string{"schedule", "--premium", "-1"}},
		{"unknown format", []string{"plans", "--premium", "100", "--format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestScheduleCommand(t *testing.T) {
	out, err := run(t, "schedule", "--premium", "10000", "--plan", "standard", "--term", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Standard Plan")
	assert.Contains(t, out, "Annual premium: ₹10,000")
	assert.Contains(t, out, "Term options: 5, 10, 15 years")
	assert.Contains(t, out, "10 *")
}

func TestScheduleCommand_TermOutsidePlan(t *testing.T) {
	_, err := run(t, "schedule", "--premium", "10000", "--plan", "basic", "--term", "20")
	assert.Error(t, err)
}

func TestPurchaseCommand(t *testing.T) {
	out, err := run(t, "purchase", "--premium", "10000", "--plan", "basic", "--term", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Purchase Successful!")
	assert.Contains(t, out, "Policy Number:  MHI-")
	assert.Contains(t, out, "Basic Plan")
	assert.Contains(t, out, "Term:           3 years")
	assert.Contains(t, out, "Annual Premium: ₹8,000")
}

func TestExampleAndValidateCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	out, err := run(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile is valid (plan standard, 5 years)")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("applicant:\n  age: 5\n"), 0o644))

	_, err := run(t, "validate", path)
	assert.Error(t, err)
}
