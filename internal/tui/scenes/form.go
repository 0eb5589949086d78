package scenes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

// FormField identifies one control of the applicant form
type FormField int

const (
	FieldAge FormField = iota
	FieldHeight
	FieldWeight
	FieldChildren
	FieldSmoker
	FieldRegion
	FieldGender
	fieldCount
)

// numeric text inputs, indexed by FormField
var numericFields = []struct {
	name        string
	label       string
	placeholder string
}{
	FieldAge:      {"age", "Age", "years"},
	FieldHeight:   {"height", "Height", "cm"},
	FieldWeight:   {"weight", "Weight", "kg"},
	FieldChildren: {"children", "Children", "0"},
}

var (
	keyNext   = key.NewBinding(key.WithKeys("tab", "down"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"))
	keyLeft   = key.NewBinding(key.WithKeys("left"))
	keyRight  = key.NewBinding(key.WithKeys("right"))
	keyToggle = key.NewBinding(key.WithKeys(" "))
	keySubmit = key.NewBinding(key.WithKeys("enter"))
)

// FormModel collects the applicant profile and shows a live BMI
type FormModel struct {
	inputs    []textinput.Model
	isSmoker  bool
	regionIdx int
	genderIdx int // -1 until chosen
	focused   FormField
	bmi       *domain.BMIResult
	errors    map[string]string
	pending   bool
	width     int
	height    int
}

// NewFormModel creates a form with the default region and no children
func NewFormModel() *FormModel {
	m := &FormModel{
		inputs:    make([]textinput.Model, len(numericFields)),
		genderIdx: -1,
		errors:    map[string]string{},
	}
	defaults := domain.DefaultApplicantProfile()
	for i, f := range numericFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 3
		ti.Width = 6
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[FieldChildren].SetValue(strconv.Itoa(defaults.Children))
	for i, r := range domain.Regions {
		if r == defaults.Region {
			m.regionIdx = i
		}
	}
	m.inputs[FieldAge].Focus()
	return m
}

// SetSize updates the scene dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetPending marks whether a submission is in flight
func (m *FormModel) SetPending(pending bool) {
	m.pending = pending
}

// Focused returns the focused control
func (m *FormModel) Focused() FormField {
	return m.focused
}

// BMI returns the live BMI, or nil while height or weight is unusable
func (m *FormModel) BMI() *domain.BMIResult {
	return m.bmi
}

// FieldError returns the message shown under a field, if any
func (m *FormModel) FieldError(name string) string {
	return m.errors[name]
}

// SetValidationErrors shows per-field messages from a rejected profile
func (m *FormModel) SetValidationErrors(err error) {
	m.errors = map[string]string{}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			m.errors[f.Field] = f.Message
		}
	}
}

// SetValue fills a numeric field and refreshes the live BMI
func (m *FormModel) SetValue(field FormField, value string) {
	if int(field) < len(m.inputs) {
		m.inputs[field].SetValue(value)
		m.refreshBMI()
	}
}

// SetSmoker sets the smoker toggle
func (m *FormModel) SetSmoker(smoker bool) {
	m.isSmoker = smoker
}

// SetGender selects a gender from domain.Genders
func (m *FormModel) SetGender(g domain.Gender) {
	for i, candidate := range domain.Genders {
		if candidate == g {
			m.genderIdx = i
		}
	}
}

// SetRegion selects a region from domain.Regions
func (m *FormModel) SetRegion(r domain.Region) {
	for i, candidate := range domain.Regions {
		if candidate == r {
			m.regionIdx = i
		}
	}
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *FormModel) handleKeyPress(msg tea.KeyMsg) (*FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keyNext):
		return m, m.focus((m.focused + 1) % fieldCount)

	case key.Matches(msg, keyPrev):
		return m, m.focus((m.focused + fieldCount - 1) % fieldCount)

	case key.Matches(msg, keySubmit):
		return m, m.submit()
	}

	switch m.focused {
	case FieldSmoker:
		if key.Matches(msg, keyToggle, keyLeft, keyRight) {
			m.isSmoker = !m.isSmoker
		}
		return m, nil

	case FieldRegion:
		switch {
		case key.Matches(msg, keyRight, keyToggle):
			m.regionIdx = (m.regionIdx + 1) % len(domain.Regions)
		case key.Matches(msg, keyLeft):
			m.regionIdx = (m.regionIdx + len(domain.Regions) - 1) % len(domain.Regions)
		}
		return m, nil

	case FieldGender:
		switch {
		case key.Matches(msg, keyRight, keyToggle):
			m.genderIdx = (m.genderIdx + 1) % len(domain.Genders)
		case key.Matches(msg, keyLeft):
			if m.genderIdx <= 0 {
				m.genderIdx = len(domain.Genders) - 1
			} else {
				m.genderIdx--
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	if m.focused == FieldHeight || m.focused == FieldWeight {
		m.refreshBMI()
	}
	return m, cmd
}

func (m *FormModel) focus(field FormField) tea.Cmd {
	if int(m.focused) < len(m.inputs) {
		m.inputs[m.focused].Blur()
	}
	m.focused = field
	if int(field) < len(m.inputs) {
		return m.inputs[field].Focus()
	}
	return nil
}

// refreshBMI recomputes the live BMI. Unusable input clears it rather than
// keeping the previous value.
func (m *FormModel) refreshBMI() {
	h, hErr := parseWhole(m.inputs[FieldHeight].Value())
	w, wErr := parseWhole(m.inputs[FieldWeight].Value())
	if hErr != nil || wErr != nil {
		m.bmi = nil
		return
	}
	m.bmi = calculation.RecomputeBMI(h, w)
}

// Profile builds the profile from the form. Fields that are not whole
// numbers are reported the same way as out-of-range values.
func (m *FormModel) Profile() (domain.ApplicantProfile, error) {
	var fields []domain.FieldError
	values := make([]int, len(m.inputs))
	for i, f := range numericFields {
		v, err := parseWhole(m.inputs[i].Value())
		if err != nil {
			fields = append(fields, domain.FieldError{Field: f.name, Message: "please enter a whole number"})
			continue
		}
		values[i] = v
	}

	profile := domain.ApplicantProfile{
		Age:      values[FieldAge],
		HeightCm: values[FieldHeight],
		WeightKg: values[FieldWeight],
		Children: values[FieldChildren],
		IsSmoker: m.isSmoker,
		Region:   domain.Regions[m.regionIdx],
	}
	if m.genderIdx >= 0 {
		profile.Gender = domain.Genders[m.genderIdx]
	}

	if err := profile.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Fields {
				if !hasField(fields, fe.Field) {
					fields = append(fields, fe)
				}
			}
		}
	}
	if len(fields) > 0 {
		return profile, &domain.ValidationError{Fields: fields}
	}
	return profile, nil
}

func (m *FormModel) submit() tea.Cmd {
	profile, err := m.Profile()
	if err != nil {
		m.SetValidationErrors(err)
		return nil
	}
	m.errors = map[string]string{}
	return func() tea.Msg {
		return tuimsg.SubmitProfileMsg{Profile: profile}
	}
}

func hasField(fields []domain.FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func parseWhole(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// View renders the form scene
func (m *FormModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render("Get Your Health Insurance Premium Estimate"))
	content.WriteString("\n\n")

	for i, f := range numericFields {
		content.WriteString(m.renderRow(FormField(i), f.label, m.inputs[i].View()+" "+tuistyles.HelpDescStyle.Render(f.placeholder)))
		content.WriteString(m.renderError(f.name))
	}

	smoker := "No"
	if m.isSmoker {
		smoker = "Yes"
	}
	content.WriteString(m.renderRow(FieldSmoker, "Smoker", "◂ "+smoker+" ▸"))

	content.WriteString(m.renderRow(FieldRegion, "Region", "◂ "+titleCase(string(domain.Regions[m.regionIdx]))+" ▸"))
	content.WriteString(m.renderError("region"))

	gender := "Select..."
	if m.genderIdx >= 0 {
		gender = titleCase(string(domain.Genders[m.genderIdx]))
	}
	content.WriteString(m.renderRow(FieldGender, "Gender", "◂ "+gender+" ▸"))
	content.WriteString(m.renderError("gender"))

	content.WriteString("\n")
	content.WriteString(m.renderBMI())
	content.WriteString("\n\n")

	if m.pending {
		content.WriteString(tuistyles.InfoStyle.Render("⠋ Calculating your premium..."))
	} else {
		content.WriteString(tuistyles.HelpDescStyle.Render("enter: calculate premium • tab/↑↓: move • ←→/space: change option"))
	}

	return tuistyles.BorderStyle.Render(content.String())
}

func (m *FormModel) renderRow(field FormField, label, value string) string {
	labelStyle := tuistyles.FieldLabelStyle
	marker := "  "
	if m.focused == field {
		labelStyle = tuistyles.FieldFocusedLabelStyle
		marker = "▸ "
	}
	return marker + labelStyle.Render(label) + value + "\n"
}

func (m *FormModel) renderError(name string) string {
	if msg, ok := m.errors[name]; ok {
		return "    " + tuistyles.ErrorStyle.Render(msg) + "\n"
	}
	return ""
}

func (m *FormModel) renderBMI() string {
	if m.bmi == nil {
		return tuistyles.HelpDescStyle.Render("Enter height and weight to see your BMI")
	}
	category := tuistyles.CategoryStyle(string(m.bmi.Category)).Render(string(m.bmi.Category))
	line := fmt.Sprintf("Your BMI: %s  %s", tuistyles.MetricValueStyle.Render(m.bmi.String()), category)
	advice := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Italic(true).
		Width(60).
		Render(m.bmi.Advice())
	return line + "\n" + advice
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
