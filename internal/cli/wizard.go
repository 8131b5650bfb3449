package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
	"github.com/alexanderramin/scotty/internal/domain"
)

// huhTheme returns a huh theme using the formatter's Gruvbox palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers holds the raw form values before they are applied.
type wizardAnswers struct {
	Interests string
	Past      []string
	Hours     string
	Rating    string
}

func newWizardAnswers(req domain.RecommendationRequest) *wizardAnswers {
	return &wizardAnswers{
		Interests: req.Interests,
		Past:      append([]string(nil), req.PastCourses...),
		Hours:     newHoursValue(&req.Hours).String(),
		Rating:    newRatingValue(&req.Rating).String(),
	}
}

// apply copies validated answers into req.
func (a *wizardAnswers) apply(req *domain.RecommendationRequest) error {
	req.Interests = strings.TrimSpace(a.Interests)
	req.PastCourses = a.Past
	if err := newHoursValue(&req.Hours).Set(a.Hours); err != nil {
		return err
	}
	return newRatingValue(&req.Rating).Set(a.Rating)
}

// recommendForm asks for everything the query needs. The past-course
// picker is skipped when the catalog is empty.
func recommendForm(labels []string, a *wizardAnswers) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Title("Describe your interests").
			Description("Topics, fields or goals, e.g. machine learning and robotics").
			Value(&a.Interests).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errMissingInterests
				}
				return nil
			}),
	}
	if len(labels) > 0 {
		options := make([]huh.Option[string], len(labels))
		for i, l := range labels {
			options[i] = huh.NewOption(l, l)
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Courses you've already taken").
			Options(options...).
			Value(&a.Past))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Weekly hours (min-max)").
			Value(&a.Hours).
			Validate(func(s string) error {
				var r domain.HoursRange
				return newHoursValue(&r).Set(s)
			}),
		huh.NewInput().
			Title("Course rating (min-max)").
			Value(&a.Rating).
			Validate(func(s string) error {
				var r domain.RatingRange
				return newRatingValue(&r).Set(s)
			}),
	)

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huhTheme()).
		WithShowHelp(false)
}

func runRecommendWizard(ctx context.Context, app *App, req *domain.RecommendationRequest) error {
	labels, err := app.Catalog.Labels(ctx)
	if err != nil {
		return err
	}
	answers := newWizardAnswers(*req)
	if err := recommendForm(labels, answers).RunWithContext(ctx); err != nil {
		return err
	}
	return answers.apply(req)
}
