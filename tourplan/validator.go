package tourplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/va6996/tourplanner/log"
)

// ErrInvalidPlan is wrapped by every error returned from Validate.
var ErrInvalidPlan = errors.New("invalid tour plan")

// Validate checks a finished plan for consistency and reports every problem at once.
func Validate(ctx context.Context, plan *TourPlan) error {
	if plan == nil {
		return fmt.Errorf("%w: plan is nil", ErrInvalidPlan)
	}
	log.Debugf(ctx, "Validating tour plan: %s", plan.Title)

	var problems []string

	if strings.TrimSpace(plan.Title) == "" {
		problems = append(problems, "Title is missing")
	}

	if plan.Nights < 0 {
		problems = append(problems, fmt.Sprintf("Invalid night count: %d", plan.Nights))
	}
	if plan.Days < 0 {
		problems = append(problems, fmt.Sprintf("Invalid day count: %d", plan.Days))
	}
	if plan.Nights >= 0 && plan.Days >= 0 && plan.Nights > plan.Days {
		problems = append(problems, fmt.Sprintf("Nights (%d) exceed days (%d)", plan.Nights, plan.Days))
	}

	if plan.StartDate.IsZero() {
		problems = append(problems, "Start date missing")
	}

	for _, day := range plan.PlannedDays() {
		if day < 1 || day > plan.Days {
			problems = append(problems, fmt.Sprintf("Day %d is outside the tour (1-%d)", day, plan.Days))
		}
		if strings.TrimSpace(plan.DayPlans[day]) == "" {
			problems = append(problems, fmt.Sprintf("Plan for day %d is empty", day))
		}
	}

	if len(problems) > 0 {
		msg := fmt.Sprintf("Validation failed with %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
		log.Errorf(ctx, "Validate: %s", msg)
		return fmt.Errorf("%w: %s", ErrInvalidPlan, msg)
	}

	log.Debugf(ctx, "Validate: validation passed.")
	return nil
}
