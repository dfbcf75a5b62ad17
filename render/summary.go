// Package render prints tour plans as plain text.
package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/va6996/tourplanner/tourplan"
)

const dateLayout = "2006-01-02"

// ParseLocale parses a BCP 47 tag, falling back to English.
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return language.English
	}
	return tag
}

// Summary renders plan for the given locale. Numbers are formatted for the
// locale; dates always use ISO form. A nil plan renders as "".
func Summary(plan *tourplan.TourPlan, tag language.Tag) string {
	if plan == nil {
		return ""
	}
	p := message.NewPrinter(tag)
	var b strings.Builder

	title := plan.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteByte('\n')

	if !plan.StartDate.IsZero() {
		if end := plan.EndDate(); !end.IsZero() {
			p.Fprintf(&b, "Dates:    %s to %s\n", plan.StartDate.Format(dateLayout), end.Format(dateLayout))
		} else {
			p.Fprintf(&b, "Starts:   %s\n", plan.StartDate.Format(dateLayout))
		}
	}
	p.Fprintf(&b, "Length:   %d nights / %d days\n", plan.Nights, plan.Days)
	if plan.WhereToStay != "" {
		p.Fprintf(&b, "Stay:     %s\n", plan.WhereToStay)
	}

	days := plan.PlannedDays()
	if len(days) == 0 {
		return b.String()
	}

	b.WriteString("\nItinerary:\n")
	for _, day := range days {
		if d := plan.DateOf(day); !d.IsZero() {
			p.Fprintf(&b, "  Day %d (%s): %s\n", day, d.Format(dateLayout), plan.DayPlans[day])
		} else {
			p.Fprintf(&b, "  Day %d: %s\n", day, plan.DayPlans[day])
		}
	}
	return b.String()
}
