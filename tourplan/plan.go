// Package tourplan holds the tour plan value object and the fluent builder
// used to assemble it.
package tourplan

import (
	"sort"
	"time"
)

// TourPlan is a finished multi-day itinerary.
type TourPlan struct {
	Title       string
	Nights      int
	Days        int
	StartDate   time.Time
	WhereToStay string
	DayPlans    map[int]string
}

// PlannedDays returns the day numbers that have a plan, in ascending order.
func (p *TourPlan) PlannedDays() []int {
	days := make([]int, 0, len(p.DayPlans))
	for day := range p.DayPlans {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// PlanFor returns the plan recorded for day.
func (p *TourPlan) PlanFor(day int) (string, bool) {
	plan, ok := p.DayPlans[day]
	return plan, ok
}

// EndDate is the calendar date of the last day of the tour.
// It is zero when the start date or the day count is missing.
func (p *TourPlan) EndDate() time.Time {
	if p.StartDate.IsZero() || p.Days <= 0 {
		return time.Time{}
	}
	return p.StartDate.AddDate(0, 0, p.Days-1)
}

// DateOf returns the calendar date of a given day number (day 1 is the start date).
func (p *TourPlan) DateOf(day int) time.Time {
	if p.StartDate.IsZero() || day < 1 {
		return time.Time{}
	}
	return p.StartDate.AddDate(0, 0, day-1)
}

func (p *TourPlan) clone() *TourPlan {
	cp := *p
	cp.DayPlans = make(map[int]string, len(p.DayPlans))
	for day, plan := range p.DayPlans {
		cp.DayPlans[day] = plan
	}
	return &cp
}

// CalendarDate strips the clock and zone from t, keeping its year, month and day.
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
