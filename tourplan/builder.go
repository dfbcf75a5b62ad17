package tourplan

import (
	"context"
	"time"
)

// Builder assembles a TourPlan one field at a time. Every setter returns the
// builder so calls can be chained; TourPlan materialises the result.
//
// Implementations are not safe for concurrent use.
type Builder interface {
	SetTitle(title string) Builder
	SetNights(nights int) Builder
	SetDays(days int) Builder
	SetStartDate(startDate time.Time) Builder
	SetWhereToStay(whereToStay string) Builder
	// AddPlan records the plan for a day. A second call for the same day
	// replaces the earlier plan.
	AddPlan(day int, plan string) Builder
	// TourPlan returns a snapshot of everything supplied so far. The builder
	// stays usable afterwards and later calls do not affect the snapshot.
	TourPlan() *TourPlan
}

type planBuilder struct {
	plan TourPlan
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return &planBuilder{
		plan: TourPlan{DayPlans: make(map[int]string)},
	}
}

func (b *planBuilder) SetTitle(title string) Builder {
	b.plan.Title = title
	return b
}

func (b *planBuilder) SetNights(nights int) Builder {
	b.plan.Nights = nights
	return b
}

func (b *planBuilder) SetDays(days int) Builder {
	b.plan.Days = days
	return b
}

func (b *planBuilder) SetStartDate(startDate time.Time) Builder {
	b.plan.StartDate = CalendarDate(startDate)
	return b
}

func (b *planBuilder) SetWhereToStay(whereToStay string) Builder {
	b.plan.WhereToStay = whereToStay
	return b
}

func (b *planBuilder) AddPlan(day int, plan string) Builder {
	b.plan.DayPlans[day] = plan
	return b
}

func (b *planBuilder) TourPlan() *TourPlan {
	return b.plan.clone()
}

// Build finalises b and validates the result.
func Build(ctx context.Context, b Builder) (*TourPlan, error) {
	plan := b.TourPlan()
	if err := Validate(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
