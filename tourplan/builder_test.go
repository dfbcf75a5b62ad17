package tourplan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AlpsTrip(t *testing.T) {
	plan := NewBuilder().
		SetTitle("Alps Trip").
		SetNights(3).
		SetDays(4).
		SetStartDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
		SetWhereToStay("Mountain Lodge").
		AddPlan(1, "Arrival").
		AddPlan(2, "Hiking").
		TourPlan()

	assert.Equal(t, "Alps Trip", plan.Title)
	assert.Equal(t, 3, plan.Nights)
	assert.Equal(t, 4, plan.Days)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), plan.StartDate)
	assert.Equal(t, "Mountain Lodge", plan.WhereToStay)
	assert.Equal(t, map[int]string{1: "Arrival", 2: "Hiking"}, plan.DayPlans)
}

func TestBuilder_ChainingInAnyOrder(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	a := NewBuilder().
		AddPlan(2, "Museum").
		SetWhereToStay("Hotel Roma").
		SetDays(3).
		SetStartDate(start).
		SetNights(2).
		SetTitle("Rome").
		TourPlan()

	b := NewBuilder().
		SetTitle("Rome").
		SetNights(2).
		SetDays(3).
		SetStartDate(start).
		SetWhereToStay("Hotel Roma").
		AddPlan(2, "Museum").
		TourPlan()

	assert.Equal(t, a, b)
}

func TestBuilder_SettersRoundTrip(t *testing.T) {
	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		apply func(Builder) Builder
		check func(t *testing.T, p *TourPlan)
	}{
		{
			name:  "Title",
			apply: func(b Builder) Builder { return b.SetTitle("Lapland") },
			check: func(t *testing.T, p *TourPlan) { assert.Equal(t, "Lapland", p.Title) },
		},
		{
			name:  "Nights",
			apply: func(b Builder) Builder { return b.SetNights(5) },
			check: func(t *testing.T, p *TourPlan) { assert.Equal(t, 5, p.Nights) },
		},
		{
			name:  "Days",
			apply: func(b Builder) Builder { return b.SetDays(6) },
			check: func(t *testing.T, p *TourPlan) { assert.Equal(t, 6, p.Days) },
		},
		{
			name:  "StartDate",
			apply: func(b Builder) Builder { return b.SetStartDate(start) },
			check: func(t *testing.T, p *TourPlan) { assert.Equal(t, start, p.StartDate) },
		},
		{
			name:  "WhereToStay",
			apply: func(b Builder) Builder { return b.SetWhereToStay("Ice Hotel") },
			check: func(t *testing.T, p *TourPlan) { assert.Equal(t, "Ice Hotel", p.WhereToStay) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.apply(NewBuilder()).TourPlan())
		})
	}
}

func TestBuilder_StartDateDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	plan := NewBuilder().
		SetStartDate(time.Date(2024, 6, 1, 23, 30, 0, 0, loc)).
		TourPlan()

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), plan.StartDate)
}

func TestBuilder_AddPlan(t *testing.T) {
	t.Run("DistinctDays", func(t *testing.T) {
		plan := NewBuilder().AddPlan(1, "Arrival").AddPlan(3, "Departure").TourPlan()

		assert.Len(t, plan.DayPlans, 2)
		got, ok := plan.PlanFor(1)
		assert.True(t, ok)
		assert.Equal(t, "Arrival", got)
		got, ok = plan.PlanFor(3)
		assert.True(t, ok)
		assert.Equal(t, "Departure", got)
		_, ok = plan.PlanFor(2)
		assert.False(t, ok)
	})

	t.Run("SameDayOverwrites", func(t *testing.T) {
		plan := NewBuilder().AddPlan(2, "Hiking").AddPlan(2, "Spa").TourPlan()

		assert.Equal(t, map[int]string{2: "Spa"}, plan.DayPlans)
	})
}

func TestBuilder_UseAfterTourPlan(t *testing.T) {
	b := NewBuilder().SetTitle("First").AddPlan(1, "Arrival")
	first := b.TourPlan()

	b.SetTitle("Second").AddPlan(1, "Late arrival").AddPlan(2, "Beach")
	second := b.TourPlan()

	assert.Equal(t, "First", first.Title)
	assert.Equal(t, map[int]string{1: "Arrival"}, first.DayPlans)
	assert.Equal(t, "Second", second.Title)
	assert.Equal(t, map[int]string{1: "Late arrival", 2: "Beach"}, second.DayPlans)

	// Mutating a returned plan must not leak back into the builder.
	second.DayPlans[3] = "Injected"
	assert.NotContains(t, b.TourPlan().DayPlans, 3)
}

func TestBuilder_EmptyPlan(t *testing.T) {
	plan := NewBuilder().TourPlan()

	require.NotNil(t, plan)
	assert.Empty(t, plan.Title)
	assert.NotNil(t, plan.DayPlans)
	assert.Empty(t, plan.PlannedDays())
	assert.True(t, plan.EndDate().IsZero())
}

func TestTourPlan_Dates(t *testing.T) {
	plan := NewBuilder().
		SetDays(4).
		SetStartDate(time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)).
		AddPlan(4, "Fly home").
		AddPlan(1, "Arrival").
		TourPlan()

	assert.Equal(t, []int{1, 4}, plan.PlannedDays())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), plan.EndDate())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), plan.DateOf(3))
	assert.True(t, plan.DateOf(0).IsZero())
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		b := NewBuilder().
			SetTitle("Alps Trip").
			SetNights(3).
			SetDays(4).
			SetStartDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
			SetWhereToStay("Mountain Lodge").
			AddPlan(1, "Arrival")

		plan, err := Build(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, "Alps Trip", plan.Title)
	})

	t.Run("Invalid", func(t *testing.T) {
		plan, err := Build(ctx, NewBuilder().SetNights(2))
		assert.ErrorIs(t, err, ErrInvalidPlan)
		assert.Nil(t, plan)
	})
}
