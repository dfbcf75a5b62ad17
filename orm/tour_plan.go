package orm

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/va6996/tourplanner/tourplan"
)

// ErrNotFound is returned when no stored plan matches the lookup.
var ErrNotFound = errors.New("tour plan not found")

type TourPlan struct {
	ID          uint   `gorm:"primaryKey"`
	Reference   string `gorm:"uniqueIndex;size:36"`
	Title       string
	Nights      int
	Days        int
	StartDate   time.Time
	WhereToStay string
	CreatedAt   time.Time

	// Relationships
	DayPlans []DayPlan `gorm:"foreignKey:TourPlanID;constraint:OnDelete:CASCADE"`
}

type DayPlan struct {
	ID          uint `gorm:"primaryKey"`
	TourPlanID  uint `gorm:"index"`
	DayNumber   int
	Description string
}

// ToDomain rebuilds the value object through the builder. Drivers may hand the
// start date back in the host zone, so it is read as a UTC calendar date.
func (t *TourPlan) ToDomain() *tourplan.TourPlan {
	if t == nil {
		return nil
	}
	b := tourplan.NewBuilder().
		SetTitle(t.Title).
		SetNights(t.Nights).
		SetDays(t.Days).
		SetStartDate(t.StartDate.UTC()).
		SetWhereToStay(t.WhereToStay)
	for _, d := range t.DayPlans {
		b.AddPlan(d.DayNumber, d.Description)
	}
	return b.TourPlan()
}

// TourPlanFromDomain converts a finished plan into a new, unsaved row.
func TourPlanFromDomain(p *tourplan.TourPlan) *TourPlan {
	if p == nil {
		return nil
	}
	t := &TourPlan{
		Reference:   uuid.New().String(),
		Title:       p.Title,
		Nights:      p.Nights,
		Days:        p.Days,
		StartDate:   p.StartDate,
		WhereToStay: p.WhereToStay,
	}
	for _, day := range p.PlannedDays() {
		t.DayPlans = append(t.DayPlans, DayPlan{DayNumber: day, Description: p.DayPlans[day]})
	}
	return t
}

// CreateTourPlan stores plan with its day plans and returns the saved row.
func CreateTourPlan(db *gorm.DB, plan *tourplan.TourPlan) (*TourPlan, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	record := TourPlanFromDomain(plan)
	if err := db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create tour plan: %w", err)
	}
	return record, nil
}

func GetTourPlan(db *gorm.DB, id uint) (*TourPlan, error) {
	var record TourPlan
	err := db.Preload("DayPlans", orderByDay).First(&record, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &record, nil
}

func GetTourPlanByReference(db *gorm.DB, reference string) (*TourPlan, error) {
	var record TourPlan
	err := db.Preload("DayPlans", orderByDay).Where("reference = ?", reference).First(&record).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &record, nil
}

// ListTourPlans returns every stored plan, earliest start date first.
func ListTourPlans(db *gorm.DB) ([]TourPlan, error) {
	var records []TourPlan
	err := db.Preload("DayPlans", orderByDay).Order("start_date, id").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteTourPlan removes a plan and its day plans.
func DeleteTourPlan(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_plan_id = ?", id).Delete(&DayPlan{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&TourPlan{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func orderByDay(db *gorm.DB) *gorm.DB {
	return db.Order("day_number")
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
