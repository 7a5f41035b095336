package schedule

import (
	"fmt"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// Contact status tags surfaced to the UI layer.
const (
	ContactNotContacted   = "not_contacted"
	ContactContacted      = "contacted"
	ContactOverdue        = "overdue"
	ContactContactOverdue = "contact_overdue"
)

// PriorityConfig parameterizes the priority calculation. The product has shipped
// two variants with different tier counts (a plain 3-tier scheme and a 4-tier
// one with a distinct critical label for already-overdue customers); both are
// expressed through this one struct instead of forked logic. Which variant is
// canonical is still an open product question.
type PriorityConfig struct {
	HighWithinDays   int
	MediumWithinDays int

	// CriticalOverdue switches overdue customers (daysDiff < 0) from LabelHigh
	// to LabelCritical.
	CriticalOverdue bool

	LabelCritical string
	LabelHigh     string
	LabelMedium   string
	LabelLow      string
}

// StandardPriorities is the 3-tier variant: High covers overdue through 7 days out.
func StandardPriorities() PriorityConfig {
	return PriorityConfig{
		HighWithinDays:   7,
		MediumWithinDays: 30,
		LabelHigh:        "High",
		LabelMedium:      "Medium",
		LabelLow:         "Low",
	}
}

// CriticalPriorities is the 4-tier variant with the "Sangat Mendesak" tier for
// overdue customers.
func CriticalPriorities() PriorityConfig {
	cfg := StandardPriorities()
	cfg.CriticalOverdue = true
	cfg.LabelCritical = "Sangat Mendesak"
	return cfg
}

// Priority classifies a view by how close its next service is. No next service
// (or an unreadable date) means there is nothing to chase: Low.
func Priority(view entity.CustomerView, today time.Time, cfg PriorityConfig) string {
	if view.NextService == nil {
		return cfg.LabelLow
	}
	next, err := ParseDate(*view.NextService)
	if err != nil {
		return cfg.LabelLow
	}
	diff := DaysBetween(today, next)
	switch {
	case diff < 0:
		if cfg.CriticalOverdue {
			return cfg.LabelCritical
		}
		return cfg.LabelHigh
	case diff <= cfg.HighWithinDays:
		return cfg.LabelHigh
	case diff <= cfg.MediumWithinDays:
		return cfg.LabelMedium
	default:
		return cfg.LabelLow
	}
}

// DaysUntilService renders the due-date message for a view.
func DaysUntilService(view entity.CustomerView, today time.Time) string {
	if view.NextService == nil || *view.NextService == "" {
		return "no date set"
	}
	next, err := ParseDate(*view.NextService)
	if err != nil {
		return "invalid date"
	}
	diff := DaysBetween(today, next)
	switch {
	case diff < 0:
		return fmt.Sprintf("overdue by %d days", -diff)
	case diff == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d days", diff)
	}
}

// ContactStatus maps the representative status to the four-way contact tag. An
// UPCOMING service whose date has already passed counts as contact_overdue even
// though no action flipped it yet.
func ContactStatus(view entity.CustomerView, today time.Time) string {
	switch view.Status {
	case entity.StatusCompleted:
		return ContactContacted
	case entity.StatusOverdue:
		return ContactOverdue
	case entity.StatusUpcoming:
		if view.NextService != nil {
			if next, err := ParseDate(*view.NextService); err == nil && DaysBetween(today, next) < 0 {
				return ContactContactOverdue
			}
		}
		return ContactNotContacted
	default:
		return ContactNotContacted
	}
}

// MostRecentCompletedService returns the date of the latest genuinely completed
// service, skipping the installation sentinel record. Nil when none exists.
func MostRecentCompletedService(services []entity.ServiceSummary) *string {
	var best *string
	for i := range services {
		s := services[i]
		if s.Status != entity.StatusCompleted || s.Notes == entity.InstallationNote {
			continue
		}
		if best == nil || s.Date > *best {
			d := s.Date
			best = &d
		}
	}
	return best
}
