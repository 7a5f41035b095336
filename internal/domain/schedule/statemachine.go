package schedule

import (
	"fmt"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// Contact actions recognized by the state machine. Any other string falls
// through to the passthrough branch: the target's status is set verbatim.
const (
	ActionContacted = "CONTACTED"
	ActionOverdue   = "OVERDUE"
	ActionPostponed = "POSTPONED"
	ActionRefused   = "REFUSED"
)

// Postpone durations and refusal follow-ups accepted in ActionPayload.
const (
	PostponeWeek      = "1w"
	PostponeMonth     = "1m"
	PostponeQuarter   = "3m"
	PostponeHalfYear  = "6m"
	RefusalNever      = "never"
	RefusalNextYear   = "1y"
	RefusalInTwoYears = "2y"
)

// ActionPayload carries the per-action inputs. Notes is always applied to the
// affected row.
type ActionPayload struct {
	Notes            string
	PostponeDuration string // POSTPONED only
	RefusalFollowUp  string // REFUSED only
}

// Changeset is the computed outcome of a contact action. Inserted records have
// no ID yet; the caller allocates IDs against its store snapshot before
// persisting. A changeset is applied atomically or not at all.
type Changeset struct {
	Update []entity.ServiceRecord
	Insert []entity.ServiceRecord
	Delete []string
}

// ApplyContactAction computes the record mutations for one contact action
// against a single customer's service list. It never touches a store.
//
// Target resolution: the earliest-dated UPCOMING service; when no UPCOMING row
// exists, the row matching triggeredID. If neither resolves the action fails
// with domain.ErrNotFound and no partial changeset is produced.
func ApplyContactAction(services []entity.ServiceRecord, triggeredID, action string, p ActionPayload, today time.Time) (Changeset, error) {
	upcoming := earliestUpcoming(services)

	target := upcoming
	if target == nil {
		target = findByID(services, triggeredID)
	}
	if target == nil {
		return Changeset{}, fmt.Errorf("service %s: %w", triggeredID, domain.ErrNotFound)
	}

	updated := *target
	updated.Notes = p.Notes

	switch action {
	case ActionContacted:
		updated.Status = entity.StatusCompleted
		next := entity.ServiceRecord{
			CustomerID: target.CustomerID,
			Date:       nextRoutineDate(target.Date, today),
			Status:     entity.StatusUpcoming,
			Notes:      entity.RoutineNote,
			Handler:    target.Handler,
		}
		return Changeset{Update: []entity.ServiceRecord{updated}, Insert: []entity.ServiceRecord{next}}, nil

	case ActionOverdue:
		updated.Status = entity.StatusOverdue
		return Changeset{Update: []entity.ServiceRecord{updated}}, nil

	case ActionPostponed:
		updated.Status = entity.StatusUpcoming
		if offset, ok := postponeOffset(p.PostponeDuration); ok {
			updated.Date = FormatDate(offset(StartOfDay(today)))
		}
		return Changeset{Update: []entity.ServiceRecord{updated}}, nil

	case ActionRefused:
		if upcoming == nil {
			// Nothing scheduled: record the refusal on the triggering row only.
			return Changeset{Update: []entity.ServiceRecord{updated}}, nil
		}
		switch p.RefusalFollowUp {
		case RefusalNever:
			return Changeset{Delete: []string{upcoming.ID}}, nil
		case RefusalNextYear, RefusalInTwoYears:
			years := 1
			if p.RefusalFollowUp == RefusalInTwoYears {
				years = 2
			}
			updated.Date = FormatDate(AddYears(StartOfDay(today), years))
			updated.Status = entity.StatusUpcoming
			return Changeset{Update: []entity.ServiceRecord{updated}}, nil
		default:
			return Changeset{Update: []entity.ServiceRecord{updated}}, nil
		}

	default:
		// Passthrough: unknown action strings become the literal status.
		updated.Status = action
		return Changeset{Update: []entity.ServiceRecord{updated}}, nil
	}
}

// nextRoutineDate is the contacted target's date plus six calendar months. An
// unparsable target date falls back to six months from today.
func nextRoutineDate(targetDate string, today time.Time) string {
	base, err := ParseDate(targetDate)
	if err != nil {
		base = StartOfDay(today)
	}
	return FormatDate(AddMonths(base, 6))
}

func postponeOffset(duration string) (func(time.Time) time.Time, bool) {
	switch duration {
	case PostponeWeek:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }, true
	case PostponeMonth:
		return func(t time.Time) time.Time { return AddMonths(t, 1) }, true
	case PostponeQuarter:
		return func(t time.Time) time.Time { return AddMonths(t, 3) }, true
	case PostponeHalfYear:
		return func(t time.Time) time.Time { return AddMonths(t, 6) }, true
	}
	return nil, false
}

func earliestUpcoming(services []entity.ServiceRecord) *entity.ServiceRecord {
	var found *entity.ServiceRecord
	for i := range services {
		s := &services[i]
		if s.Status != entity.StatusUpcoming {
			continue
		}
		if found == nil || s.Date < found.Date {
			found = s
		}
	}
	return found
}

func findByID(services []entity.ServiceRecord, id string) *entity.ServiceRecord {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}
