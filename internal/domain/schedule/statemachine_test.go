package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
)

func upcomingAnd(history ...entity.ServiceRecord) []entity.ServiceRecord {
	base := []entity.ServiceRecord{
		{ID: "SVC-1", CustomerID: "CUST-1", Date: "2025-06-15", Status: entity.StatusUpcoming, Handler: "Agus"},
	}
	return append(base, history...)
}

func TestContacted_CompletesTargetAndSchedulesNext(t *testing.T) {
	services := upcomingAnd()

	cs, err := schedule.ApplyContactAction(services, "SVC-1", schedule.ActionContacted,
		schedule.ActionPayload{Notes: "serviced, all good"}, date("2025-06-10"))
	require.NoError(t, err)

	require.Len(t, cs.Update, 1)
	assert.Equal(t, entity.StatusCompleted, cs.Update[0].Status)
	assert.Equal(t, "serviced, all good", cs.Update[0].Notes)

	require.Len(t, cs.Insert, 1, "exactly one follow-up record is created")
	next := cs.Insert[0]
	assert.Equal(t, "2025-12-15", next.Date, "six calendar months after the target date")
	assert.Equal(t, entity.StatusUpcoming, next.Status)
	assert.Equal(t, entity.RoutineNote, next.Notes)
	assert.Equal(t, "Agus", next.Handler, "handler is carried over to the follow-up")
	assert.Empty(t, next.ID, "the caller allocates the ID against its store snapshot")
	assert.Empty(t, cs.Delete)
}

func TestContacted_TargetsEarliestUpcomingNotTriggering(t *testing.T) {
	services := []entity.ServiceRecord{
		{ID: "SVC-1", CustomerID: "CUST-1", Date: "2025-09-01", Status: entity.StatusUpcoming},
		{ID: "SVC-2", CustomerID: "CUST-1", Date: "2025-03-01", Status: entity.StatusUpcoming},
	}

	cs, err := schedule.ApplyContactAction(services, "SVC-1", schedule.ActionContacted,
		schedule.ActionPayload{Notes: "done"}, date("2025-02-01"))
	require.NoError(t, err)

	require.Len(t, cs.Update, 1)
	assert.Equal(t, "SVC-2", cs.Update[0].ID,
		"the earliest UPCOMING row is acted upon, regardless of which row triggered")
}

func TestOverdue_MarksTargetOnly(t *testing.T) {
	cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", schedule.ActionOverdue,
		schedule.ActionPayload{Notes: "no answer twice"}, date("2025-07-01"))
	require.NoError(t, err)

	require.Len(t, cs.Update, 1)
	assert.Equal(t, entity.StatusOverdue, cs.Update[0].Status)
	assert.Equal(t, "2025-06-15", cs.Update[0].Date, "date is untouched")
	assert.Empty(t, cs.Insert, "OVERDUE creates no new record")
	assert.Empty(t, cs.Delete)
}

func TestPostponed_OffsetsFromToday(t *testing.T) {
	cases := []struct {
		duration string
		want     string
	}{
		{schedule.PostponeWeek, "2025-06-08"},
		{schedule.PostponeMonth, "2025-07-01"},
		{schedule.PostponeQuarter, "2025-09-01"},
		{schedule.PostponeHalfYear, "2025-12-01"},
	}
	for _, tc := range cases {
		cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", schedule.ActionPostponed,
			schedule.ActionPayload{Notes: "asked to call later", PostponeDuration: tc.duration}, date("2025-06-01"))
		require.NoError(t, err, tc.duration)
		require.Len(t, cs.Update, 1, tc.duration)
		assert.Equal(t, tc.want, cs.Update[0].Date, "duration %s", tc.duration)
		assert.Equal(t, entity.StatusUpcoming, cs.Update[0].Status, "status stays UPCOMING")
	}
}

func TestPostponed_MonthArithmeticIsCalendarBased(t *testing.T) {
	// Today 2024-01-01 + 1 month lands on 2024-02-01 even though the target row
	// itself is dated Jan 31: the offset is relative to today, not the row.
	services := []entity.ServiceRecord{
		{ID: "SVC-1", CustomerID: "CUST-1", Date: "2024-01-31", Status: entity.StatusUpcoming},
	}
	cs, err := schedule.ApplyContactAction(services, "SVC-1", schedule.ActionPostponed,
		schedule.ActionPayload{PostponeDuration: schedule.PostponeMonth}, date("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", cs.Update[0].Date)
}

func TestAddMonths_OverflowNormalizes(t *testing.T) {
	// Month-component arithmetic: Jan 31 + 1 month normalizes through Feb 31
	// to Mar 2 in a leap year. Documented so nobody "fixes" it to day counting.
	assert.Equal(t, "2024-03-02", schedule.FormatDate(schedule.AddMonths(date("2024-01-31"), 1)))
	assert.Equal(t, "2025-03-03", schedule.FormatDate(schedule.AddMonths(date("2025-01-31"), 1)))
}

func TestPostponed_UnrecognizedDurationKeepsDate(t *testing.T) {
	cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", schedule.ActionPostponed,
		schedule.ActionPayload{Notes: "later", PostponeDuration: "2w"}, date("2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", cs.Update[0].Date, "unknown duration leaves the date alone")
	assert.Equal(t, "later", cs.Update[0].Notes, "notes are still applied")
}

func TestRefused_NeverDeletesTheUpcomingRow(t *testing.T) {
	cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", schedule.ActionRefused,
		schedule.ActionPayload{Notes: "moved away", RefusalFollowUp: schedule.RefusalNever}, date("2025-06-01"))
	require.NoError(t, err)

	assert.Equal(t, []string{"SVC-1"}, cs.Delete, "the sole UPCOMING row is removed")
	assert.Empty(t, cs.Update)
	assert.Empty(t, cs.Insert, "no replacement is scheduled")
}

func TestRefused_FollowUpReschedulesByYears(t *testing.T) {
	for followUp, want := range map[string]string{
		schedule.RefusalNextYear:   "2026-06-01",
		schedule.RefusalInTwoYears: "2027-06-01",
	} {
		cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", schedule.ActionRefused,
			schedule.ActionPayload{Notes: "try again later", RefusalFollowUp: followUp}, date("2025-06-01"))
		require.NoError(t, err, followUp)
		require.Len(t, cs.Update, 1, followUp)
		assert.Equal(t, want, cs.Update[0].Date, "follow-up %s", followUp)
		assert.Equal(t, entity.StatusUpcoming, cs.Update[0].Status, "status is forced back to UPCOMING")
	}
}

func TestRefused_NoUpcomingRowUpdatesNotesOnly(t *testing.T) {
	services := []entity.ServiceRecord{
		{ID: "SVC-9", CustomerID: "CUST-1", Date: "2024-01-01", Status: entity.StatusCompleted, Notes: "old"},
	}
	cs, err := schedule.ApplyContactAction(services, "SVC-9", schedule.ActionRefused,
		schedule.ActionPayload{Notes: "declined", RefusalFollowUp: schedule.RefusalNever}, date("2025-06-01"))
	require.NoError(t, err)

	require.Len(t, cs.Update, 1)
	assert.Equal(t, "declined", cs.Update[0].Notes)
	assert.Equal(t, entity.StatusCompleted, cs.Update[0].Status, "status is untouched")
	assert.Equal(t, "2024-01-01", cs.Update[0].Date, "date is untouched")
	assert.Empty(t, cs.Delete)
}

func TestUnknownAction_PassesStatusThroughVerbatim(t *testing.T) {
	cs, err := schedule.ApplyContactAction(upcomingAnd(), "SVC-1", "ON_HOLD",
		schedule.ActionPayload{Notes: "customer traveling"}, date("2025-06-01"))
	require.NoError(t, err)

	require.Len(t, cs.Update, 1)
	assert.Equal(t, "ON_HOLD", cs.Update[0].Status, "unrecognized action strings become the status")
}

func TestApply_UnresolvableTargetFailsWithNotFound(t *testing.T) {
	services := []entity.ServiceRecord{
		{ID: "SVC-9", CustomerID: "CUST-1", Date: "2024-01-01", Status: entity.StatusCompleted},
	}
	cs, err := schedule.ApplyContactAction(services, "SVC-404", schedule.ActionContacted,
		schedule.ActionPayload{}, date("2025-06-01"))

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, cs.Update, "no partial mutation on failure")
	assert.Empty(t, cs.Insert)
	assert.Empty(t, cs.Delete)
}
