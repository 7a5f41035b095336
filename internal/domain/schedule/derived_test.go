package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
)

func viewWithNext(dateStr, status string) entity.CustomerView {
	v := entity.CustomerView{Status: status}
	if dateStr != "" {
		v.NextService = &dateStr
	}
	return v
}

func TestPriority_StandardTiers(t *testing.T) {
	cfg := schedule.StandardPriorities()
	today := date("2025-01-05")

	cases := []struct {
		name string
		next string
		want string
	}{
		{"due in 5 days", "2025-01-10", "High"},
		{"due today", "2025-01-05", "High"},
		{"exactly a week out", "2025-01-12", "High"},
		{"eight days out", "2025-01-13", "Medium"},
		{"thirty days out", "2025-02-04", "Medium"},
		{"far future", "2025-06-01", "Low"},
		{"already overdue", "2025-01-01", "High"},
	}
	for _, tc := range cases {
		v := viewWithNext(tc.next, entity.StatusUpcoming)
		assert.Equal(t, tc.want, schedule.Priority(v, today, cfg), tc.name)
	}
}

func TestPriority_CriticalTierForOverdue(t *testing.T) {
	cfg := schedule.CriticalPriorities()
	today := date("2025-01-15")

	overdue := viewWithNext("2025-01-10", entity.StatusUpcoming)
	assert.Equal(t, "Sangat Mendesak", schedule.Priority(overdue, today, cfg),
		"the 4-tier variant separates overdue from merely-urgent")

	urgent := viewWithNext("2025-01-20", entity.StatusUpcoming)
	assert.Equal(t, "High", schedule.Priority(urgent, today, cfg))
}

func TestPriority_NoNextServiceIsLow(t *testing.T) {
	v := viewWithNext("", entity.StatusCompleted)
	assert.Equal(t, "Low", schedule.Priority(v, date("2025-01-01"), schedule.StandardPriorities()))
}

func TestDaysUntilService_Messages(t *testing.T) {
	today := date("2025-01-05")

	cases := []struct {
		name string
		view entity.CustomerView
		want string
	}{
		{"five days out", viewWithNext("2025-01-10", entity.StatusUpcoming), "due in 5 days"},
		{"due today", viewWithNext("2025-01-05", entity.StatusUpcoming), "due today"},
		{"no date", viewWithNext("", entity.StatusCompleted), "no date set"},
		{"garbage date", viewWithNext("31/01/2025", entity.StatusUpcoming), "invalid date"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, schedule.DaysUntilService(tc.view, today), tc.name)
	}
}

func TestDaysUntilService_Overdue(t *testing.T) {
	// Same customer as the "due in 5 days" scenario, ten days later.
	v := viewWithNext("2025-01-10", entity.StatusUpcoming)
	assert.Equal(t, "overdue by 5 days", schedule.DaysUntilService(v, date("2025-01-15")))
}

func TestContactStatus_FourWayTags(t *testing.T) {
	today := date("2025-01-05")

	assert.Equal(t, "contacted", schedule.ContactStatus(viewWithNext("", entity.StatusCompleted), today))
	assert.Equal(t, "overdue", schedule.ContactStatus(viewWithNext("2025-01-01", entity.StatusOverdue), today))
	assert.Equal(t, "not_contacted", schedule.ContactStatus(viewWithNext("2025-02-01", entity.StatusUpcoming), today))
	assert.Equal(t, "contact_overdue", schedule.ContactStatus(viewWithNext("2025-01-01", entity.StatusUpcoming), today),
		"an UPCOMING service already past due derives contact_overdue without any action")
}

func TestMostRecentCompletedService_SkipsInstallationSentinel(t *testing.T) {
	services := []entity.ServiceSummary{
		{ServiceID: "SVC-1", Date: "2025-06-01", Status: entity.StatusCompleted, Notes: entity.InstallationNote},
		{ServiceID: "SVC-2", Date: "2024-06-01", Status: entity.StatusCompleted, Notes: "routine"},
		{ServiceID: "SVC-3", Date: "2024-12-01", Status: entity.StatusCompleted, Notes: "fixed valve"},
		{ServiceID: "SVC-4", Date: "2025-12-01", Status: entity.StatusUpcoming, Notes: "scheduled"},
	}

	got := schedule.MostRecentCompletedService(services)
	require.NotNil(t, got)
	assert.Equal(t, "2024-12-01", *got,
		"installation record is excluded even though it is the latest COMPLETED row")
}

func TestMostRecentCompletedService_NoneIsNil(t *testing.T) {
	services := []entity.ServiceSummary{
		{ServiceID: "SVC-1", Date: "2025-06-01", Status: entity.StatusCompleted, Notes: entity.InstallationNote},
		{ServiceID: "SVC-2", Date: "2025-12-01", Status: entity.StatusUpcoming},
	}
	assert.Nil(t, schedule.MostRecentCompletedService(services))
}
