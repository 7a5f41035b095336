package schedule

import (
	"sort"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// Assemble joins customers with their service rows into denormalized views.
//
// Representative selection: the earliest-dated service whose status is not
// COMPLETED; if every service is completed, the latest-dated service overall.
// NextService is set only in the first case.
//
// Output order follows the first-encounter order of CustomerID among the
// service rows, not the customer collection order. Customers with zero service
// rows are excluded entirely; the add-customer flow always writes an
// installation record, so in practice every customer has at least one row.
func Assemble(customers []entity.Customer, services []entity.ServiceRecord) []entity.CustomerView {
	byCustomer := make(map[string][]entity.ServiceRecord)
	var order []string
	for _, s := range services {
		if _, seen := byCustomer[s.CustomerID]; !seen {
			order = append(order, s.CustomerID)
		}
		byCustomer[s.CustomerID] = append(byCustomer[s.CustomerID], s)
	}

	customerByID := make(map[string]entity.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	views := make([]entity.CustomerView, 0, len(order))
	for _, customerID := range order {
		customer, ok := customerByID[customerID]
		if !ok {
			// Orphan service rows (customer row deleted out-of-band) are skipped.
			continue
		}
		group := byCustomer[customerID]

		var nonCompleted []entity.ServiceRecord
		for _, s := range group {
			if s.Status != entity.StatusCompleted {
				nonCompleted = append(nonCompleted, s)
			}
		}
		sort.SliceStable(nonCompleted, func(i, j int) bool {
			return nonCompleted[i].Date < nonCompleted[j].Date
		})

		all := make([]entity.ServiceRecord, len(group))
		copy(all, group)
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].Date > all[j].Date
		})

		var rep entity.ServiceRecord
		var next *string
		if len(nonCompleted) > 0 {
			rep = nonCompleted[0]
			d := rep.Date
			next = &d
		} else {
			rep = all[0]
		}

		summaries := make([]entity.ServiceSummary, 0, len(all))
		for _, s := range all {
			summaries = append(summaries, entity.ServiceSummary{
				ServiceID: s.ID,
				Date:      s.Date,
				Status:    s.Status,
				Notes:     s.Notes,
				Handler:   s.Handler,
			})
		}

		views = append(views, entity.CustomerView{
			Customer:     customer,
			ServiceID:    rep.ID,
			Status:       rep.Status,
			ServiceNotes: rep.Notes,
			Handler:      rep.Handler,
			NextService:  next,
			Services:     summaries,
		})
	}
	return views
}
