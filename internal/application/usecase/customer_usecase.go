package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/repository"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/pkg/logger"
)

const (
	deleteRetries = 3
	// Reminder record created alongside the installation, six months out.
	initialReminderMonths = 6
)

// CustomerUseCase covers the customer operation surface: listing assembled
// views, registration, field updates and cascade deletion.
type CustomerUseCase struct {
	customers  repository.CustomerRepository
	services   repository.ServiceRepository
	session    *Session
	priorities schedule.PriorityConfig
	log        *logger.Logger

	// Now and RetryDelay are overridable for tests; defaults are time.Now and 1s.
	Now        func() time.Time
	RetryDelay time.Duration
}

// NewCustomerUseCase builds the usecase.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	services repository.ServiceRepository,
	session *Session,
	priorities schedule.PriorityConfig,
	log *logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customers:  customers,
		services:   services,
		session:    session,
		priorities: priorities,
		log:        log,
		Now:        time.Now,
		RetryDelay: time.Second,
	}
}

// ListViews returns the assembled customer views with derived fields. Reads hit
// the session cache unless refresh is set or a mutation invalidated it.
func (uc *CustomerUseCase) ListViews(refresh bool) ([]dto.CustomerViewResponse, error) {
	views, err := uc.assembled(refresh)
	if err != nil {
		return nil, err
	}
	today := schedule.StartOfDay(uc.Now())
	out := make([]dto.CustomerViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, uc.present(v, today))
	}
	return out, nil
}

// GetView returns one customer's assembled view.
func (uc *CustomerUseCase) GetView(customerID string) (*dto.CustomerViewResponse, error) {
	views, err := uc.assembled(false)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if v.ID == customerID {
			resp := uc.present(v, schedule.StartOfDay(uc.Now()))
			return &resp, nil
		}
	}
	return nil, fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
}

// Create registers a customer and its first two service records in one batch:
// the COMPLETED installation at the installation date and an UPCOMING reminder
// six calendar months later. IDs come from a single store snapshot so the batch
// cannot collide with itself.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerViewResponse, error) {
	if in.Name == "" || in.Phone == "" || in.InstallDate == "" {
		return nil, fmt.Errorf("name, phone and install_date are required: %w", domain.ErrValidation)
	}
	installed, err := schedule.ParseDate(in.InstallDate)
	if err != nil {
		return nil, fmt.Errorf("install_date %q: %w", in.InstallDate, domain.ErrValidation)
	}

	existingCustomers, err := uc.customers.List()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	existingServices, err := uc.services.List()
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	now := uc.Now()
	customerIDs := make([]string, 0, len(existingCustomers))
	for _, c := range existingCustomers {
		customerIDs = append(customerIDs, c.ID)
	}
	serviceIDs := make([]string, 0, len(existingServices))
	for _, s := range existingServices {
		serviceIDs = append(serviceIDs, s.ID)
	}

	customer := &entity.Customer{
		ID:          schedule.NextCustomerID(customerIDs, now),
		Name:        in.Name,
		Address:     in.Address,
		Phone:       NormalizePhone(in.Phone),
		City:        CanonicalCity(in.City),
		InstallDate: schedule.FormatDate(installed),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	alloc := schedule.NewServiceIDAllocator(serviceIDs)
	reminder := schedule.AddMonths(installed, initialReminderMonths)
	records := []*entity.ServiceRecord{
		{
			ID:         alloc.Next(installed),
			CustomerID: customer.ID,
			Date:       schedule.FormatDate(installed),
			Status:     entity.StatusCompleted,
			Notes:      entity.InstallationNote,
		},
		{
			ID:         alloc.Next(reminder),
			CustomerID: customer.ID,
			Date:       schedule.FormatDate(reminder),
			Status:     entity.StatusUpcoming,
			Notes:      entity.RoutineNote,
		},
	}

	if err := uc.customers.Create(customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	if err := uc.services.CreateBatch(records); err != nil {
		return nil, fmt.Errorf("create initial services: %w", err)
	}
	uc.session.Invalidate()

	services := make([]entity.ServiceRecord, 0, len(records))
	for _, r := range records {
		services = append(services, *r)
	}
	view := schedule.Assemble([]entity.Customer{*customer}, services)[0]
	resp := uc.present(view, schedule.StartOfDay(now))
	return &resp, nil
}

// Update applies a field-level patch to a customer.
func (uc *CustomerUseCase) Update(customerID string, in dto.UpdateCustomerRequest) error {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Phone != nil {
		customer.Phone = NormalizePhone(*in.Phone)
	}
	if in.City != nil {
		customer.City = CanonicalCity(*in.City)
	}
	if in.InstallDate != nil {
		d, err := schedule.ParseDate(*in.InstallDate)
		if err != nil {
			return fmt.Errorf("install_date %q: %w", *in.InstallDate, domain.ErrValidation)
		}
		customer.InstallDate = schedule.FormatDate(d)
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = uc.Now()

	if err := uc.customers.Update(customer); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	uc.session.Invalidate()
	return nil
}

// Delete removes a customer and all of its service rows. The cascade is
// best-effort: each row delete is retried with linear backoff, the loop keeps
// going past failures, and an aggregate error is reported at the end if any
// row could not be removed. The cache is invalidated regardless since rows may
// already be gone.
func (uc *CustomerUseCase) Delete(customerID string) error {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}
	services, err := uc.services.ListByCustomer(customerID)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	defer uc.session.Invalidate()

	var failures []error
	for _, s := range services {
		if err := uc.deleteWithRetry(func() error { return uc.services.Delete(s.ID) }); err != nil {
			uc.log.Warn().Str("service_id", s.ID).Err(err).Msg("cascade delete: service row failed")
			failures = append(failures, fmt.Errorf("service %s: %w", s.ID, err))
		}
	}
	if len(failures) > 0 {
		// Leave the customer row in place so the remaining services stay reachable.
		return fmt.Errorf("cascade delete of %s: %w", customerID, errors.Join(failures...))
	}
	if err := uc.deleteWithRetry(func() error { return uc.customers.Delete(customerID) }); err != nil {
		return fmt.Errorf("delete customer %s: %w", customerID, err)
	}
	return nil
}

// deleteWithRetry retries a row deletion on transient failure, sleeping
// RetryDelay x attempt between tries.
func (uc *CustomerUseCase) deleteWithRetry(del func() error) error {
	var err error
	for attempt := 1; attempt <= deleteRetries; attempt++ {
		if err = del(); err == nil {
			return nil
		}
		if attempt < deleteRetries {
			time.Sleep(time.Duration(attempt) * uc.RetryDelay)
		}
	}
	return err
}

// assembled reads through the cache.
func (uc *CustomerUseCase) assembled(refresh bool) ([]entity.CustomerView, error) {
	if !refresh {
		if views, ok := uc.session.Cached(); ok {
			return views, nil
		}
	}
	customers, err := uc.customers.List()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	services, err := uc.services.List()
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	views := schedule.Assemble(customers, services)
	uc.session.Put(views)
	return views, nil
}

func (uc *CustomerUseCase) present(v entity.CustomerView, today time.Time) dto.CustomerViewResponse {
	summaries := make([]dto.ServiceSummaryResponse, 0, len(v.Services))
	for _, s := range v.Services {
		summaries = append(summaries, dto.ServiceSummaryResponse{
			ServiceID: s.ServiceID,
			Date:      s.Date,
			Status:    s.Status,
			Notes:     s.Notes,
			Handler:   s.Handler,
		})
	}
	return dto.CustomerViewResponse{
		CustomerID:    v.ID,
		Name:          v.Name,
		Address:       v.Address,
		Phone:         v.Phone,
		City:          v.City,
		InstallDate:   v.InstallDate,
		Notes:         v.Notes,
		ServiceID:     v.ServiceID,
		Status:        v.Status,
		ServiceNotes:  v.ServiceNotes,
		Handler:       v.Handler,
		NextService:   v.NextService,
		Priority:      schedule.Priority(v, today, uc.priorities),
		DaysUntil:     schedule.DaysUntilService(v, today),
		ContactStatus: schedule.ContactStatus(v, today),
		LastCompleted: schedule.MostRecentCompletedService(v.Services),
		Services:      summaries,
	}
}
