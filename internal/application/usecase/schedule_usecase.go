package usecase

import (
	"fmt"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/repository"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
)

// ScheduleUseCase drives the service state machine and historical record edits.
// The changeset is computed pure against the customer's full service list, then
// persisted; the read-compute-write sequence is one logical operation.
type ScheduleUseCase struct {
	services repository.ServiceRepository
	session  *Session

	Now func() time.Time
}

// NewScheduleUseCase builds the usecase.
func NewScheduleUseCase(services repository.ServiceRepository, session *Session) *ScheduleUseCase {
	return &ScheduleUseCase{services: services, session: session, Now: time.Now}
}

// ApplyContactAction runs one contact action for a customer and persists the
// resulting changeset. Inserted records get IDs from a snapshot of the full
// service ID set taken after the changeset is known to be valid.
func (uc *ScheduleUseCase) ApplyContactAction(customerID string, in dto.ContactActionRequest) error {
	records, err := uc.services.ListByCustomer(customerID)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	cs, err := schedule.ApplyContactAction(records, in.ServiceID, in.Action, schedule.ActionPayload{
		Notes:            in.Notes,
		PostponeDuration: in.PostponeDuration,
		RefusalFollowUp:  in.RefusalFollowUp,
	}, uc.Now())
	if err != nil {
		return err
	}

	if len(cs.Insert) > 0 {
		all, err := uc.services.List()
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		ids := make([]string, 0, len(all))
		for _, s := range all {
			ids = append(ids, s.ID)
		}
		alloc := schedule.NewServiceIDAllocator(ids)
		for i := range cs.Insert {
			d, err := schedule.ParseDate(cs.Insert[i].Date)
			if err != nil {
				return fmt.Errorf("insert date %q: %w", cs.Insert[i].Date, domain.ErrValidation)
			}
			cs.Insert[i].ID = alloc.Next(d)
		}
	}

	for i := range cs.Update {
		rec := cs.Update[i]
		if err := uc.services.Update(&rec); err != nil {
			return fmt.Errorf("update service %s: %w", rec.ID, err)
		}
	}
	if len(cs.Insert) > 0 {
		inserts := make([]*entity.ServiceRecord, 0, len(cs.Insert))
		for i := range cs.Insert {
			inserts = append(inserts, &cs.Insert[i])
		}
		if err := uc.services.CreateBatch(inserts); err != nil {
			return fmt.Errorf("insert services: %w", err)
		}
	}
	for _, id := range cs.Delete {
		if err := uc.services.Delete(id); err != nil {
			return fmt.Errorf("delete service %s: %w", id, err)
		}
	}

	uc.session.Invalidate()
	return nil
}

// UpdateService patches a historical service record's date, notes or handler.
func (uc *ScheduleUseCase) UpdateService(serviceID string, in dto.UpdateServiceRequest) error {
	record, err := uc.services.GetByID(serviceID)
	if err != nil {
		return fmt.Errorf("get service: %w", err)
	}
	if record == nil {
		return fmt.Errorf("service %s: %w", serviceID, domain.ErrNotFound)
	}

	if in.Date != nil {
		d, err := schedule.ParseDate(*in.Date)
		if err != nil {
			return fmt.Errorf("date %q: %w", *in.Date, domain.ErrValidation)
		}
		record.Date = schedule.FormatDate(d)
	}
	if in.Notes != nil {
		record.Notes = *in.Notes
	}
	if in.Handler != nil {
		record.Handler = *in.Handler
	}

	if err := uc.services.Update(record); err != nil {
		return fmt.Errorf("update service %s: %w", serviceID, err)
	}
	uc.session.Invalidate()
	return nil
}
