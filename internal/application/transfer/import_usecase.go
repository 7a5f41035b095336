package transfer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/usecase"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/repository"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/pkg/logger"
)

// Merge decisions for import conflicts.
const (
	DecisionSkip           = "skip"
	DecisionAddDuplicate   = "add_duplicate"
	DecisionUpdateExisting = "update_existing"
)

// importRow is one parsed, normalized input row.
type importRow struct {
	Name        string
	Address     string
	Phone       string
	City        string
	InstallDate string
	Notes       string
}

// conflict is a pending merge decision: the incoming row matched an existing
// customer and the import is suspended until a decision arrives.
type conflict struct {
	ID       string
	Row      importRow
	Existing entity.Customer
	Reason   string
}

// importSession holds everything staged for one import run. Nothing in it has
// touched the store: all inserts and updates are committed in a final batch
// step once the conflict queue is empty, and discarded wholesale on cancel.
type importSession struct {
	ID        string
	adds      []importRow
	updates   map[string]importRow // existing customer ID -> incoming fields
	conflicts []conflict
	skipped   int
}

// ImportUseCase runs tabular imports with per-record conflict resolution. The
// conflict prompt loop is modeled as suspend/resume: Start parses and stages
// everything it can, returns the conflict queue, and Resolve resumes the run
// one decision at a time (or all at once via apply_to_remaining).
type ImportUseCase struct {
	customers repository.CustomerRepository
	services  repository.ServiceRepository
	session   *usecase.Session
	log       *logger.Logger

	mu       sync.Mutex
	sessions map[string]*importSession

	Now func() time.Time
}

// NewImportUseCase builds the usecase.
func NewImportUseCase(
	customers repository.CustomerRepository,
	services repository.ServiceRepository,
	session *usecase.Session,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		customers: customers,
		services:  services,
		session:   session,
		log:       log,
		sessions:  make(map[string]*importSession),
		Now:       time.Now,
	}
}

// Start parses a CSV stream, detects duplicates against the existing customer
// set and either commits immediately (no conflicts) or suspends with a queue
// of pending decisions.
func (uc *ImportUseCase) Start(r io.Reader) (*dto.ImportStatusResponse, error) {
	rows, err := parseRows(r)
	if err != nil {
		return nil, err
	}
	existing, err := uc.customers.List()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	sess := &importSession{
		ID:      uuid.New().String(),
		updates: make(map[string]importRow),
	}
	for _, row := range rows {
		if match, reason := findDuplicate(existing, row); match != nil {
			sess.conflicts = append(sess.conflicts, conflict{
				ID:       uuid.New().String(),
				Row:      row,
				Existing: *match,
				Reason:   reason,
			})
			continue
		}
		sess.adds = append(sess.adds, row)
	}

	if len(sess.conflicts) == 0 {
		return uc.commit(sess)
	}

	uc.mu.Lock()
	uc.sessions[sess.ID] = sess
	uc.mu.Unlock()
	uc.log.Info().Str("session_id", sess.ID).
		Int("staged", len(sess.adds)).Int("conflicts", len(sess.conflicts)).
		Msg("import suspended on conflicts")
	return status(sess, false, 0, 0), nil
}

// Conflicts reports a suspended session's pending queue.
func (uc *ImportUseCase) Conflicts(sessionID string) (*dto.ImportStatusResponse, error) {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	uc.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("import session %s: %w", sessionID, domain.ErrNotFound)
	}
	return status(sess, false, 0, 0), nil
}

// Resolve supplies the decision for one pending conflict and resumes the
// import. With ApplyToRemaining the decision covers the whole remaining queue.
// Once the queue drains, the staged rows are committed in one batch per
// collection.
func (uc *ImportUseCase) Resolve(sessionID string, in dto.ResolveConflictRequest) (*dto.ImportStatusResponse, error) {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	uc.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("import session %s: %w", sessionID, domain.ErrNotFound)
	}

	switch in.Decision {
	case DecisionSkip, DecisionAddDuplicate, DecisionUpdateExisting:
	default:
		return nil, fmt.Errorf("decision %q: %w", in.Decision, domain.ErrValidation)
	}

	idx := -1
	for i, c := range sess.conflicts {
		if c.ID == in.ConflictID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("conflict %s: %w", in.ConflictID, domain.ErrNotFound)
	}

	targets := []conflict{sess.conflicts[idx]}
	if in.ApplyToRemaining {
		targets = append(targets, append(append([]conflict{}, sess.conflicts[:idx]...), sess.conflicts[idx+1:]...)...)
		sess.conflicts = nil
	} else {
		sess.conflicts = append(sess.conflicts[:idx], sess.conflicts[idx+1:]...)
	}

	for _, c := range targets {
		switch in.Decision {
		case DecisionSkip:
			sess.skipped++
		case DecisionAddDuplicate:
			sess.adds = append(sess.adds, c.Row)
		case DecisionUpdateExisting:
			sess.updates[c.Existing.ID] = c.Row
		}
	}

	if len(sess.conflicts) > 0 {
		return status(sess, false, 0, 0), nil
	}

	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()
	return uc.commit(sess)
}

// Cancel discards a suspended session. Nothing was written.
func (uc *ImportUseCase) Cancel(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[sessionID]; !ok {
		return fmt.Errorf("import session %s: %w", sessionID, domain.ErrNotFound)
	}
	delete(uc.sessions, sessionID)
	return nil
}

// commit performs the final batch write: one insert batch per collection plus
// the staged field updates, then invalidates the view cache.
func (uc *ImportUseCase) commit(sess *importSession) (*dto.ImportStatusResponse, error) {
	now := uc.Now()

	existingCustomers, err := uc.customers.List()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	existingServices, err := uc.services.List()
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	customerIDs := make([]string, 0, len(existingCustomers))
	for _, c := range existingCustomers {
		customerIDs = append(customerIDs, c.ID)
	}
	serviceIDs := make([]string, 0, len(existingServices))
	for _, s := range existingServices {
		serviceIDs = append(serviceIDs, s.ID)
	}
	alloc := schedule.NewServiceIDAllocator(serviceIDs)

	var newCustomers []*entity.Customer
	var newServices []*entity.ServiceRecord
	for _, row := range sess.adds {
		installed, err := schedule.ParseDate(row.InstallDate)
		if err != nil {
			return nil, fmt.Errorf("install date %q for %q: %w", row.InstallDate, row.Name, domain.ErrValidation)
		}
		id := schedule.NextCustomerID(customerIDs, now)
		customerIDs = append(customerIDs, id) // running counter across the batch

		newCustomers = append(newCustomers, &entity.Customer{
			ID:          id,
			Name:        row.Name,
			Address:     row.Address,
			Phone:       row.Phone,
			City:        row.City,
			InstallDate: schedule.FormatDate(installed),
			Notes:       row.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		reminder := schedule.AddMonths(installed, 6)
		newServices = append(newServices,
			&entity.ServiceRecord{
				ID:         alloc.Next(installed),
				CustomerID: id,
				Date:       schedule.FormatDate(installed),
				Status:     entity.StatusCompleted,
				Notes:      entity.InstallationNote,
			},
			&entity.ServiceRecord{
				ID:         alloc.Next(reminder),
				CustomerID: id,
				Date:       schedule.FormatDate(reminder),
				Status:     entity.StatusUpcoming,
				Notes:      entity.RoutineNote,
			})
	}

	if len(newCustomers) > 0 {
		if err := uc.customers.CreateBatch(newCustomers); err != nil {
			return nil, fmt.Errorf("import customers: %w", err)
		}
		if err := uc.services.CreateBatch(newServices); err != nil {
			return nil, fmt.Errorf("import services: %w", err)
		}
	}

	updated := 0
	for existingID, row := range sess.updates {
		customer, err := uc.customers.GetByID(existingID)
		if err != nil {
			return nil, fmt.Errorf("get customer %s: %w", existingID, err)
		}
		if customer == nil {
			continue // deleted since staging; nothing to update
		}
		applyRow(customer, row, now)
		if err := uc.customers.Update(customer); err != nil {
			return nil, fmt.Errorf("update customer %s: %w", existingID, err)
		}
		updated++
	}

	uc.session.Invalidate()
	uc.log.Info().Int("imported", len(newCustomers)).Int("updated", updated).
		Int("skipped", sess.skipped).Msg("import committed")
	return status(sess, true, len(newCustomers), updated), nil
}

func applyRow(customer *entity.Customer, row importRow, now time.Time) {
	if row.Name != "" {
		customer.Name = row.Name
	}
	if row.Address != "" {
		customer.Address = row.Address
	}
	if row.Phone != "" {
		customer.Phone = row.Phone
	}
	if row.City != "" {
		customer.City = row.City
	}
	if row.InstallDate != "" {
		customer.InstallDate = row.InstallDate
	}
	if row.Notes != "" {
		customer.Notes = row.Notes
	}
	customer.UpdatedAt = now
}

// parseRows reads the CSV and normalizes each row. Column resolution is by
// header name (the store's Indonesian names), so exported files round-trip.
func parseRows(r io.Reader) ([]importRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("csv has no data rows: %w", domain.ErrValidation)
	}

	col := make(map[string]int)
	for i, name := range all[0] {
		col[strings.TrimSpace(name)] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	if _, ok := col["Nama"]; !ok {
		return nil, fmt.Errorf("missing Nama column: %w", domain.ErrValidation)
	}

	rows := make([]importRow, 0, len(all)-1)
	for _, raw := range all[1:] {
		row := importRow{
			Name:        get(raw, "Nama"),
			Address:     get(raw, "Alamat"),
			Phone:       usecase.NormalizePhone(get(raw, "No Telp")),
			City:        usecase.CanonicalCity(get(raw, "Kota")),
			InstallDate: get(raw, "Pemasangan"),
			Notes:       get(raw, "Notes Pelanggan"),
		}
		if row.Name == "" {
			continue // blank padding rows are common in spreadsheet exports
		}
		if _, err := schedule.ParseDate(row.InstallDate); err != nil {
			return nil, fmt.Errorf("row %q install date %q: %w", row.Name, row.InstallDate, domain.ErrValidation)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// findDuplicate matches an incoming row against existing customers: first by
// normalized phone, then by case-insensitive name + address.
func findDuplicate(existing []entity.Customer, row importRow) (*entity.Customer, string) {
	for i := range existing {
		c := &existing[i]
		if row.Phone != "" && c.Phone == row.Phone {
			return c, "phone_match"
		}
	}
	for i := range existing {
		c := &existing[i]
		if strings.EqualFold(c.Name, row.Name) && strings.EqualFold(c.Address, row.Address) {
			return c, "name_address_match"
		}
	}
	return nil, ""
}

func status(sess *importSession, committed bool, imported, updated int) *dto.ImportStatusResponse {
	conflicts := make([]dto.ImportConflictResponse, 0, len(sess.conflicts))
	for _, c := range sess.conflicts {
		conflicts = append(conflicts, dto.ImportConflictResponse{
			ConflictID:          c.ID,
			Reason:              c.Reason,
			ExistingCustomerID:  c.Existing.ID,
			ExistingName:        c.Existing.Name,
			IncomingName:        c.Row.Name,
			IncomingAddress:     c.Row.Address,
			IncomingPhone:       c.Row.Phone,
			IncomingCity:        c.Row.City,
			IncomingInstallDate: c.Row.InstallDate,
			IncomingNotes:       c.Row.Notes,
		})
	}
	return &dto.ImportStatusResponse{
		SessionID: sess.ID,
		Staged:    len(sess.adds) + len(sess.updates),
		Skipped:   sess.skipped,
		Conflicts: conflicts,
		Committed: committed,
		Imported:  imported,
		Updated:   updated,
	}
}
