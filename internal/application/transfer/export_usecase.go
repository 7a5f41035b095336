package transfer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/repository"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
)

// CSVHeader is the column order of the flattened CSV export. The customer
// columns use the store's own (Indonesian) names so an exported file can be
// re-imported unchanged.
var CSVHeader = []string{
	"CustomerID", "Nama", "Alamat", "No Telp", "Kota", "Pemasangan", "Notes Pelanggan",
	"ServiceID", "NextService", "Status", "ServiceNotes", "Handler",
	"Priority", "DaysUntil", "ContactStatus",
}

// ExportUseCase flattens the assembled views for file export.
type ExportUseCase struct {
	customers  repository.CustomerRepository
	services   repository.ServiceRepository
	priorities schedule.PriorityConfig
	pdf        ReportGenerator
	xml        XMLBuilder

	Now func() time.Time
}

// NewExportUseCase builds the usecase.
func NewExportUseCase(
	customers repository.CustomerRepository,
	services repository.ServiceRepository,
	priorities schedule.PriorityConfig,
	pdf ReportGenerator,
	xml XMLBuilder,
) *ExportUseCase {
	return &ExportUseCase{
		customers:  customers,
		services:   services,
		priorities: priorities,
		pdf:        pdf,
		xml:        xml,
		Now:        time.Now,
	}
}

// Flatten assembles fresh views and flattens them, one row per customer.
func (uc *ExportUseCase) Flatten() ([]FlatRecord, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	services, err := uc.services.List()
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	today := schedule.StartOfDay(uc.Now())
	views := schedule.Assemble(customers, services)
	records := make([]FlatRecord, 0, len(views))
	for _, v := range views {
		next := ""
		if v.NextService != nil {
			next = *v.NextService
		}
		records = append(records, FlatRecord{
			CustomerID:    v.ID,
			Name:          v.Name,
			Address:       v.Address,
			Phone:         v.Phone,
			City:          v.City,
			InstallDate:   v.InstallDate,
			Notes:         v.Notes,
			ServiceID:     v.ServiceID,
			NextService:   next,
			Status:        v.Status,
			ServiceNotes:  v.ServiceNotes,
			Handler:       v.Handler,
			Priority:      schedule.Priority(v, today, uc.priorities),
			DaysUntil:     schedule.DaysUntilService(v, today),
			ContactStatus: schedule.ContactStatus(v, today),
		})
	}
	return records, nil
}

// WriteCSV streams the flattened data as CSV.
func (uc *ExportUseCase) WriteCSV(w io.Writer) error {
	records, err := uc.Flatten()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.CustomerID, r.Name, r.Address, r.Phone, r.City, r.InstallDate, r.Notes,
			r.ServiceID, r.NextService, r.Status, r.ServiceNotes, r.Handler,
			r.Priority, r.DaysUntil, r.ContactStatus,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// XML renders the flattened data through the XML builder.
func (uc *ExportUseCase) XML() ([]byte, error) {
	records, err := uc.Flatten()
	if err != nil {
		return nil, err
	}
	return uc.xml.Build(records)
}

// PDF renders the flattened data through the report generator.
func (uc *ExportUseCase) PDF() ([]byte, error) {
	records, err := uc.Flatten()
	if err != nil {
		return nil, err
	}
	return uc.pdf.ScheduleReport(records, uc.Now())
}
