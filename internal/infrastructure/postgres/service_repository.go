package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implements ServiceRepository over the services table.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, customer_id, service_date, status, notes, handler`

// List returns all service rows in insertion order. The assembler depends on
// this order for its first-encounter output ordering.
func (r *ServiceRepo) List() ([]entity.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY seq`
	return r.queryList(query)
}

// ListByCustomer returns one customer's service rows.
func (r *ServiceRepo) ListByCustomer(customerID string) ([]entity.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE customer_id = $1 ORDER BY seq`
	return r.queryList(query, customerID)
}

// GetByID returns one service record, or (nil, nil) when missing.
func (r *ServiceRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	var s entity.ServiceRecord
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&s.ID, &s.CustomerID, &s.Date, &s.Status, &s.Notes, &s.Handler)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// CreateBatch inserts service records in one round trip.
func (r *ServiceRepo) CreateBatch(services []*entity.ServiceRecord) error {
	if len(services) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(services))
	for _, s := range services {
		rows = append(rows, []any{s.ID, s.CustomerID, s.Date, s.Status, s.Notes, s.Handler})
	}
	return copyInto(r.q, "services",
		[]string{"id", "customer_id", "service_date", "status", "notes", "handler"},
		rows)
}

// Update rewrites a service record's mutable fields.
func (r *ServiceRepo) Update(service *entity.ServiceRecord) error {
	query := `
		UPDATE services SET service_date = $2, status = $3, notes = $4, handler = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		service.ID, service.Date, service.Status, service.Notes, service.Handler,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a service row by ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (r *ServiceRepo) queryList(query string, args ...any) ([]entity.ServiceRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []entity.ServiceRecord
	for rows.Next() {
		var s entity.ServiceRecord
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Date, &s.Status, &s.Notes, &s.Handler); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
