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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository over the customers table. Date
// columns are TEXT holding YYYY-MM-DD, mirroring the row-store format.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, nama, alamat, no_telp, kota, pemasangan, notes, created_at, updated_at`

// List returns all customer rows in insertion order.
func (r *CustomerRepo) List() ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID returns one customer, or (nil, nil) when missing.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(context.Background(), query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Create persists a new customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, nama, alamat, no_telp, kota, pemasangan, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Address, customer.Phone, customer.City,
		customer.InstallDate, customer.Notes, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// CreateBatch inserts several customers in one round trip.
func (r *CustomerRepo) CreateBatch(customers []*entity.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{c.ID, c.Name, c.Address, c.Phone, c.City, c.InstallDate, c.Notes, c.CreatedAt, c.UpdatedAt})
	}
	return copyInto(r.q, "customers",
		[]string{"id", "nama", "alamat", "no_telp", "kota", "pemasangan", "notes", "created_at", "updated_at"},
		rows)
}

// Update rewrites a customer's mutable fields.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET nama = $2, alamat = $3, no_telp = $4, kota = $5, pemasangan = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Address, customer.Phone, customer.City,
		customer.InstallDate, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer row by ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.City, &c.InstallDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
}
