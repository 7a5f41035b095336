package usecase_test

import (
	"errors"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// In-memory repository fakes with per-row failure injection for the cascade
// delete scenarios.

type fakeCustomerRepo struct {
	rows       []entity.Customer
	listCalls  int
	failDelete map[string]int // id -> remaining failures
}

func newFakeCustomerRepo(rows ...entity.Customer) *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: rows, failDelete: map[string]int{}}
}

func (f *fakeCustomerRepo) List() ([]entity.Customer, error) {
	f.listCalls++
	out := make([]entity.Customer, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	for i := range f.rows {
		if f.rows[i].ID == c.ID {
			return domain.ErrDuplicate
		}
	}
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCustomerRepo) CreateBatch(cs []*entity.Customer) error {
	for _, c := range cs {
		if err := f.Create(c); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	for i := range f.rows {
		if f.rows[i].ID == c.ID {
			f.rows[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCustomerRepo) Delete(id string) error {
	if n := f.failDelete[id]; n > 0 {
		f.failDelete[id] = n - 1
		return errors.New("simulated store failure")
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeServiceRepo struct {
	rows       []entity.ServiceRecord
	listCalls  int
	failDelete map[string]int
}

func newFakeServiceRepo(rows ...entity.ServiceRecord) *fakeServiceRepo {
	return &fakeServiceRepo{rows: rows, failDelete: map[string]int{}}
}

func (f *fakeServiceRepo) List() ([]entity.ServiceRecord, error) {
	f.listCalls++
	out := make([]entity.ServiceRecord, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeServiceRepo) ListByCustomer(customerID string) ([]entity.ServiceRecord, error) {
	var out []entity.ServiceRecord
	for _, s := range f.rows {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			s := f.rows[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) CreateBatch(records []*entity.ServiceRecord) error {
	for _, r := range records {
		f.rows = append(f.rows, *r)
	}
	return nil
}

func (f *fakeServiceRepo) Update(record *entity.ServiceRecord) error {
	for i := range f.rows {
		if f.rows[i].ID == record.ID {
			f.rows[i] = *record
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeServiceRepo) Delete(id string) error {
	if n := f.failDelete[id]; n > 0 {
		f.failDelete[id] = n - 1
		return errors.New("simulated store failure")
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// fixedNow pins the clock for deterministic IDs and derived fields.
func fixedNow(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
