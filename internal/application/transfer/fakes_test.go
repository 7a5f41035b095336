package transfer_test

import (
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

type fakeCustomerRepo struct {
	rows         []entity.Customer
	batchWrites  int
	singleWrites int
}

func (f *fakeCustomerRepo) List() ([]entity.Customer, error) {
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
	f.singleWrites++
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCustomerRepo) CreateBatch(cs []*entity.Customer) error {
	f.batchWrites++
	for _, c := range cs {
		f.rows = append(f.rows, *c)
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
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeServiceRepo struct {
	rows        []entity.ServiceRecord
	batchWrites int
}

func (f *fakeServiceRepo) List() ([]entity.ServiceRecord, error) {
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
	f.batchWrites++
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
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// stubReport and stubXML record what they were handed.
type stubReport struct {
	records []transfer.FlatRecord
}

func (s *stubReport) ScheduleReport(records []transfer.FlatRecord, _ time.Time) ([]byte, error) {
	s.records = records
	return []byte("%PDF-stub"), nil
}

type stubXML struct {
	records []transfer.FlatRecord
}

func (s *stubXML) Build(records []transfer.FlatRecord) ([]byte, error) {
	s.records = records
	return []byte("<customers/>"), nil
}

func fixedNow(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
