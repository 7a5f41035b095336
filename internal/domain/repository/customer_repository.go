package repository

import "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"

// CustomerRepository is the persistence port for the Customers collection. Any
// row-oriented backend (SQL, spreadsheet, in-memory) can sit behind it.
// Lookups return (nil, nil) when the row does not exist.
type CustomerRepository interface {
	List() ([]entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(customer *entity.Customer) error
	CreateBatch(customers []*entity.Customer) error
	Update(customer *entity.Customer) error
	Delete(id string) error
}
