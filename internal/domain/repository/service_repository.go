package repository

import "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"

// ServiceRepository is the persistence port for the Services collection.
type ServiceRepository interface {
	List() ([]entity.ServiceRecord, error)
	ListByCustomer(customerID string) ([]entity.ServiceRecord, error)
	GetByID(id string) (*entity.ServiceRecord, error)
	CreateBatch(services []*entity.ServiceRecord) error
	Update(service *entity.ServiceRecord) error
	Delete(id string) error
}
