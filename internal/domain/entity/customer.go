package entity

import "time"

// Customer is a tracked service customer. Dates are kept as YYYY-MM-DD strings,
// matching the row store's column format (the backing store is spreadsheet-like).
type Customer struct {
	ID          string // CUST-YYYYMMDDNNNNN
	Name        string // Nama
	Address     string // Alamat
	Phone       string // No Telp, normalized to international digits (62...)
	City        string // Kota, canonicalized to capitalized form
	InstallDate string // Pemasangan, YYYY-MM-DD
	Notes       string // Notes Pelanggan
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
