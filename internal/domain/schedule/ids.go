package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	customerIDPrefix = "CUST-"
	serviceIDPrefix  = "SVC-"

	// CUST- + YYYYMMDD + NNNNN
	customerIDMinLen = 18
	// SVC- + YYYYMMDD + NNNNN
	serviceIDMinLen = 17
)

// NextCustomerID allocates the next customer ID: CUST-YYYYMMDD (today) plus a
// 5-digit sequence. The sequence is a single global counter: 1 + the highest
// numeric suffix over ALL existing customer IDs, regardless of their date part.
func NextCustomerID(existing []string, today time.Time) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, customerIDPrefix) || len(id) < customerIDMinLen {
			continue
		}
		n, err := strconv.Atoi(id[len(id)-5:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%s%05d", customerIDPrefix, today.Format("20060102"), max+1)
}

// ServiceIDAllocator hands out service IDs for a batch of inserts. It snapshots
// the existing ID set once at construction and keeps a running counter per date
// prefix, so multiple inserts in one operation never collide even though the
// store is not re-read between them.
type ServiceIDAllocator struct {
	lastByDate map[string]int
}

// NewServiceIDAllocator builds an allocator from a full, consistent snapshot of
// the existing service IDs. Take the snapshot immediately before the batch.
func NewServiceIDAllocator(existing []string) *ServiceIDAllocator {
	last := make(map[string]int)
	for _, id := range existing {
		if !strings.HasPrefix(id, serviceIDPrefix) || len(id) < serviceIDMinLen {
			continue
		}
		datePart := id[len(serviceIDPrefix) : len(serviceIDPrefix)+8]
		n, err := strconv.Atoi(id[len(id)-5:])
		if err != nil {
			continue
		}
		if n > last[datePart] {
			last[datePart] = n
		}
	}
	return &ServiceIDAllocator{lastByDate: last}
}

// Next returns a fresh service ID for the given service date. The sequence
// resets per distinct date: SVC-YYYYMMDD of the date plus 1 + the highest suffix
// seen for that date (snapshot or previously allocated here).
func (a *ServiceIDAllocator) Next(date time.Time) string {
	key := date.Format("20060102")
	a.lastByDate[key]++
	return fmt.Sprintf("%s%s%05d", serviceIDPrefix, key, a.lastByDate[key])
}
