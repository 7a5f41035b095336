// Package export renders the flattened schedule data for interchange formats.
package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
)

var _ transfer.XMLBuilder = (*EtreeXMLBuilder)(nil)

// EtreeXMLBuilder implements transfer.XMLBuilder using beevik/etree.
//
// Document shape:
//
//	<customers>
//	  <customer id="CUST-...">
//	    <nama>...</nama>
//	    ...
//	    <service id="SVC-...">...</service>
//	  </customer>
//	</customers>
type EtreeXMLBuilder struct{}

// NewEtreeXMLBuilder builds the service.
func NewEtreeXMLBuilder() *EtreeXMLBuilder {
	return &EtreeXMLBuilder{}
}

// Build serializes the flattened records as an indented XML document.
func (b *EtreeXMLBuilder) Build(records []transfer.FlatRecord) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("customers")
	for _, rec := range records {
		customer := root.CreateElement("customer")
		customer.CreateAttr("id", rec.CustomerID)
		customer.CreateElement("nama").SetText(rec.Name)
		customer.CreateElement("alamat").SetText(rec.Address)
		customer.CreateElement("noTelp").SetText(rec.Phone)
		customer.CreateElement("kota").SetText(rec.City)
		customer.CreateElement("pemasangan").SetText(rec.InstallDate)
		if rec.Notes != "" {
			customer.CreateElement("notes").SetText(rec.Notes)
		}

		service := customer.CreateElement("service")
		service.CreateAttr("id", rec.ServiceID)
		service.CreateElement("nextService").SetText(rec.NextService)
		service.CreateElement("status").SetText(rec.Status)
		if rec.ServiceNotes != "" {
			service.CreateElement("serviceNotes").SetText(rec.ServiceNotes)
		}
		if rec.Handler != "" {
			service.CreateElement("handler").SetText(rec.Handler)
		}
		service.CreateElement("priority").SetText(rec.Priority)
		service.CreateElement("daysUntil").SetText(rec.DaysUntil)
		service.CreateElement("contactStatus").SetText(rec.ContactStatus)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serialize XML: %w", err)
	}
	return out, nil
}
