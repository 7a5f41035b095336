// Package pdf renders the service schedule as a printable A4 report.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: title (left)  │  generation timestamp (right)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Nama | Kota | No Telp | Next Service | Status |     │
//	│         Priority | Handler                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: row count                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ transfer.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements transfer.ReportGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ScheduleReport renders the PDF and returns its bytes.
func (g *MarotoReportGenerator) ScheduleReport(records []transfer.FlatRecord, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Jadwal Service Pelanggan", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(records) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(records)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: report title (left) and generation timestamp (right).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("JADWAL SERVICE PELANGGAN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pengingat Service Pemanas Air", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Dibuat: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: column headings for the schedule table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nama", 3, align.Left),
		h("Kota", 1, align.Left),
		h("No Telp", 2, align.Left),
		h("Next Service", 2, align.Center),
		h("Status", 1, align.Center),
		h("Prioritas", 2, align.Center),
		h("Petugas", 1, align.Left),
	)
}

// tableRows: one row per flattened customer record.
func tableRows(records []transfer.FlatRecord) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, rec := range records {
		priorityColor := colorGray
		if rec.Priority == "High" || rec.Priority == "Sangat Mendesak" {
			priorityColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(rec.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(rec.City, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(rec.Phone, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(nonEmpty(rec.NextService, "—"), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(rec.Status, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(rec.Priority, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: priorityColor,
			})),
			col.New(1).Add(text.New(rec.Handler, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
		))
	}
	return result
}

// footerRow: total row count.
func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total pelanggan: %d", count), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
