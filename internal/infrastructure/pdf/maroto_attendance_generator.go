// Package pdf implementa el render de la hoja mensual de asistencia con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empleado + código  │  Mes/Año del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERFIL: Departamento / Cargo / Sede                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Check-in | Check-out | Estado | Verificado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: días Present / Half-Day / con registro            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/empleados-api/internal/application/report"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.AttendancePDFGenerator = (*MarotoAttendanceGenerator)(nil)

// MarotoAttendanceGenerator implementa report.AttendancePDFGenerator usando Maroto v2.
type MarotoAttendanceGenerator struct{}

// NewMarotoAttendanceGenerator construye el generador.
func NewMarotoAttendanceGenerator() *MarotoAttendanceGenerator { return &MarotoAttendanceGenerator{} }

// GenerateAttendanceSheet genera el PDF y devuelve sus bytes.
func (g *MarotoAttendanceGenerator) GenerateAttendanceSheet(_ context.Context, sheet *report.AttendanceSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual de asistencia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if sheet.Profile != nil {
		m.AddRows(profileRow(sheet.Profile))
	}
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(sheet.Records) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y código del empleado (izq), mes del reporte (der).
func headerRow(sheet *report.AttendanceSheet) core.Row {
	name := sheet.User.FirstName + " " + sheet.User.LastName
	if name == " " {
		name = sheet.User.Username
	}
	code := "-"
	if sheet.User.EmployeeID != nil {
		code = *sheet.User.EmployeeID
	}
	period := fmt.Sprintf("%s %d", sheet.Month.String(), sheet.Year)

	return row.New(16).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ATTENDANCE REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// profileRow: departamento, cargo y sede del empleado.
func profileRow(p *entity.Profile) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Departamento: %s   |   Cargo: %s   |   Sede: %s",
				nonEmpty(p.Department, "-"),
				nonEmpty(p.Designation, "-"),
				nonEmpty(p.Location, "-"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de días.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Check-in", 2, align.Center),
		h("Check-out", 2, align.Center),
		h("Estado", 3, align.Center),
		h("Ubicación", 2, align.Center),
	)
}

// tableRows: una fila por día con registro.
func tableRows(records []*entity.Attendance) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, rec := range records {
		verified := "No"
		if rec.LocationVerified {
			verified = "Sí"
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(rec.Date.Format("2006-01-02"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(clock(rec.CheckInTime), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(clock(rec.CheckOutTime), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(rec.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(verified, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// totalsRow: resumen del mes.
func totalsRow(sheet *report.AttendanceSheet) core.Row {
	summary := fmt.Sprintf("Present: %d   |   Half-Day: %d   |   Días con registro: %d",
		sheet.Present, sheet.HalfDays, len(sheet.Records))
	return row.New(10).Add(
		col.New(12).Add(
			text.New(summary, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
		),
	)
}

func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
