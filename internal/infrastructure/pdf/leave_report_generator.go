// Package pdf implementa el reporte de permisos aprobados en PDF (Maroto v2).
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/RRHH-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LeaveReportGenerator genera el reporte de permisos aprobados usando Maroto v2.
type LeaveReportGenerator struct{}

// NewLeaveReportGenerator construye el generador.
func NewLeaveReportGenerator() *LeaveReportGenerator { return &LeaveReportGenerator{} }

// GenerateApprovedLeavesPDF genera el PDF y devuelve sus bytes.
// Las solicitudes llegan ya ordenadas por fecha de inicio ascendente.
func (g *LeaveReportGenerator) GenerateApprovedLeavesPDF(leaves []*entity.LeaveWithEmployee) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de permisos aprobados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(leaves)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(leaves) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte + fecha de generación y total.
func headerRow(total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("PERMISOS APROBADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Total: %d solicitudes", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empleado", 3, align.Left),
		h("Cargo", 2, align.Left),
		h("Inicio", 2, align.Center),
		h("Fin", 2, align.Center),
		h("Motivo", 3, align.Left),
	)
}

// tableRows: una fila por solicitud aprobada.
func tableRows(leaves []*entity.LeaveWithEmployee) []core.Row {
	result := make([]core.Row, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(l.Employee.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Employee.Position, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.StartDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.EndDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(l.Reason, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}
