// Package excel genera el reporte de valoración de inventario en XLSX.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const valuationSheet = "Valoracion"

// ValuationExporter implementa reporting.ValuationExporter usando excelize.
type ValuationExporter struct{}

// NewValuationExporter construye el exportador.
func NewValuationExporter() *ValuationExporter { return &ValuationExporter{} }

// GenerateValuationXLSX arma la hoja de valoración: una fila por producto y
// una fila final con el valor total del inventario (Σ stock × costo promedio).
func (e *ValuationExporter) GenerateValuationXLSX(_ context.Context, rows []repository.ValuationRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(valuationSheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja inicial: %w", err)
	}

	headers := []string{"Producto", "Categoría", "Stock", "Costo promedio", "Precio", "Valor total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(valuationSheet, cell, h)
	}

	total := decimal.Zero
	for i, r := range rows {
		rowNo := i + 2
		value := r.AverageCost.Mul(decimal.NewFromInt(r.Stock))
		total = total.Add(value)

		setCell := func(colNo int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(colNo, rowNo)
			f.SetCellValue(valuationSheet, cell, v)
		}
		setCell(1, r.ProductName)
		setCell(2, r.CategoryName)
		setCell(3, r.Stock)
		setCell(4, r.AverageCost.InexactFloat64())
		setCell(5, r.Price.InexactFloat64())
		setCell(6, value.Round(2).InexactFloat64())
	}

	totalRow := len(rows) + 3
	labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	f.SetCellValue(valuationSheet, labelCell, "VALOR TOTAL DEL INVENTARIO")
	f.SetCellValue(valuationSheet, valueCell, total.Round(2).InexactFloat64())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
