package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"

	"next-golang/internal/catalog"
	"next-golang/internal/service/labor"
	"next-golang/internal/service/materials"
	"next-golang/internal/storage"
)

type ReportStorage interface {
	GetReport(ctx context.Context, id int64) (*storage.Report, error)
}

type GenerateExcelService struct {
	storage ReportStorage
	labor   *labor.Engine
	cat     catalog.Catalog
}

func NewGenerateService(storage ReportStorage, laborEngine *labor.Engine, cat catalog.Catalog) *GenerateExcelService {
	return &GenerateExcelService{storage: storage, labor: laborEngine, cat: cat}
}

// GenerateExcel は保存済みの報告書から作業報告書と材料持出表の2シートを組み立てる。
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, id int64) ([]byte, error) {
	rep, err := g.storage.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})

	if err := g.writeWorkSheet(f, rep, headerStyle, totalStyle); err != nil {
		return nil, err
	}
	if err := g.writeMaterialsSheet(f, rep, headerStyle, totalStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *GenerateExcelService) writeWorkSheet(f *excelize.File, rep *storage.Report, headerStyle, totalStyle int) error {
	sheet := "作業報告書"
	f.SetSheetName("Sheet1", sheet)

	// 基本情報
	info := [][2]string{
		{"顧客名", rep.BasicInfo.Customer},
		{"船名", rep.BasicInfo.ShipName},
		{"科目", rep.BasicInfo.Category},
		{"型名", rep.BasicInfo.ModelName},
		{"完成月日", rep.BasicInfo.CompletionDate},
	}
	for i, kv := range info {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), kv[1])
	}

	headers := []string{
		"作業者",
		g.cat.CategoryLabel("travel") + " (h)",
		g.cat.CategoryLabel("regular") + " (h)",
		g.cat.CategoryLabel("overtime") + " (h)",
		g.cat.CategoryLabel("holiday") + " (h)",
		"合計 (円)",
	}
	headerRow := len(info) + 2
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	firstCol, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellStyle(sheet, firstCol, lastCol, headerStyle)

	stats, grandTotal := g.labor.Calculate(rep.SelectedWorkers, rep.WorkerTimes)

	row := headerRow + 1
	for _, worker := range rep.SelectedWorkers {
		s := stats[worker]
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), worker)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.TravelHours)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.RegularHours)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.OvertimeHours)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.HolidayHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.TotalCost)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "総合計")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), grandTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), totalStyle)

	fitColumns(f, sheet, headers)
	return nil
}

func (g *GenerateExcelService) writeMaterialsSheet(f *excelize.File, rep *storage.Report, headerStyle, totalStyle int) error {
	sheet := "材料持出表"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	headers := []string{"日付", "品名", "型式", "在庫", "仕入先", "数量",
		"仕入単価", "仕入合計", "売値単価", "売値合計", "送料", "持出者"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	row := 2
	for _, m := range rep.Materials {
		stock := ""
		if m.IsStock {
			stock = "在庫"
		}
		values := []interface{}{m.Date, m.ProductName, m.ModelType, stock, m.Supplier,
			m.Quantity, m.PurchasePrice, m.PurchaseTotal, m.SellingPrice, m.SellingTotal,
			m.ShippingFee, m.Carrier}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	totals := materials.Totals(rep.Materials)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合計")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), totals.PurchaseTotal)
	f.SetCellValue(sheet, fmt.Sprintf("J%d", row), totals.SellingTotal)
	f.SetCellValue(sheet, fmt.Sprintf("K%d", row), totals.ShippingFee)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("L%d", row), totalStyle)

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "粗利")
	f.SetCellValue(sheet, fmt.Sprintf("J%d", row), totals.Margin)

	fitColumns(f, sheet, headers)
	return nil
}

// fitColumns は見出しの表示幅から列幅を決める。
func fitColumns(f *excelize.File, sheet string, headers []string) {
	for i, name := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w := displayWidth(name) + 4
		if w < 10 {
			w = 10
		}
		f.SetColWidth(sheet, col, col, w)
	}
}

// displayWidth は全角を2、半角を1として文字幅を数える。
func displayWidth(s string) float64 {
	var w float64
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
