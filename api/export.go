package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"financas/database"
	"financas/middleware"
	"financas/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports the caller's transactions over a date range.
type ExportHandler struct{}

// NewExportHandler creates the export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// Export writes the caller's transactions in the requested format.
// @Summary Export transactions
// @Description Exports transactions in a date range as csv, json or xlsx.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param format query string false "csv, json or xlsx" default(csv)
// @Param startDate query string true "start date (2024-01-01)"
// @Param endDate query string true "end date (2024-12-31)"
// @Success 200 {file} file "exported file"
// @Failure 400 {object} Response "invalid parameters"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/transacoes/exportar [get]
func (h *ExportHandler) Export(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		BadRequest(c, "required query parameters: startDate and endDate")
		return
	}

	start, err := time.ParseInLocation(models.DateLayout, startStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid startDate, expected format: "+models.DateLayout)
		return
	}
	end, err := time.ParseInLocation(models.DateLayout, endStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid endDate, expected format: "+models.DateLayout)
		return
	}

	var transactions []models.Transaction
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to query transactions"))
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		h.writeCSV(c, transactions, startStr, endStr)
	case "json":
		h.writeJSON(c, transactions, startStr, endStr)
	case "xlsx":
		h.writeXLSX(c, transactions, startStr, endStr)
	default:
		BadRequest(c, "format must be csv, json or xlsx")
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, transactions []models.Transaction, startStr, endStr string) {
	buf := new(bytes.Buffer)
	// BOM keeps Excel happy with UTF-8 content.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Description", "Amount", "Date", "Type", "Category", "Created At"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	for _, tx := range transactions {
		row := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Description,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Date.Format(models.DateLayout),
			tx.Type,
			tx.Category.Name,
			tx.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) writeJSON(c *gin.Context, transactions []models.Transaction, startStr, endStr string) {
	var summary models.Summary
	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			summary.Income += tx.Amount
		case models.TypeExpense:
			summary.Expense += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense

	Success(c, gin.H{
		"startDate":    startStr,
		"endDate":      endStr,
		"count":        len(transactions),
		"summary":      summary,
		"transactions": transactions,
	})
}

func (h *ExportHandler) writeXLSX(c *gin.Context, transactions []models.Transaction, startStr, endStr string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transactions"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 20)

	headers := []string{"ID", "Description", "Amount", "Date", "Type", "Category"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var balance float64
	for i, tx := range transactions {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Date.Format(models.DateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.Category.Name)
		if tx.Type == models.TypeIncome {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}

	summaryRow := len(transactions) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Balance")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), balance)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(transactions)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to generate spreadsheet")
	}
}
