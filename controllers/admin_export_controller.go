package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// ExportSubscribers downloads the subscriber list as an Excel or PDF report
func ExportSubscribers(c *gin.Context) {
	utils.LogInfo("ExportSubscribers called")

	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "pdf" {
		utils.BadRequest(c, "Invalid format", "Format must be xlsx or pdf")
		return
	}

	var subscribers []models.Subscriber
	if err := config.DB.Order("created_at desc").Find(&subscribers).Error; err != nil {
		utils.LogError("Failed to fetch subscribers for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", err.Error())
		return
	}
	utils.LogDebug("Exporting %d subscribers as %s", len(subscribers), format)

	filename := fmt.Sprintf("subscribers-%s.%s", time.Now().Format("2006-01-02"), format)

	if format == "xlsx" {
		exportSubscribersExcel(c, subscribers, filename)
		return
	}
	exportSubscribersPDF(c, subscribers, filename)
}

func exportSubscribersExcel(c *gin.Context, subscribers []models.Subscriber, filename string) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Subscribers")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Email", "Name", "Phone", "Country", "City", "Active", "Source", "Created"} {
		header.AddCell().Value = title
	}

	for _, s := range subscribers {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprintf("%d", s.ID)
		row.AddCell().Value = s.Email
		row.AddCell().Value = s.Name
		row.AddCell().Value = s.Phone
		row.AddCell().Value = s.Country
		row.AddCell().Value = s.City
		row.AddCell().Value = fmt.Sprintf("%v", s.IsActive)
		row.AddCell().Value = s.Source
		row.AddCell().Value = s.CreatedAt.Format("2006-01-02 15:04:05")
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func exportSubscribersPDF(c *gin.Context, subscribers []models.Subscriber, filename string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "DealsHub Subscriber Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 8, fmt.Sprintf("Generated %s - %d subscribers", time.Now().Format("2006-01-02"), len(subscribers)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(60, 7, "Email", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Country", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Active", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 7, "Created", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, s := range subscribers {
		pdf.CellFormat(60, 6, s.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, s.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, s.Country, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%v", s.IsActive), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, s.CreatedAt.Format("2006-01-02"), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/pdf", buf.Bytes())
}
