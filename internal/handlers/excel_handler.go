package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/services/excel"

	"github.com/gin-gonic/gin"
)

type ExcelHandler struct {
	excelService *excel.Service
}

func NewExcelHandler(excelService *excel.Service) *ExcelHandler {
	return &ExcelHandler{excelService: excelService}
}

// ImportUsers godoc
// @Summary Import users from a spreadsheet
// @Description Import user accounts from an uploaded .xlsx or .csv file. Columns: username, password, full_name, email, role, faculty, major_code. Existing usernames are skipped.
// @Tags excel
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet file (.xlsx or .csv)"
// @Success 200 {object} excel.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/import/users [post]
func (h *ExcelHandler) ImportUsers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.excelService.ImportUsersFromFile(file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result, "message": result.Message})
}

// ImportMajors godoc
// @Summary Import majors from a spreadsheet
// @Description Import majors from an uploaded .xlsx or .csv file. Columns: code, name, description. Existing codes are skipped.
// @Tags excel
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet file (.xlsx or .csv)"
// @Success 200 {object} excel.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/import/majors [post]
func (h *ExcelHandler) ImportMajors(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.excelService.ImportMajorsFromFile(file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result, "message": result.Message})
}

// ExportUsers godoc
// @Summary Export users
// @Description Export users to a spreadsheet, optionally filtered by role. Format is xlsx unless format=csv.
// @Tags excel
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param format query string false "Export format (xlsx or csv)"
// @Success 200 {object} excel.ExportResult
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/export/users [post]
func (h *ExcelHandler) ExportUsers(c *gin.Context) {
	role := c.Query("role")

	var result *excel.ExportResult
	var err error
	if c.Query("format") == "csv" {
		result, err = h.excelService.ExportUsersToCSV(role)
	} else {
		result, err = h.excelService.ExportUsersToExcel(role)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result, "message": result.Message})
}

// ExportTopics godoc
// @Summary Export topics
// @Tags excel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} excel.ExportResult
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/export/topics [post]
func (h *ExcelHandler) ExportTopics(c *gin.Context) {
	result, err := h.excelService.ExportTopicsToExcel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result, "message": result.Message})
}

// ExportRegistrations godoc
// @Summary Export registrations
// @Description Export all membership records with topic and student info
// @Tags excel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} excel.ExportResult
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/export/registrations [post]
func (h *ExcelHandler) ExportRegistrations(c *gin.Context) {
	result, err := h.excelService.ExportRegistrationsToExcel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result, "message": result.Message})
}

// Download godoc
// @Summary Download an export file
// @Tags excel
// @Produce octet-stream
// @Security BearerAuth
// @Param filename path string true "Export filename"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/export/download/{filename} [get]
func (h *ExcelHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.excelService.ExportPath(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Export file not found"})
		return
	}

	c.FileAttachment(path, filename)
}
