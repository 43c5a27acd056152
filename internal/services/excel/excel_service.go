package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// Service handles spreadsheet import and export for users, majors, topics
// and registrations. Exports land in exportsDir and are served by filename.
type Service struct {
	userRepo   *repository.UserRepository
	majorRepo  *repository.MajorRepository
	topicRepo  *repository.TopicRepository
	regStore   *repository.RegistrationStore
	exportsDir string
}

// NewExcelService creates a new Excel service instance
func NewExcelService(
	userRepo *repository.UserRepository,
	majorRepo *repository.MajorRepository,
	topicRepo *repository.TopicRepository,
	regStore *repository.RegistrationStore,
	exportsDir string) *Service {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		userRepo:   userRepo,
		majorRepo:  majorRepo,
		topicRepo:  topicRepo,
		regStore:   regStore,
		exportsDir: exportsDir,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// ImportResult contains the result of an import operation
type ImportResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ExportPath resolves an export filename to its path on disk.
// Rejects names that escape the exports directory.
func (s *Service) ExportPath(filename string) (string, error) {
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	path := filepath.Join(s.exportsDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("export file not found: %w", err)
	}
	return path, nil
}

// ExportUsersToExcel exports users (optionally filtered by role) to an Excel file
func (s *Service) ExportUsersToExcel(role string) (*ExportResult, error) {
	var users []models.User
	var err error
	if role != "" {
		users, err = s.userRepo.GetByRole(role)
	} else {
		users, err = s.userRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("users_%d.xlsx", timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()
	sheetName := "Users"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := []string{
		"username", "full_name", "email", "role", "faculty",
		"major_code", "is_active", "created_at",
	}
	writeHeader(f, sheetName, columns)

	for i := range users {
		user := &users[i]
		rowNum := i + 2
		majorCode := ""
		if user.Major != nil {
			majorCode = user.Major.Code
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), user.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), user.FullName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), user.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), user.Role)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), user.Faculty)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), majorCode)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), user.IsActive)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), user.CreatedAt.Format(time.RFC3339))
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d users", len(users)),
		Filename: filename,
	}, nil
}

// ExportTopicsToExcel exports all topics to an Excel file
func (s *Service) ExportTopicsToExcel() (*ExportResult, error) {
	topics, err := s.topicRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("topics_%d.xlsx", timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()
	sheetName := "Topics"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := []string{
		"id", "title", "category", "major", "instructor",
		"status", "max_members", "approved_members", "created_at",
	}
	writeHeader(f, sheetName, columns)

	for i := range topics {
		topic := &topics[i]
		rowNum := i + 2
		categoryName := ""
		if topic.Category != nil {
			categoryName = topic.Category.Name
		}
		majorName := ""
		if topic.Major != nil {
			majorName = topic.Major.Name
		}
		instructorName := ""
		if topic.Instructor != nil {
			instructorName = topic.Instructor.FullName
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), topic.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), topic.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), categoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), majorName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), instructorName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), topic.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), topic.MaxMembers)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), topic.ApprovedMemberCount())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowNum), topic.CreatedAt.Format(time.RFC3339))
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d topics", len(topics)),
		Filename: filename,
	}, nil
}

// ExportRegistrationsToExcel exports all membership records to an Excel file,
// coloring rows by status.
func (s *Service) ExportRegistrationsToExcel() (*ExportResult, error) {
	members, err := s.regStore.GetAllMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("registrations_%d.xlsx", timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()
	sheetName := "Registrations"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	approvedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"C6EFCE"}, // Green
			Pattern: 1,
		},
	})
	rejectedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFC7CE"}, // Red
			Pattern: 1,
		},
	})
	pendingStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"}, // Yellow
			Pattern: 1,
		},
	})

	columns := []string{
		"topic_title", "student_username", "student_name",
		"status", "feedback", "registered_at", "decided_at",
	}
	writeHeader(f, sheetName, columns)

	for i := range members {
		member := &members[i]
		rowNum := i + 2
		topicTitle := ""
		if member.Topic != nil {
			topicTitle = member.Topic.Title
		}
		username := ""
		studentName := ""
		if member.Student != nil {
			username = member.Student.Username
			studentName = member.Student.FullName
		}
		decidedAt := ""
		if member.DecidedAt != nil {
			decidedAt = member.DecidedAt.Format(time.RFC3339)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), topicTitle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), studentName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), member.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), member.Feedback)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), member.CreatedAt.Format(time.RFC3339))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), decidedAt)

		rowRange := [2]string{fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(columns)), rowNum)}
		switch member.Status {
		case models.MemberStatusApproved:
			f.SetCellStyle(sheetName, rowRange[0], rowRange[1], approvedStyle)
		case models.MemberStatusRejected:
			f.SetCellStyle(sheetName, rowRange[0], rowRange[1], rejectedStyle)
		case models.MemberStatusPending:
			f.SetCellStyle(sheetName, rowRange[0], rowRange[1], pendingStyle)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d registrations", len(members)),
		Filename: filename,
	}, nil
}

// ExportUsersToCSV exports users (optionally filtered by role) to a CSV file
func (s *Service) ExportUsersToCSV(role string) (*ExportResult, error) {
	var users []models.User
	var err error
	if role != "" {
		users, err = s.userRepo.GetByRole(role)
	} else {
		users, err = s.userRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("users_%d.csv", timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"username", "full_name", "email", "role", "faculty", "major_code", "is_active"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range users {
		user := &users[i]
		majorCode := ""
		if user.Major != nil {
			majorCode = user.Major.Code
		}
		record := []string{
			user.Username, user.FullName, user.Email, user.Role,
			user.Faculty, majorCode, strconv.FormatBool(user.IsActive),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d users", len(users)),
		Filename: filename,
	}, nil
}

// ImportUsersFromFile imports user accounts from an uploaded .xlsx or .csv
// file. Expected columns: username, password, full_name, email, role,
// faculty, major_code. Existing usernames are skipped.
func (s *Service) ImportUsersFromFile(reader io.Reader, filename string) (*ImportResult, error) {
	rows, err := s.readRows(reader, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file contains no data rows")
	}

	colIndex, err := headerIndex(rows[0], []string{"username", "password"})
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Success: true}
	for i, row := range rows[1:] {
		rowNum := i + 2
		username := cellAt(row, colIndex["username"])
		password := cellAt(row, colIndex["password"])
		if username == "" || password == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing username or password", rowNum))
			continue
		}

		exists, err := s.userRepo.CheckUsernameExists(username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: username %q already exists", rowNum, username))
			continue
		}

		role := cellAt(row, colIndex["role"])
		if role == "" {
			role = models.RoleStudent
		}
		switch role {
		case models.RoleStudent, models.RoleTeacher, models.RoleAdmin:
		default:
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid role %q", rowNum, role))
			continue
		}

		var majorID *string
		if code := cellAt(row, colIndex["major_code"]); code != "" {
			major, err := s.majorRepo.GetByCode(code)
			if err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: unknown major code %q", rowNum, code))
				continue
			}
			majorID = &major.ID
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Username:     username,
			PasswordHash: string(hashedPassword),
			FullName:     cellAt(row, colIndex["full_name"]),
			Email:        cellAt(row, colIndex["email"]),
			Role:         role,
			Faculty:      cellAt(row, colIndex["faculty"]),
			MajorID:      majorID,
			IsActive:     true,
		}
		if err := s.userRepo.Create(user); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	result.Message = fmt.Sprintf("Imported %d users, skipped %d", result.Created, result.Skipped)
	return result, nil
}

// ImportMajorsFromFile imports majors from an uploaded .xlsx or .csv file.
// Expected columns: code, name, description. Existing codes are skipped.
func (s *Service) ImportMajorsFromFile(reader io.Reader, filename string) (*ImportResult, error) {
	rows, err := s.readRows(reader, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file contains no data rows")
	}

	colIndex, err := headerIndex(rows[0], []string{"code", "name"})
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Success: true}
	for i, row := range rows[1:] {
		rowNum := i + 2
		code := cellAt(row, colIndex["code"])
		name := cellAt(row, colIndex["name"])
		if code == "" || name == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing code or name", rowNum))
			continue
		}

		exists, err := s.majorRepo.CheckCodeExists(code)
		if err != nil {
			return nil, fmt.Errorf("failed to check major code: %w", err)
		}
		if exists {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: code %q already exists", rowNum, code))
			continue
		}

		major := &models.Major{
			Code:        code,
			Name:        name,
			Description: cellAt(row, colIndex["description"]),
		}
		if err := s.majorRepo.Create(major); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	result.Message = fmt.Sprintf("Imported %d majors, skipped %d", result.Created, result.Skipped)
	return result, nil
}

// readRows reads all rows from an .xlsx or .csv stream
func (s *Service) readRows(reader io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		f, err := excelize.OpenReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("failed to read Excel rows: %w", err)
		}
		return rows, nil
	case ".csv":
		r := csv.NewReader(reader)
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .xlsx or .csv", filepath.Ext(filename))
	}
}

// headerIndex maps lowercased header names to column positions and verifies
// the required columns are present
func headerIndex(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// writeHeader writes a bold, bordered header row and sets column widths
func writeHeader(f *excelize.File, sheetName string, columns []string) {
	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
		f.SetColWidth(sheetName, columnToLetter(i+1), columnToLetter(i+1), 22.0)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle)
	}
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
