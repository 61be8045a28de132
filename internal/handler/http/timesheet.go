package http

import (
	"log/slog"
	"net/http"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/handler/http/response"
	"github.com/Jmaroja/bancodehoras/internal/pkg/spreadsheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/validator"
)

type TimesheetHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Charts(w http.ResponseWriter, r *http.Request)
	FilterOptions(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Import implements TimesheetHandler.
func (h *timesheetHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "A spreadsheet file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	grid, err := spreadsheet.Decode(file, fileHeader.Filename)
	if err != nil {
		slog.Error("Failed to decode spreadsheet", "file", fileHeader.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.Import(r.Context(), grid)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Import completed", result)
}

// List implements TimesheetHandler.
func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if errs := validateFilter(filter); len(errs) > 0 {
		response.BadRequest(w, "Invalid filter parameters", errs.ToMap())
		return
	}

	results, err := h.timesheetService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Summary implements TimesheetHandler.
func (h *timesheetHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if errs := validateFilter(filter); len(errs) > 0 {
		response.BadRequest(w, "Invalid filter parameters", errs.ToMap())
		return
	}

	result, err := h.timesheetService.Summarize(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Charts implements TimesheetHandler.
func (h *timesheetHandlerImpl) Charts(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if errs := validateFilter(filter); len(errs) > 0 {
		response.BadRequest(w, "Invalid filter parameters", errs.ToMap())
		return
	}

	result, err := h.timesheetService.Charts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FilterOptions implements TimesheetHandler.
func (h *timesheetHandlerImpl) FilterOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.FilterOptions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements TimesheetHandler.
func (h *timesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if errs := validateFilter(filter); len(errs) > 0 {
		response.BadRequest(w, "Invalid filter parameters", errs.ToMap())
		return
	}

	data, err := h.timesheetService.Export(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to build export workbook", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="ponto_export.xlsx"`)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write export response", "error", err)
	}
}

// Clear implements TimesheetHandler.
func (h *timesheetHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.Clear(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "History cleared", nil)
}

func filterFromQuery(r *http.Request) timesheet.RecordFilter {
	q := r.URL.Query()
	return timesheet.RecordFilter{
		Name:     q.Get("name"),
		Date:     q.Get("date"),
		Month:    q.Get("month"),
		Year:     q.Get("year"),
		Person:   q.Get("person"),
		Status:   q.Get("status"),
		Analysis: q.Get("analysis"),
	}
}

// validateFilter rejects query values that could never match a record.
func validateFilter(f timesheet.RecordFilter) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if f.Date != "" && !validator.IsValidDate(f.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid DD/MM/YYYY date"})
	}
	if f.Month != "" && !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 01 and 12"})
	}
	if f.Year != "" && !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four digit year"})
	}
	if f.Status != "" {
		switch timesheet.Status(f.Status) {
		case timesheet.StatusPresent, timesheet.StatusIncomplete, timesheet.StatusAbsent:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, incomplete or absent"})
		}
	}
	if f.Analysis != "" {
		known := false
		for _, name := range timesheet.AnalysisNames {
			if name == f.Analysis {
				known = true
				break
			}
		}
		if !known {
			errs = append(errs, validator.ValidationError{Field: "analysis", Message: "unknown analysis name"})
		}
	}

	return errs
}
