package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeRecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeRecordHandlerImpl struct {
	recordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(recordService timerecord.TimeRecordService) TimeRecordHandler {
	return &TimeRecordHandlerImpl{recordService: recordService}
}

// Create implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timerecord.UpsertTimeRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.recordService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create time record", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time record created successfully", record)
}

// Update implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timerecord.UpsertTimeRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.recordService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update time record", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time record updated successfully", record)
}

// Get implements TimeRecordHandler. The response includes the record's
// cost contribution.
func (h *TimeRecordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// List implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timerecord.ListTimeRecordsFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Start:      r.URL.Query().Get("start"),
		End:        r.URL.Query().Get("end"),
	}

	records, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time record deleted successfully", nil)
}
