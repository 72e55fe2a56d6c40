package http

import (
	"log/slog"
	"net/http"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/estruturasdovale/sige-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type KPIHandler interface {
	GetKPIs(w http.ResponseWriter, r *http.Request)
	GetDSR(w http.ResponseWriter, r *http.Request)
	GetCosts(w http.ResponseWriter, r *http.Request)
	Audit(w http.ResponseWriter, r *http.Request)
}

type KPIHandlerImpl struct {
	kpiService kpi.KPIService
}

func NewKPIHandler(kpiService kpi.KPIService) KPIHandler {
	return &KPIHandlerImpl{kpiService: kpiService}
}

func periodQuery(r *http.Request) kpi.PeriodQuery {
	return kpi.PeriodQuery{
		EmployeeID: chi.URLParam(r, "id"),
		Start:      r.URL.Query().Get("start"),
		End:        r.URL.Query().Get("end"),
	}
}

// GetKPIs implements KPIHandler.
func (h *KPIHandlerImpl) GetKPIs(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.Compute(r.Context(), periodQuery(r))
	if err != nil {
		slog.Error("Failed to compute KPIs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDSR implements KPIHandler.
func (h *KPIHandlerImpl) GetDSR(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.DSR(r.Context(), periodQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCosts implements KPIHandler.
func (h *KPIHandlerImpl) GetCosts(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.Costs(r.Context(), periodQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Audit implements KPIHandler.
func (h *KPIHandlerImpl) Audit(w http.ResponseWriter, r *http.Request) {
	report, err := h.kpiService.Audit(r.Context(), periodQuery(r))
	if err != nil {
		slog.Error("KPI audit failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
