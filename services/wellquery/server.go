package wellquery

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"texasogwells-backend/lib/scrapers/rrc"
)

const defaultDistrict = "None Selected"

func (s Service) Register(mux *http.ServeMux) {
	mux.Handle("/search", withCors(http.HandlerFunc(s.handleSearch)))
	mux.Handle("/production", withCors(http.HandlerFunc(s.handleProduction)))
}

func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

type errorBody struct {
	Error  string `json:"error"`
	Marker string `json:"marker,omitempty"`
}

func (s Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	name := strings.ToUpper(strings.TrimSpace(params.Get("name")))
	if name == "" {
		writeJson(w, http.StatusBadRequest, errorBody{Error: "missing required parameter: name"})
		return
	}
	district := params.Get("district")
	if district == "" {
		district = defaultDistrict
	}

	result, err := s.Search(r.Context(), rrc.LeaseQuery{
		Name:     name,
		District: district,
		County:   params.Get("county"),
	})
	if err != nil {
		writeSearchError(w, r, err)
		return
	}

	writeJson(w, http.StatusOK, result)
}

func writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, rrc.ErrNoSession) {
		writeJson(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}
	slog.ErrorContext(r.Context(), "search failed", "err", err)
	writeJson(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}

// noDataBody mirrors the success envelope so callers can consume the
// no-data outcome without branching on shape
type noDataBody struct {
	Lease    string                 `json:"lease"`
	District string                 `json:"district"`
	Type     rrc.WellType           `json:"type"`
	Error    string                 `json:"error"`
	Data     []rrc.ProductionRecord `json:"data"`
}

func (s Service) handleProduction(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	lease := strings.TrimSpace(params.Get("lease"))
	if lease == "" {
		writeJson(w, http.StatusBadRequest, errorBody{Error: "missing required parameter: lease"})
		return
	}
	wellType, err := rrc.ParseWellType(params.Get("type"))
	if err != nil {
		writeJson(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	query := rrc.ProductionQuery{
		Lease:    lease,
		District: params.Get("district"),
		WellType: wellType,
		Range:    dateRangeFromParams(params.Get("start"), params.Get("end")),
	}

	result, err := s.Production(r.Context(), query)
	if err != nil {
		writeProductionError(w, r, query, err)
		return
	}

	writeJson(w, http.StatusOK, result)
}

// parses optional "MM/YYYY" range bounds, falling back to the
// portal's full history for anything absent or malformed
func dateRangeFromParams(start, end string) rrc.DateRange {
	dates := rrc.DefaultDateRange()
	if month, year, ok := parseMonthYear(start); ok {
		dates.StartMonth, dates.StartYear = month, year
	}
	if month, year, ok := parseMonthYear(end); ok {
		dates.EndMonth, dates.EndYear = month, year
	}
	return dates
}

func parseMonthYear(s string) (int, int, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 {
		return 0, 0, false
	}
	return month, year, true
}

func writeProductionError(w http.ResponseWriter, r *http.Request, query rrc.ProductionQuery, err error) {
	if errors.Is(err, rrc.ErrNoData) {
		writeJson(w, http.StatusOK, noDataBody{
			Lease:    query.Lease,
			District: query.District,
			Type:     query.WellType,
			Error:    rrc.ErrNoData.Error(),
			Data:     []rrc.ProductionRecord{},
		})
		return
	}
	if errors.Is(err, rrc.ErrNoSession) {
		writeJson(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}

	var drift *rrc.DriftError
	if errors.As(err, &drift) {
		slog.ErrorContext(r.Context(), "production markup drift", "err", err)
		writeJson(w, http.StatusInternalServerError, errorBody{
			Error:  err.Error(),
			Marker: "parse_failure",
		})
		return
	}

	slog.ErrorContext(r.Context(), "production query failed", "err", err)
	writeJson(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}
