// handlers/dashboard_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/services"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/utils"
)

// DashboardHandler serves the dashboard API over a loaded dataset.
type DashboardHandler struct {
	Dataset *services.Dataset
}

func NewDashboardHandler(ds *services.Dataset) *DashboardHandler {
	return &DashboardHandler{Dataset: ds}
}

// GetDashboard handles GET /api/dashboard. Query parameters:
//
//	zips       comma-separated ZIP codes; absent or empty means all
//	price_min  lower listing price bound (inclusive)
//	price_max  upper listing price bound (inclusive)
//	income_min lower median income bound (inclusive)
//	income_max upper median income bound (inclusive)
//
// Reruns the full pipeline against the loaded dataset and returns the
// filtered row table plus the four KPIs.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := services.Run(h.Dataset, filter)
	respondWithJSON(w, http.StatusOK, view)
}

// GetFilterOptions handles GET /api/filters: the distinct ZIP codes and
// slider bounds the frontend needs to build its filter widgets.
func (h *DashboardHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, services.Options(h.Dataset))
}

// GetHealth handles GET /api/health. Reports source table row counts so a
// shrunken enriched set is visible without digging through logs.
func (h *DashboardHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"listings":          len(h.Dataset.Listings),
		"demographics_rows": len(h.Dataset.Demographics),
	})
}

func parseFilter(q url.Values) (models.Filter, error) {
	var f models.Filter

	if raw := q.Get("zips"); raw != "" {
		for _, z := range strings.Split(raw, ",") {
			z = utils.NormalizeZipCode(z)
			if z != "" {
				f.Zips = append(f.Zips, z)
			}
		}
	}

	var err error
	if f.PriceMin, err = parseBound(q, "price_min"); err != nil {
		return f, err
	}
	if f.PriceMax, err = parseBound(q, "price_max"); err != nil {
		return f, err
	}
	if f.IncomeMin, err = parseBound(q, "income_min"); err != nil {
		return f, err
	}
	if f.IncomeMax, err = parseBound(q, "income_max"); err != nil {
		return f, err
	}
	return f, nil
}

func parseBound(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value for %s: %q", key, raw)
	}
	return &val, nil
}
