package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
)

func ListAnalyticsAccounts(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		accounts, err := service.AnalyticsAccounts(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func ListAnalyticsProperties(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		accountID := resourceName("accounts", httprouter.ParamsFromContext(r.Context()).ByName("id"))

		properties, err := service.AnalyticsProperties(r.Context(), user, accountID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, properties)
	}
}

// GetAnalyticsReport espera ?start=YYYY-MM-DD&end=YYYY-MM-DD
func GetAnalyticsReport(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		propertyID := resourceName("properties", httprouter.ParamsFromContext(r.Context()).ByName("id"))
		query := r.URL.Query()

		rows, err := service.AnalyticsReport(r.Context(), user, propertyID, query.Get("start"), query.Get("end"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}
