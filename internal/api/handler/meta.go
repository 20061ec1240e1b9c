package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
)

func ListAdAccounts(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		accounts, err := service.AdAccounts(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func ListCampaigns(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaigns, err := service.Campaigns(r.Context(), user, accountID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func ListAdSets(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		adSets, err := service.AdSets(r.Context(), user, campaignID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, adSets)
	}
}

func ListAds(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ads, err := service.Ads(r.Context(), user, adSetID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

// GetCampaignInsights espera ?start=YYYY-MM-DD&end=YYYY-MM-DD
func GetCampaignInsights(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		insights, err := service.CampaignInsights(r.Context(), user, campaignID, query.Get("start"), query.Get("end"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}
