package domain

// AdAccount é uma conta de anúncios do Meta vinculada a um usuário
type AdAccount struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       int     `json:"account_status"`
	AmountSpent  float64 `json:"amount_spent"`
	Currency     string  `json:"currency"`
	BusinessName string  `json:"business_name"`
}

type Campaign struct {
	ID             string  `json:"id"`
	AccountID      string  `json:"account_id"`
	Name           string  `json:"name"`
	Objective      string  `json:"objective"`
	Status         string  `json:"status"`
	DailyBudget    float64 `json:"daily_budget"`
	LifetimeBudget float64 `json:"lifetime_budget"`
	CreatedTime    string  `json:"created_time"`
	StartTime      string  `json:"start_time"`
	StopTime       string  `json:"stop_time"`
}

type AdSet struct {
	ID             string  `json:"id"`
	CampaignID     string  `json:"campaign_id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	BidStrategy    string  `json:"bid_strategy"`
	DailyBudget    float64 `json:"daily_budget"`
	LifetimeBudget float64 `json:"lifetime_budget"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
}

type Ad struct {
	ID          string `json:"id"`
	AdSetID     string `json:"ad_set_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedTime string `json:"created_time"`
}

// CampaignInsight é uma linha diária (time_increment=1) de métricas de campanha
type CampaignInsight struct {
	CampaignID         string  `json:"campaign_id"`
	DateStart          string  `json:"date_start"`
	DateStop           string  `json:"date_stop"`
	Impressions        int64   `json:"impressions"`
	Clicks             int64   `json:"clicks"`
	Spend              float64 `json:"spend"`
	CPC                float64 `json:"cpc"`
	CTR                float64 `json:"ctr"`
	Reach              int64   `json:"reach"`
	Frequency          float64 `json:"frequency"`
	UniqueClicks       int64   `json:"unique_clicks"`
	CostPerUniqueClick float64 `json:"cost_per_unique_click"`
}
