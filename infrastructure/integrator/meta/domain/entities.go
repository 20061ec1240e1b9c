package metadomain

// Graph API devolve valores monetários e métricas como string

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// ListResponse é o envelope {data, paging} das edges do Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	AmountSpent   string `json:"amount_spent"`
	Currency      string `json:"currency"`
	BusinessName  string `json:"business_name"`
}

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Objective      string `json:"objective"`
	Status         string `json:"status"`
	CreatedTime    string `json:"created_time"`
	StartTime      string `json:"start_time"`
	StopTime       string `json:"stop_time"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type AdSet struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	BidStrategy    string `json:"bid_strategy"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

type Ad struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedTime string `json:"created_time"`
}

type CampaignInsight struct {
	CampaignID         string `json:"campaign_id"`
	DateStart          string `json:"date_start"`
	DateStop           string `json:"date_stop"`
	Impressions        string `json:"impressions"`
	Clicks             string `json:"clicks"`
	Spend              string `json:"spend"`
	CPC                string `json:"cpc"`
	CTR                string `json:"ctr"`
	Reach              string `json:"reach"`
	Frequency          string `json:"frequency"`
	UniqueClicks       string `json:"unique_clicks"`
	CostPerUniqueClick string `json:"cost_per_unique_click"`
}

// TokenResponse representa a resposta do endpoint oauth/access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
