package domain

// AnalyticsAccount é uma conta do Google Analytics (ex: accounts/123)
type AnalyticsAccount struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// AnalyticsProperty é uma propriedade GA4 (ex: properties/456)
type AnalyticsProperty struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
}

// ReportRow é uma linha diária do relatório de uma propriedade
type ReportRow struct {
	PropertyID     string  `json:"property_id"`
	Date           string  `json:"date"`
	Sessions       int64   `json:"sessions"`
	ActiveUsers    int64   `json:"active_users"`
	NewUsers       int64   `json:"new_users"`
	EngagementRate float64 `json:"engagement_rate"`
	Conversions    float64 `json:"conversions"`
}
