package gadomain

// TokenResponse é a resposta do endpoint OAuth2 do Google
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

// Account segue o recurso accounts da Admin API (name = "accounts/123")
type Account struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Property segue o recurso properties da Admin API (name = "properties/456")
type Property struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Parent      string `json:"parent"`
}

type ListAccountsResponse struct {
	Accounts      []Account `json:"accounts"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

type ListPropertiesResponse struct {
	Properties    []Property `json:"properties"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// ReportRow guarda os valores crus de uma linha do runReport, indexados pelo nome da métrica
type ReportRow struct {
	Date    string
	Metrics map[string]string
}

const (
	MetricSessions       = "sessions"
	MetricActiveUsers    = "activeUsers"
	MetricNewUsers       = "newUsers"
	MetricEngagementRate = "engagementRate"
	MetricConversions    = "conversions"
)

var ReportMetrics = []string{
	MetricSessions,
	MetricActiveUsers,
	MetricNewUsers,
	MetricEngagementRate,
	MetricConversions,
}
