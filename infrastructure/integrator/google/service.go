package google

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/gaclient"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/pkg/utils"
)

type GoogleIntegrator struct {
	Client gaclient.Client
}

func New(client gaclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{Client: client}
}

func (s *GoogleIntegrator) AuthURL(state string) string {
	return s.Client.AuthURL(state)
}

func (s *GoogleIntegrator) ExchangeCode(ctx context.Context, code, redirectURI string) (domain.TokenSet, error) {
	tokenResp, err := s.Client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return domain.TokenSet{}, err
	}

	return FactoryTokenSet(tokenResp), nil
}

func (s *GoogleIntegrator) RefreshToken(ctx context.Context, refreshToken string) (domain.TokenSet, error) {
	tokenResp, err := s.Client.RefreshToken(ctx, refreshToken)
	if err != nil {
		return domain.TokenSet{}, err
	}

	return FactoryTokenSet(tokenResp), nil
}

func (s *GoogleIntegrator) ListAccounts(ctx context.Context, accessToken string) ([]domain.AnalyticsAccount, error) {
	accounts, err := s.Client.ListAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AnalyticsAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, domain.AnalyticsAccount{
			ID:          account.Name,
			DisplayName: account.DisplayName,
		})
	}

	return result, nil
}

func (s *GoogleIntegrator) ListProperties(ctx context.Context, accessToken, accountID string) ([]domain.AnalyticsProperty, error) {
	properties, err := s.Client.ListProperties(ctx, accessToken, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AnalyticsProperty, 0, len(properties))
	for _, property := range properties {
		result = append(result, domain.AnalyticsProperty{
			ID:          property.Name,
			AccountID:   accountID,
			DisplayName: property.DisplayName,
		})
	}

	return result, nil
}

func (s *GoogleIntegrator) RunReport(ctx context.Context, accessToken, propertyID string, dateRange domain.DateRange) ([]domain.ReportRow, error) {
	rows, err := s.Client.RunReport(ctx, accessToken, propertyID, dateRange.Since(), dateRange.Until())
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReportRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, FactoryReportRow(propertyID, row))
	}

	return result, nil
}

// DefaultTokenLifetime é a validade dos access tokens do Google, usada quando a
// resposta omite expires_in
const DefaultTokenLifetime = time.Hour

func FactoryTokenSet(tokenResp *gadomain.TokenResponse) domain.TokenSet {
	expiresIn := tokenResp.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = int64(DefaultTokenLifetime / time.Second)
	}

	return domain.TokenSet{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		TokenType:    tokenResp.TokenType,
		ExpiresIn:    expiresIn,
	}
}

// FactoryReportRow converte a data YYYYMMDD do GA4 para YYYY-MM-DD e zera métricas ausentes
func FactoryReportRow(propertyID string, row gadomain.ReportRow) domain.ReportRow {
	return domain.ReportRow{
		PropertyID:     propertyID,
		Date:           normalizeDate(row.Date),
		Sessions:       metricInt(row, gadomain.MetricSessions),
		ActiveUsers:    metricInt(row, gadomain.MetricActiveUsers),
		NewUsers:       metricInt(row, gadomain.MetricNewUsers),
		EngagementRate: metricFloat(row, gadomain.MetricEngagementRate),
		Conversions:    metricFloat(row, gadomain.MetricConversions),
	}
}

func normalizeDate(value string) string {
	date, err := time.Parse("20060102", value)
	if err != nil {
		return value
	}

	return date.Format(time.DateOnly)
}

func metricInt(row gadomain.ReportRow, metric string) int64 {
	value, err := utils.ParseInt(row.Metrics[metric])
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":   row.Date,
			"metric": metric,
			"value":  row.Metrics[metric],
		}).Warn("google: error converting metric to int, using 0")
		return 0
	}

	return value
}

func metricFloat(row gadomain.ReportRow, metric string) float64 {
	value, err := utils.ParseFloat(row.Metrics[metric])
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":   row.Date,
			"metric": metric,
			"value":  row.Metrics[metric],
		}).Warn("google: error converting metric to float, using 0")
		return 0
	}

	return value
}
