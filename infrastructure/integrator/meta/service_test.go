package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_ExchangeCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		cfg      config.Meta
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, tokenSet domain.TokenSet, err error)
	}{
		{
			name: "Token de curta duração promovido para longa duração",
			cfg:  config.Meta{ExchangeLongLived: true, DefaultTokenLifetimeDays: 60},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ExchangeCode(ctx, "abc", "https://app/callback").
					Return(&metadomain.TokenResponse{AccessToken: "short", ExpiresIn: 3600}, nil)
				client.EXPECT().ExchangeLongLivedToken(ctx, "short").
					Return(&metadomain.TokenResponse{AccessToken: "long", ExpiresIn: 5184000}, nil)
			},
			validate: func(t *testing.T, tokenSet domain.TokenSet, err error) {
				require.NoError(t, err)
				assert.Equal(t, "long", tokenSet.AccessToken)
				assert.Equal(t, int64(5184000), tokenSet.ExpiresIn)
				assert.Empty(t, tokenSet.RefreshToken)
			},
		},
		{
			name: "Falha na troca de longa duração mantém o token original",
			cfg:  config.Meta{ExchangeLongLived: true, DefaultTokenLifetimeDays: 60},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ExchangeCode(ctx, "abc", "https://app/callback").
					Return(&metadomain.TokenResponse{AccessToken: "short", ExpiresIn: 3600}, nil)
				client.EXPECT().ExchangeLongLivedToken(ctx, "short").
					Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, tokenSet domain.TokenSet, err error) {
				require.NoError(t, err)
				assert.Equal(t, "short", tokenSet.AccessToken)
				assert.Equal(t, int64(3600), tokenSet.ExpiresIn)
			},
		},
		{
			name: "Sem expires_in usa a duração padrão",
			cfg:  config.Meta{DefaultTokenLifetimeDays: 60},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ExchangeCode(ctx, "abc", "https://app/callback").
					Return(&metadomain.TokenResponse{AccessToken: "T1"}, nil)
			},
			validate: func(t *testing.T, tokenSet domain.TokenSet, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64((60 * 24 * time.Hour).Seconds()), tokenSet.ExpiresIn)
			},
		},
		{
			name: "Erro na troca do código é propagado",
			cfg:  config.Meta{},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ExchangeCode(ctx, "abc", "https://app/callback").
					Return(nil, errors.New("invalid code"))
			},
			validate: func(t *testing.T, tokenSet domain.TokenSet, err error) {
				assert.Error(t, err)
				assert.Empty(t, tokenSet.AccessToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			integrator := New(tt.cfg, client)
			tokenSet, err := integrator.ExchangeCode(ctx, "abc", "https://app/callback")

			tt.validate(t, tokenSet, err)
		})
	}
}

func TestMetaIntegrator_RefreshToken(t *testing.T) {
	integrator := New(config.Meta{}, nil)

	_, err := integrator.RefreshToken(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrRefreshNotSupported)
}

func TestMetaIntegrator_GetCampaignInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	ctx := context.Background()

	dateRange, err := domain.ParseDateRange("2024-01-01", "2024-01-02")
	require.NoError(t, err)

	client.EXPECT().GetCampaignInsights(ctx, "token", "c1", "2024-01-01", "2024-01-02").
		Return([]metadomain.CampaignInsight{
			{DateStart: "2024-01-01", Impressions: "100", Spend: "10.50"},
			{DateStart: "2024-01-02", Impressions: "n/a", Clicks: "7", CTR: "1.25"},
		}, nil)

	insights, err := New(config.Meta{}, client).GetCampaignInsights(ctx, "token", "c1", dateRange)

	require.NoError(t, err)
	require.Len(t, insights, 2)

	assert.Equal(t, "c1", insights[0].CampaignID)
	assert.Equal(t, int64(100), insights[0].Impressions)
	assert.Equal(t, int64(0), insights[0].Clicks)
	assert.Equal(t, 10.5, insights[0].Spend)

	assert.Equal(t, int64(0), insights[1].Impressions)
	assert.Equal(t, int64(7), insights[1].Clicks)
	assert.Equal(t, 1.25, insights[1].CTR)
}

func TestFactoryCampaign(t *testing.T) {
	campaign := FactoryCampaign("act_1", metadomain.Campaign{
		ID:          "c1",
		Name:        "Black Friday",
		DailyBudget: "2500",
	})

	assert.Equal(t, "act_1", campaign.AccountID)
	assert.Equal(t, 2500.0, campaign.DailyBudget)
	assert.Equal(t, 0.0, campaign.LifetimeBudget)
	assert.Equal(t, "", campaign.Objective)
}

func TestFactoryAdAccount(t *testing.T) {
	account := FactoryAdAccount(metadomain.AdAccount{
		ID:            "act_1",
		Name:          "Loja",
		AccountStatus: 1,
		AmountSpent:   "1234.56",
		Currency:      "BRL",
	})

	assert.Equal(t, 1234.56, account.AmountSpent)
	assert.Equal(t, 1, account.Status)
	assert.Equal(t, "", account.BusinessName)
}
