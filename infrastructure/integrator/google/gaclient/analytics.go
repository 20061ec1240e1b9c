package gaclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	gadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/domain"
)

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type namedField struct {
	Name string `json:"name"`
}

type runReportRequest struct {
	DateRanges []dateRange  `json:"dateRanges"`
	Dimensions []namedField `json:"dimensions"`
	Metrics    []namedField `json:"metrics"`
}

// ListAccounts retorna a primeira página de contas acessíveis ao usuário
func (c *GoogleClient) ListAccounts(ctx context.Context, accessToken string) ([]gadomain.Account, error) {
	var response gadomain.ListAccountsResponse
	if err := c.getJSON(ctx, c.adminURL+"/accounts", accessToken, &response); err != nil {
		return nil, err
	}

	return response.Accounts, nil
}

// ListProperties filtra as propriedades pela conta pai (accounts/123)
func (c *GoogleClient) ListProperties(ctx context.Context, accessToken, accountID string) ([]gadomain.Property, error) {
	params := url.Values{}
	params.Add("filter", "parent:"+accountID)

	var response gadomain.ListPropertiesResponse
	if err := c.getJSON(ctx, c.adminURL+"/properties?"+params.Encode(), accessToken, &response); err != nil {
		return nil, err
	}

	return response.Properties, nil
}

// RunReport pede uma linha por dia com as métricas de ReportMetrics
func (c *GoogleClient) RunReport(ctx context.Context, accessToken, propertyID, startDate, endDate string) ([]gadomain.ReportRow, error) {
	request := runReportRequest{
		DateRanges: []dateRange{{StartDate: startDate, EndDate: endDate}},
		Dimensions: []namedField{{Name: "date"}},
	}
	for _, metric := range gadomain.ReportMetrics {
		request.Metrics = append(request.Metrics, namedField{Name: metric})
	}

	data, err := c.postJSON(ctx, c.dataURL+"/"+propertyID+":runReport", accessToken, request)
	if err != nil {
		return nil, err
	}

	return parseReportRows(data)
}

// parseReportRows associa metricValues aos nomes em metricHeaders
func parseReportRows(data []byte) ([]gadomain.ReportRow, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid runReport response")
	}

	headers := gjson.GetBytes(data, "metricHeaders.#.name").Array()

	rows := make([]gadomain.ReportRow, 0)
	gjson.GetBytes(data, "rows").ForEach(func(_, row gjson.Result) bool {
		reportRow := gadomain.ReportRow{
			Date:    row.Get("dimensionValues.0.value").String(),
			Metrics: make(map[string]string, len(headers)),
		}

		values := row.Get("metricValues.#.value").Array()
		for i, header := range headers {
			if i < len(values) {
				reportRow.Metrics[header.String()] = values[i].String()
			}
		}

		rows = append(rows, reportRow)
		return true
	})

	return rows, nil
}
