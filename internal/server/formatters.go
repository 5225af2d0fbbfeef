package server

import (
	"encoding/json"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"hermes/internal/domain/marketdata"
	"hermes/internal/indicators"
	"hermes/pkg/errors"
)

type timeSeriesResponse struct {
	Symbol          string            `json:"symbol"`
	TimeSeriesDaily marketdata.Series `json:"timeSeriesDaily"`
}

type analysisResponse struct {
	Symbol     string             `json:"symbol"`
	Period     string             `json:"period"`
	Indicators map[string][]point `json:"indicators"`
	Failed     map[string]string  `json:"failed,omitempty"`
}

type searchResultsResponse struct {
	Results []marketdata.SearchResult `json:"results"`
}

type recommendationsResponse struct {
	Symbol          string                      `json:"symbol"`
	Recommendations []marketdata.Recommendation `json:"recommendations"`
}

type insiderResponse struct {
	Symbol       string                          `json:"symbol"`
	Transactions []marketdata.InsiderTransaction `json:"transactions"`
}

// point pairs a bar date with an indicator value. Undefined positions
// (warm-up, degenerate windows) serialize as null; encoding/json rejects
// NaN outright, so the conversion is mandatory, not cosmetic.
type point struct {
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
}

// indicatorPoints aligns every result series with the bar timestamps.
func indicatorPoints(series marketdata.Series, results map[string]indicators.Result) map[string][]point {
	out := make(map[string][]point, len(results))
	for name, res := range results {
		pts := make([]point, len(res))
		for i := range res {
			pts[i] = point{Timestamp: series[i].Timestamp.UTC().Format("2006-01-02")}
			if !math.IsNaN(res[i]) {
				v := res[i]
				pts[i].Value = &v
			}
		}
		out[name] = pts
	}
	return out
}

// Helper functions

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(errors.Wrap(errors.ErrInternal, "failed to encode response").Error()), nil
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(payload)),
		},
		IsError: true,
	}
}
