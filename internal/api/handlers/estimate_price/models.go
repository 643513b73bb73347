package estimate_price

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	estimatePrice "github.com/m04kA/SMC-InteriorStudio/internal/usecase/estimate_price"
)

// BreakdownResponse промежуточные значения расчёта
type BreakdownResponse struct {
	Base               float64 `json:"base"`
	ComplexityAdjusted float64 `json:"complexityAdjusted"`
	MaterialAdjusted   float64 `json:"materialAdjusted"`
	LightingAddon      float64 `json:"lightingAddon"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	Area       int               `json:"area"`
	Complexity string            `json:"complexity"`
	Material   string            `json:"material"`
	Lighting   bool              `json:"lighting"`
	Estimate   int64             `json:"estimate"`
	Display    string            `json:"display"` // "₦45,500"
	Breakdown  BreakdownResponse `json:"breakdown"`
}

// queryError ошибка разбора query параметра
type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string {
	return e.param + ": " + e.err.Error()
}

// ToUseCaseRequest собирает запрос из query параметров; отсутствующие остаются nil
func ToUseCaseRequest(q url.Values) (*estimatePrice.Request, error) {
	req := &estimatePrice.Request{}

	if v := q.Get("area"); v != "" {
		area, err := strconv.Atoi(v)
		if err != nil {
			return nil, &queryError{param: "area", err: err}
		}
		req.Area = &area
	}

	if v := q.Get("complexity"); v != "" {
		req.Complexity = &v
	}

	if v := q.Get("material"); v != "" {
		material := v
		req.Material = &material
	}

	if v := q.Get("lighting"); v != "" {
		lighting, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &queryError{param: "lighting", err: err}
		}
		req.Lighting = &lighting
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *estimatePrice.Response) *EstimateResponse {
	return &EstimateResponse{
		Area:       resp.Input.Area,
		Complexity: string(resp.Input.Complexity),
		Material:   string(resp.Input.Material),
		Lighting:   resp.Input.Lighting,
		Estimate:   resp.Estimate,
		Display:    domain.FormatPrice(resp.Estimate),
		Breakdown: BreakdownResponse{
			Base:               resp.Breakdown.Base,
			ComplexityAdjusted: resp.Breakdown.ComplexityAdjusted,
			MaterialAdjusted:   resp.Breakdown.MaterialAdjusted,
			LightingAddon:      resp.Breakdown.LightingAddon,
		},
	}
}
