package estimate_price

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// UseCase use case расчёта стоимости по калькулятору
type UseCase struct {
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		metrics: metrics,
		logger:  logger,
	}
}

// Execute валидирует вход и рассчитывает стоимость.
// На сайте вход ограничен слайдером и кнопками, здесь те же границы проверяются явно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	input, err := toCalculatorInput(req)
	if err != nil {
		uc.logger.Warn("EstimatePrice: validation failed: %v", err)
		return nil, err
	}

	breakdown := EstimateBreakdown(input)
	uc.metrics.ObserveEstimate(string(input.Complexity), string(input.Material), breakdown.Total)

	uc.logger.Info("EstimatePrice: area=%d, complexity=%s, material=%s, lighting=%t, estimate=%d",
		input.Area, input.Complexity, input.Material, input.Lighting, breakdown.Total)

	return &Response{
		Input:     input,
		Breakdown: breakdown,
		Estimate:  breakdown.Total,
	}, nil
}

// toCalculatorInput собирает вход калькулятора с учётом значений по умолчанию
func toCalculatorInput(req *Request) (domain.CalculatorInput, error) {
	input := domain.DefaultCalculatorInput()
	if req == nil {
		return input, nil
	}

	if req.Area != nil {
		if *req.Area < domain.MinArea || *req.Area > domain.MaxArea {
			return input, fmt.Errorf("%w: area must be between %d and %d, got %d",
				ErrAreaOutOfRange, domain.MinArea, domain.MaxArea, *req.Area)
		}
		input.Area = *req.Area
	}

	if req.Complexity != nil {
		c := domain.Complexity(*req.Complexity)
		if !c.IsValid() {
			return input, fmt.Errorf("%w: unknown complexity %q", ErrInvalidInput, *req.Complexity)
		}
		input.Complexity = c
	}

	if req.Material != nil {
		m := domain.Material(*req.Material)
		if !m.IsValid() {
			return input, fmt.Errorf("%w: unknown material %q", ErrInvalidInput, *req.Material)
		}
		input.Material = m
	}

	if req.Lighting != nil {
		input.Lighting = *req.Lighting
	}

	return input, nil
}
