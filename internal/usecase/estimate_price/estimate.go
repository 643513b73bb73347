package estimate_price

import (
	"math"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Breakdown промежуточные значения расчёта
type Breakdown struct {
	Base               float64 // площадь * ставка
	ComplexityAdjusted float64 // после множителя сложности
	MaterialAdjusted   float64 // после множителя материалов
	LightingAddon      float64
	Total              int64
}

// Estimate рассчитывает стоимость работ:
// area*150, затем множитель сложности, затем множитель материалов, +5000 за освещение, округление.
// Вход должен быть проверен заранее; неизвестный множитель считается равным 1.
func Estimate(in domain.CalculatorInput) int64 {
	return EstimateBreakdown(in).Total
}

// EstimateBreakdown рассчитывает стоимость с разбивкой по этапам
func EstimateBreakdown(in domain.CalculatorInput) Breakdown {
	var b Breakdown

	b.Base = float64(in.Area) * domain.BaseRatePerSqFt
	b.ComplexityAdjusted = b.Base * multiplier(domain.ComplexityMultipliers[in.Complexity])
	b.MaterialAdjusted = b.ComplexityAdjusted * multiplier(domain.MaterialMultipliers[in.Material])

	if in.Lighting {
		b.LightingAddon = domain.LightingAddon
	}

	b.Total = int64(math.Round(b.MaterialAdjusted + b.LightingAddon))
	return b
}

func multiplier(m float64) float64 {
	if m == 0 {
		return 1
	}
	return m
}
