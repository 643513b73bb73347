package estimate_price

import "github.com/m04kA/SMC-InteriorStudio/internal/domain"

// Request запрос на расчёт. nil поля заменяются значениями калькулятора по умолчанию.
type Request struct {
	Area       *int
	Complexity *string
	Material   *string
	Lighting   *bool
}

// Response результат расчёта
type Response struct {
	Input     domain.CalculatorInput
	Breakdown Breakdown
	Estimate  int64
}
