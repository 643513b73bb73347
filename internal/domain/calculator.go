package domain

// Complexity сложность конструкции
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Material класс материалов
type Material string

const (
	MaterialStandard Material = "standard"
	MaterialPremium  Material = "premium"
	MaterialLuxury   Material = "luxury"
)

// ComplexityMultipliers множители стоимости по сложности
var ComplexityMultipliers = map[Complexity]float64{
	ComplexitySimple:  1,
	ComplexityMedium:  1.5,
	ComplexityComplex: 2,
}

// MaterialMultipliers множители стоимости по классу материалов
var MaterialMultipliers = map[Material]float64{
	MaterialStandard: 1,
	MaterialPremium:  1.8,
	MaterialLuxury:   2.5,
}

// IsValid проверяет, что значение входит в перечисление
func (c Complexity) IsValid() bool {
	_, ok := ComplexityMultipliers[c]
	return ok
}

// IsValid проверяет, что значение входит в перечисление
func (m Material) IsValid() bool {
	_, ok := MaterialMultipliers[m]
	return ok
}

// CalculatorInput входные данные калькулятора стоимости
type CalculatorInput struct {
	Area       int // кв. футы, [MinArea, MaxArea]
	Complexity Complexity
	Material   Material
	Lighting   bool
}

// DefaultCalculatorInput начальное состояние калькулятора на странице цен
func DefaultCalculatorInput() CalculatorInput {
	return CalculatorInput{
		Area:       100,
		Complexity: ComplexityMedium,
		Material:   MaterialPremium,
		Lighting:   true,
	}
}
