package models

import (
	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// OptionResponse значение перечисления с подписью
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ServiceTypeResponse услуга
type ServiceTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableDateResponse дата, доступная для записи
type AvailableDateResponse struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Weekday string `json:"weekday"` // Mon
	Day     int    `json:"day"`
	Month   string `json:"month"` // Oct
}

// PlanFeatureResponse пункт тарифа
type PlanFeatureResponse struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// PricingPlanResponse тариф
type PricingPlanResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	MonthlyPrice int64                 `json:"monthlyPrice"`
	AnnualPrice  int64                 `json:"annualPrice"`
	Popular      bool                  `json:"popular"`
	Features     []PlanFeatureResponse `json:"features"`
}

// AddonResponse дополнительная услуга
type AddonResponse struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// CalculatorResponse параметры калькулятора стоимости
type CalculatorResponse struct {
	MinArea               int                `json:"minArea"`
	MaxArea               int                `json:"maxArea"`
	AreaStep              int                `json:"areaStep"`
	BaseRatePerSqFt       int                `json:"baseRatePerSqFt"`
	LightingAddon         int                `json:"lightingAddon"`
	ComplexityMultipliers map[string]float64 `json:"complexityMultipliers"`
	MaterialMultipliers   map[string]float64 `json:"materialMultipliers"`
	Defaults              CalculatorDefaults `json:"defaults"`
}

// CalculatorDefaults начальные значения калькулятора
type CalculatorDefaults struct {
	Area       int    `json:"area"`
	Complexity string `json:"complexity"`
	Material   string `json:"material"`
	Lighting   bool   `json:"lighting"`
}

// HeadlineResponse заголовок с анимацией
type HeadlineResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	SpeedMs int64  `json:"speedMs"`
	DelayMs int64  `json:"delayMs"`
	Loop    bool   `json:"loop"`
}

// RouteResponse маршрут страницы сайта
type RouteResponse struct {
	Path string `json:"path"`
	Page string `json:"page"`
}

// CatalogResponse статические данные сайта
type CatalogResponse struct {
	StepTitles     []string                `json:"stepTitles"`
	ServiceTypes   []ServiceTypeResponse   `json:"serviceTypes"`
	Urgencies      []OptionResponse        `json:"urgencies"`
	ProjectTypes   []OptionResponse        `json:"projectTypes"`
	ContactMethods []OptionResponse        `json:"contactMethods"`
	TimeSlots      []string                `json:"timeSlots"`
	AvailableDates []AvailableDateResponse `json:"availableDates"`
	PricingPlans   []PricingPlanResponse   `json:"pricingPlans"`
	Addons         []AddonResponse         `json:"addons"`
	Calculator     CalculatorResponse      `json:"calculator"`
	Headlines      []HeadlineResponse      `json:"headlines"`
	Routes         []RouteResponse         `json:"routes"`
}

// FromDomainHeadline конвертирует domain.Headline в ответ
func FromDomainHeadline(h domain.Headline) HeadlineResponse {
	return HeadlineResponse{
		ID:      h.ID,
		Text:    h.Text,
		SpeedMs: h.Speed.Milliseconds(),
		DelayMs: h.Delay.Milliseconds(),
		Loop:    h.Loop,
	}
}

// CategoryResponse категория фильтра
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

// GalleryItemResponse работа портфолио с соседями для просмотрщика
type GalleryItemResponse struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	PrevID      int      `json:"prevId"`
	NextID      int      `json:"nextId"`
}

// GalleryResponse отфильтрованная галерея
type GalleryResponse struct {
	Category   string                `json:"category"`
	Query      string                `json:"query"`
	Categories []CategoryResponse    `json:"categories"`
	Items      []GalleryItemResponse `json:"items"`
	Total      int                   `json:"total"`
}

// ServiceListingResponse услуга
type ServiceListingResponse struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Duration    string   `json:"duration"`
	Warranty    string   `json:"warranty"`
	Price       string   `json:"price"`
	Popular     bool     `json:"popular"`
}

// ProcessStepResponse этап работы
type ProcessStepResponse struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServicesResponse список услуг категории
type ServicesResponse struct {
	Category   string                   `json:"category"`
	Categories []CategoryResponse       `json:"categories"`
	Services   []ServiceListingResponse `json:"services"`
	Process    []ProcessStepResponse    `json:"process"`
}

// FromDomainCategories конвертирует категории в ответ
func FromDomainCategories(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{ID: c.ID, Name: c.Name, Count: c.Count}
	}
	return out
}
