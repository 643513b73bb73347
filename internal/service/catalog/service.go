package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog/models"
)

// Service отдаёт статические данные сайта
type Service struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetCatalog возвращает каталог с ближайшими датами для записи
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	resp := &models.CatalogResponse{
		StepTitles:     append([]string(nil), domain.StepTitles...),
		TimeSlots:      append([]string(nil), domain.TimeSlots...),
		AvailableDates: s.availableDates(),
		Calculator:     calculator(),
	}

	for _, st := range domain.ServiceTypes {
		resp.ServiceTypes = append(resp.ServiceTypes, models.ServiceTypeResponse{ID: st.ID, Name: st.Name})
	}
	for _, u := range domain.Urgencies {
		resp.Urgencies = append(resp.Urgencies, models.OptionResponse{Value: string(u), Label: domain.UrgencyLabels[u]})
	}
	for _, p := range domain.ProjectTypes {
		resp.ProjectTypes = append(resp.ProjectTypes, models.OptionResponse{Value: string(p), Label: domain.ProjectTypeLabels[p]})
	}
	for _, m := range domain.ContactMethods {
		resp.ContactMethods = append(resp.ContactMethods, models.OptionResponse{Value: string(m), Label: domain.ContactMethodLabels[m]})
	}

	for _, plan := range domain.PricingPlans {
		features := make([]models.PlanFeatureResponse, len(plan.Features))
		for i, f := range plan.Features {
			features[i] = models.PlanFeatureResponse{Text: f.Text, Included: f.Included}
		}
		resp.PricingPlans = append(resp.PricingPlans, models.PricingPlanResponse{
			ID:           plan.ID,
			Name:         plan.Name,
			Description:  plan.Description,
			MonthlyPrice: plan.MonthlyPrice,
			AnnualPrice:  plan.AnnualPrice,
			Popular:      plan.Popular,
			Features:     features,
		})
	}
	for _, a := range domain.Addons {
		resp.Addons = append(resp.Addons, models.AddonResponse{Name: a.Name, Price: a.Price, Description: a.Description})
	}

	for _, h := range domain.Headlines {
		resp.Headlines = append(resp.Headlines, models.FromDomainHeadline(h))
	}
	for _, r := range domain.PageRoutes {
		resp.Routes = append(resp.Routes, models.RouteResponse{Path: r.Path, Page: r.Page})
	}

	return resp, nil
}

// GetHeadline возвращает заголовок по ID
func (s *Service) GetHeadline(ctx context.Context, id string) (domain.Headline, error) {
	h, ok := domain.FindHeadline(id)
	if !ok {
		s.logger.Warn("GetHeadline: headline id=%s not found", id)
		return domain.Headline{}, ErrHeadlineNotFound
	}
	return h, nil
}

// Gallery возвращает работы портфолио по категории и поисковому запросу.
// Пустая категория равна "all", поиск без учёта регистра.
func (s *Service) Gallery(ctx context.Context, category, query string) (*models.GalleryResponse, error) {
	if !domain.HasCategory(domain.GalleryCategories, category) {
		s.logger.Warn("Gallery: unknown category=%q", category)
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if category == "" {
		category = domain.CategoryAll
	}

	items := domain.FilterGallery(domain.GalleryItems, category, query)
	resp := &models.GalleryResponse{
		Category:   category,
		Query:      query,
		Categories: models.FromDomainCategories(domain.GalleryCategories),
		Items:      make([]models.GalleryItemResponse, len(items)),
		Total:      len(items),
	}

	for i, item := range items {
		prev, next := domain.Neighbors(len(items), i)
		resp.Items[i] = models.GalleryItemResponse{
			ID:          item.ID,
			Category:    item.Category,
			Title:       item.Title,
			Description: item.Description,
			Tags:        append([]string(nil), item.Tags...),
			Image:       item.Image,
			PrevID:      items[prev].ID,
			NextID:      items[next].ID,
		}
	}

	return resp, nil
}

// Services возвращает услуги категории и этапы работы
func (s *Service) Services(ctx context.Context, category string) (*models.ServicesResponse, error) {
	if !domain.HasCategory(domain.ServiceCategories, category) {
		s.logger.Warn("Services: unknown category=%q", category)
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if category == "" {
		category = domain.CategoryAll
	}

	services := domain.FilterServices(domain.ServiceListings, category)
	resp := &models.ServicesResponse{
		Category:   category,
		Categories: models.FromDomainCategories(domain.ServiceCategories),
		Services:   make([]models.ServiceListingResponse, len(services)),
		Process:    make([]models.ProcessStepResponse, len(domain.ProcessSteps)),
	}

	for i, svc := range services {
		resp.Services[i] = models.ServiceListingResponse{
			ID:          svc.ID,
			Category:    svc.Category,
			Title:       svc.Title,
			Description: svc.Description,
			Features:    append([]string(nil), svc.Features...),
			Duration:    svc.Duration,
			Warranty:    svc.Warranty,
			Price:       svc.Price,
			Popular:     svc.Popular,
		}
	}
	for i, p := range domain.ProcessSteps {
		resp.Process[i] = models.ProcessStepResponse{Step: p.Step, Title: p.Title, Description: p.Description}
	}

	return resp, nil
}

// availableDates ближайшие даты для записи: начиная с завтрашнего дня, без воскресений
func (s *Service) availableDates() []models.AvailableDateResponse {
	today := s.timeProvider.Now()
	dates := make([]models.AvailableDateResponse, 0, domain.AvailableDatesCount)

	for i := 1; i <= domain.AvailableDatesWindow && len(dates) < domain.AvailableDatesCount; i++ {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, models.AvailableDateResponse{
			Date:    d.Format(domain.DateFormat),
			Weekday: d.Format("Mon"),
			Day:     d.Day(),
			Month:   d.Format("Jan"),
		})
	}

	return dates
}

func calculator() models.CalculatorResponse {
	complexity := make(map[string]float64, len(domain.ComplexityMultipliers))
	for k, v := range domain.ComplexityMultipliers {
		complexity[string(k)] = v
	}
	material := make(map[string]float64, len(domain.MaterialMultipliers))
	for k, v := range domain.MaterialMultipliers {
		material[string(k)] = v
	}

	def := domain.DefaultCalculatorInput()
	return models.CalculatorResponse{
		MinArea:               domain.MinArea,
		MaxArea:               domain.MaxArea,
		AreaStep:              domain.AreaStep,
		BaseRatePerSqFt:       domain.BaseRatePerSqFt,
		LightingAddon:         domain.LightingAddon,
		ComplexityMultipliers: complexity,
		MaterialMultipliers:   material,
		Defaults: models.CalculatorDefaults{
			Area:       def.Area,
			Complexity: string(def.Complexity),
			Material:   string(def.Material),
			Lighting:   def.Lighting,
		},
	}
}
