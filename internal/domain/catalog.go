package domain

import "time"

// ServiceType услуга, доступная для записи
type ServiceType struct {
	ID   string
	Name string
}

// Option значение перечисления с подписью для отображения
type Option struct {
	Value string
	Label string
}

// PlanFeature пункт тарифа
type PlanFeature struct {
	Text     string
	Included bool
}

// PricingPlan тарифный план
type PricingPlan struct {
	ID           string
	Name         string
	Description  string
	MonthlyPrice int64
	AnnualPrice  int64
	Popular      bool
	Features     []PlanFeature
}

// Addon дополнительная услуга к тарифу
type Addon struct {
	Name        string
	Price       int64
	Description string
}

// PageRoute маршрут страницы сайта
type PageRoute struct {
	Path string
	Page string
}

// Headline заголовок страницы с эффектом печатной машинки
type Headline struct {
	ID    string
	Text  string
	Speed time.Duration
	Delay time.Duration
	Loop  bool
}

// StepTitles названия шагов мастера записи, индекс = номер шага - 1
var StepTitles = []string{
	"Service Selection",
	"Personal Details",
	"Appointment",
	"Project Details",
	"Confirmation",
}

// ServiceTypes каталог услуг для первого шага записи
var ServiceTypes = []ServiceType{
	{ID: "pop", Name: "POP Ceiling Installation"},
	{ID: "tv", Name: "TV Unit Design"},
	{ID: "lighting", Name: "Lighting Installation"},
	{ID: "wall", Name: "Wall Panels"},
	{ID: "decoration", Name: "Interior Decoration"},
	{ID: "maintenance", Name: "Repair & Maintenance"},
	{ID: "consultation", Name: "Design Consultation"},
	{ID: "other", Name: "Other Service"},
}

// ProjectTypeLabels подписи типов объектов
var ProjectTypeLabels = map[ProjectType]string{
	ProjectResidential: "Residential",
	ProjectCommercial:  "Commercial",
	ProjectOffice:      "Office Space",
	ProjectRetail:      "Retail Store",
	ProjectHospitality: "Hotel/Restaurant",
}

// UrgencyLabels подписи уровней срочности
var UrgencyLabels = map[Urgency]string{
	UrgencyUrgent:   "Urgent (Within 1 week)",
	UrgencyNormal:   "Normal (2-4 weeks)",
	UrgencyFlexible: "Flexible (1-2 months)",
}

// ContactMethodLabels подписи способов связи
var ContactMethodLabels = map[ContactMethod]string{
	ContactPhone:    "Phone Call",
	ContactWhatsApp: "WhatsApp",
	ContactEmail:    "Email",
	ContactSMS:      "SMS",
}

// TimeSlots время начала консультаций
var TimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// PricingPlans тарифы со страницы цен
var PricingPlans = []PricingPlan{
	{
		ID:           "basic",
		Name:         "Basic",
		Description:  "Essential POP installation for simple designs",
		MonthlyPrice: 4999,
		AnnualPrice:  49999,
		Features: []PlanFeature{
			{Text: "Simple POP Design", Included: true},
			{Text: "Basic Lighting", Included: true},
			{Text: "Standard Materials", Included: true},
			{Text: "1-Year Warranty", Included: true},
			{Text: "3D Design Preview", Included: false},
			{Text: "Premium Materials", Included: false},
			{Text: "Smart Lighting", Included: false},
			{Text: "5-Year Warranty", Included: false},
		},
	},
	{
		ID:           "standard",
		Name:         "Standard",
		Description:  "Most popular choice for residential projects",
		MonthlyPrice: 8999,
		AnnualPrice:  89999,
		Popular:      true,
		Features: []PlanFeature{
			{Text: "Custom POP Design", Included: true},
			{Text: "LED Lighting", Included: true},
			{Text: "Premium Materials", Included: true},
			{Text: "3D Design Preview", Included: true},
			{Text: "5-Year Warranty", Included: true},
			{Text: "Smart Lighting", Included: false},
			{Text: "Extended Support", Included: false},
			{Text: "Priority Service", Included: false},
		},
	},
	{
		ID:           "premium",
		Name:         "Premium",
		Description:  "Complete solution with smart features",
		MonthlyPrice: 14999,
		AnnualPrice:  149999,
		Features: []PlanFeature{
			{Text: "Advanced POP Design", Included: true},
			{Text: "Smart Lighting System", Included: true},
			{Text: "Luxury Materials", Included: true},
			{Text: "3D VR Preview", Included: true},
			{Text: "10-Year Warranty", Included: true},
			{Text: "Extended Support", Included: true},
			{Text: "Priority Service", Included: true},
			{Text: "Annual Maintenance", Included: true},
		},
	},
}

// Addons дополнительные услуги со страницы цен
var Addons = []Addon{
	{Name: "TV Unit Installation", Price: 15000, Description: "Custom TV wall unit with storage"},
	{Name: "3D Wall Panels", Price: 8000, Description: "Premium 3D wall panel installation"},
	{Name: "Home Integration", Price: 12000, Description: "Voice control and automation"},
	{Name: "Extended Warranty", Price: 5000, Description: "Additional 5 years warranty"},
	{Name: "Premium Lighting", Price: 10000, Description: "Advanced lighting solutions"},
	{Name: "Quick Installation", Price: 8000, Description: "Express service (50% faster)"},
}

// PageRoutes таблица маршрутов сайта
var PageRoutes = []PageRoute{
	{Path: "/", Page: "home"},
	{Path: "/about", Page: "about"},
	{Path: "/services", Page: "services"},
	{Path: "/gallery", Page: "gallery"},
	{Path: "/pricing", Page: "pricing"},
	{Path: "/book", Page: "book"},
	{Path: "/contact", Page: "contact"},
}

// Headlines заголовки, которые сайт выводит печатной машинкой
var Headlines = []Headline{
	{ID: "pricing-hero", Text: "Transparent Pricing", Speed: 150 * time.Millisecond, Delay: 500 * time.Millisecond},
	{ID: "pricing-cta", Text: "Ready to Get Started?", Speed: 150 * time.Millisecond, Delay: 2000 * time.Millisecond, Loop: true},
	{ID: "services-cta", Text: "Ready to Transform Your Space?", Speed: 150 * time.Millisecond, Delay: 2000 * time.Millisecond},
	{ID: "gallery-cta", Text: "Inspired by Our Work?", Speed: 150 * time.Millisecond, Delay: 2000 * time.Millisecond},
}

// FindHeadline ищет заголовок по ID
func FindHeadline(id string) (Headline, bool) {
	for _, h := range Headlines {
		if h.ID == id {
			return h, true
		}
	}
	return Headline{}, false
}
