package domain

import (
	"slices"
	"strings"
)

// CategoryAll фильтр без ограничения по категории
const CategoryAll = "all"

// Category категория фильтра галереи или списка услуг
type Category struct {
	ID    string
	Name  string
	Count int // число работ на витрине, для услуг не заполняется
}

// GalleryItem работа из портфолио
type GalleryItem struct {
	ID          int
	Category    string
	Title       string
	Description string
	Tags        []string
	Image       string
}

// ServiceListing услуга со страницы услуг
type ServiceListing struct {
	ID          int
	Category    string
	Title       string
	Description string
	Features    []string
	Duration    string
	Warranty    string
	Price       string
	Popular     bool
}

// ProcessStep этап работы с клиентом
type ProcessStep struct {
	Step        string
	Title       string
	Description string
}

// GalleryCategories фильтры галереи
var GalleryCategories = []Category{
	{ID: CategoryAll, Name: "All Projects", Count: 48},
	{ID: "pop", Name: "POP Ceilings", Count: 24},
	{ID: "tv", Name: "TV Units", Count: 16},
	{ID: "lighting", Name: "Lighting", Count: 18},
	{ID: "wall", Name: "Wall Panels", Count: 12},
	{ID: "commercial", Name: "Commercial", Count: 8},
}

// GalleryItems работы портфолио в порядке показа
var GalleryItems = []GalleryItem{
	{ID: 1, Category: "pop", Title: "Modern Living Room POP", Description: "Contemporary POP ceiling with LED lighting", Tags: []string{"Modern", "LED", "Living Room"}, Image: "L1.jpg"},
	{ID: 2, Category: "tv", Title: "Minimalist TV Unit", Description: "Floating TV unit with hidden storage", Tags: []string{"Minimalist", "Storage", "Modern"}, Image: "L2.jpg"},
	{ID: 3, Category: "lighting", Title: "Ambient Bedroom Lighting", Description: "Soft lighting for bedroom ambiance", Tags: []string{"Ambient", "Bedroom", "Warm"}, Image: "L3.jpg"},
	{ID: 4, Category: "wall", Title: "3D Feature Wall", Description: "Geometric 3D wall panels", Tags: []string{"3D", "Geometric", "Feature Wall"}, Image: "L4.jpg"},
	{ID: 5, Category: "pop", Title: "Traditional POP Design", Description: "Classic POP ceiling with intricate patterns", Tags: []string{"Traditional", "Pattern", "Classic"}, Image: "L5.jpg"},
	{ID: 6, Category: "tv", Title: "Entertainment Wall Unit", Description: "Complete entertainment wall with shelves", Tags: []string{"Entertainment", "Shelves", "Complete"}, Image: "L6.jpg"},
	{ID: 7, Category: "lighting", Title: "Smart Home Lighting", Description: "Voice-controlled smart lighting system", Tags: []string{"Smart", "Voice Control", "Modern"}, Image: "L7.jpg"},
	{ID: 8, Category: "commercial", Title: "Office POP Ceiling", Description: "Corporate office ceiling design", Tags: []string{"Commercial", "Office", "Professional"}, Image: "l9.jpg"},
	{ID: 9, Category: "pop", Title: "Kitchen POP with Lighting", Description: "Functional kitchen ceiling with task lighting", Tags: []string{"Kitchen", "Task Lighting", "Functional"}, Image: "L8.jpg"},
	{ID: 10, Category: "tv", Title: "Corner TV Unit", Description: "Space-saving corner TV installation", Tags: []string{"Corner", "Space Saving", "Compact"}, Image: "L10.jpg"},
	{ID: 11, Category: "lighting", Title: "Bathroom Patio Lights", Description: "Weather-proof Bathroom lighting", Tags: []string{"Bathroom", "Patio", "Weatherproof"}, Image: "L11.jpg"},
	{ID: 12, Category: "wall", Title: "Balcony Wall Panels", Description: "Decorative accent wall in outside", Tags: []string{"Accent", "Decorative", "Bedroom"}, Image: "L12.jpg"},
}

// ServiceCategories фильтры страницы услуг
var ServiceCategories = []Category{
	{ID: CategoryAll, Name: "All Services"},
	{ID: "pop", Name: "POP Ceilings"},
	{ID: "tv", Name: "TV Units"},
	{ID: "lighting", Name: "Lighting"},
	{ID: "wall", Name: "Wall Panels"},
	{ID: "decoration", Name: "Decoration"},
	{ID: "maintenance", Name: "Maintenance"},
}

// ServiceListings услуги студии
var ServiceListings = []ServiceListing{
	{
		ID:          1,
		Category:    "pop",
		Title:       "Pop Installation",
		Description: "Professional installation of Plaster of Paris ceilings with modern and with traditional designs",
		Features:    []string{"Custom Designs", "Moisture Resistant", "LED Integration", "Acoustic Treatment", "Fire Resistant"},
		Duration:    "3-7 days",
		Warranty:    "5 years",
		Price:       "₦2000k",
		Popular:     true,
	},
	{
		ID:          2,
		Category:    "tv",
		Title:       "Console Design",
		Description: "Custom TV wall units with ambient lighting, storage, and wire design management",
		Features:    []string{"Built-in Lighting", "Storage Solutions", "Wire Management", "Custom Finishes", "Ambient Effects"},
		Duration:    "7-14 days",
		Warranty:    "3 years",
		Price:       "₦1500K",
		Popular:     true,
	},
	{
		ID:          3,
		Category:    "lighting",
		Title:       "Light Installation",
		Description: "Ambient, accent, and smart lighting solutions for modern spaces with pop installation",
		Features:    []string{"LED Strips", "Smart Lighting", "Mood Lighting", "Energy Efficient", "Remote Control"},
		Duration:    "2-5 days",
		Warranty:    "2 years",
		Price:       "₦3000K",
		Popular:     true,
	},
	{
		ID:          4,
		Category:    "wall",
		Title:       "3D Wall Panels",
		Description: "Modern 3D wall panels that add depth and texture to your walls",
		Features:    []string{"3D Effects", "Sound Absorption", "Easy Maintenance", "Variety of Finishes", "Quick Installation"},
		Duration:    "2-4 days",
		Warranty:    "4 years",
		Price:       "₦4500K",
		Popular:     true,
	},
	{
		ID:          5,
		Category:    "decoration",
		Title:       "Interior Design",
		Description: "Complete interior decoration services including furniture and accessories",
		Features:    []string{"Space Planning", "Color Consulting", "Furniture Selection", "Accessory Styling", "Complete Makeover"},
		Duration:    "14-30 days",
		Warranty:    "7 year",
		Price:       "₦6100K",
	},
	{
		ID:          6,
		Category:    "maintenance",
		Title:       "Maintenance",
		Description: "Professional repair and maintenance services for all types of POP styles",
		Features:    []string{"Crack Repair", "Color Touch-up", "Lighting Repair", "Regular Maintenance", "Emergency Service"},
		Duration:    "1-2 days",
		Warranty:    "6 months",
		Price:       "₦5000k",
	},
}

// ProcessSteps этапы работы над заказом
var ProcessSteps = []ProcessStep{
	{Step: "01", Title: "Consultation", Description: "Free initial consultation to understand your requirements"},
	{Step: "02", Title: "Design", Description: "Create custom designs based on your space and preferences"},
	{Step: "03", Title: "Quote", Description: "Transparent pricing with detailed cost breakdown"},
	{Step: "04", Title: "Installation", Description: "Professional installation by certified experts"},
	{Step: "05", Title: "Inspection", Description: "Quality check and final approval from you"},
	{Step: "06", Title: "Support", Description: "Post-installation support and maintenance"},
}

// HasCategory проверяет, что id есть среди категорий. Пустой id равен CategoryAll.
func HasCategory(categories []Category, id string) bool {
	if id == "" {
		return true
	}
	return slices.ContainsFunc(categories, func(c Category) bool { return c.ID == id })
}

func inCategory(itemCategory, filter string) bool {
	return filter == "" || filter == CategoryAll || itemCategory == filter
}

// Matches проверяет категорию и поиск без учёта регистра по названию, описанию и тегам.
// Пустой запрос подходит любой работе.
func (g GalleryItem) Matches(category, query string) bool {
	if !inCategory(g.Category, category) {
		return false
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(g.Title), q) || strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	return slices.ContainsFunc(g.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// FilterGallery возвращает работы, подходящие под фильтр, в исходном порядке
func FilterGallery(items []GalleryItem, category, query string) []GalleryItem {
	var out []GalleryItem
	for _, item := range items {
		if item.Matches(category, query) {
			out = append(out, item)
		}
	}
	return out
}

// FilterServices возвращает услуги категории в исходном порядке
func FilterServices(services []ServiceListing, category string) []ServiceListing {
	var out []ServiceListing
	for _, s := range services {
		if inCategory(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// Neighbors индексы соседей в просмотрщике из n элементов, по краям переход по кругу
func Neighbors(n, i int) (prev, next int) {
	if n <= 0 {
		return -1, -1
	}
	prev = i - 1
	if i == 0 {
		prev = n - 1
	}
	next = i + 1
	if i == n-1 {
		next = 0
	}
	return prev, next
}
