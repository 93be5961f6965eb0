package models

// CountryCode identifies one of the two storefront markets.
type CountryCode string

const (
	CountryIndia   CountryCode = "India"
	CountryGermany CountryCode = "Germany"
)

// AvailableCountries lists every market a catalog entity can target.
var AvailableCountries = []CountryCode{CountryIndia, CountryGermany}

// CurrencyFor returns the canonical currency for a market.
func CurrencyFor(country CountryCode) string {
	if country == CountryGermany {
		return "EUR"
	}
	return "INR"
}

// Language selects which localized field variant to render.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageDE Language = "DE"
)

// Status is the lifecycle state shared by all catalog entities.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// BannerPlacement is the storefront slot a banner may occupy.
type BannerPlacement string

const (
	PlacementTop    BannerPlacement = "Top"
	PlacementMiddle BannerPlacement = "Middle"
)

// Category groups products on a storefront. Localized fields carry the German
// variant alongside the default English value; empty variants fall back to English.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameDE        string        `json:"name_de,omitempty"`
	Image         string        `json:"image,omitempty"`
	Description   string        `json:"description,omitempty"`
	DescriptionDE string        `json:"description_de,omitempty"`
	Countries     []CountryCode `json:"countries"`
	Status        Status        `json:"status"`
	CreatedAt     string        `json:"createdAt"`
}

// LocalizedName returns the category name for the given language.
func (c Category) LocalizedName(lang Language) string {
	if lang == LanguageDE && c.NameDE != "" {
		return c.NameDE
	}
	return c.Name
}

// LocalizedDescription returns the category description for the given language.
func (c Category) LocalizedDescription(lang Language) string {
	if lang == LanguageDE && c.DescriptionDE != "" {
		return c.DescriptionDE
	}
	return c.Description
}

// VisibleIn reports whether the category targets the given market.
func (c Category) VisibleIn(country CountryCode) bool {
	return containsCountry(c.Countries, country)
}

// ProductPrice is the per-market price entry. Every country in Product.Countries
// has exactly one entry here; the admin flow keeps the two in sync.
type ProductPrice struct {
	Country  CountryCode `json:"country"`
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
}

// Product is a sellable catalog item. CategoryID is a soft reference: deleting
// the category orphans the product instead of cascading.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	NameDE        string         `json:"name_de,omitempty"`
	Description   string         `json:"description"`
	DescriptionDE string         `json:"description_de,omitempty"`
	CategoryID    string         `json:"categoryId"`
	Images        []string       `json:"images"`
	Status        Status         `json:"status"`
	Countries     []CountryCode  `json:"countries"`
	Prices        []ProductPrice `json:"prices"`
	CreatedAt     string         `json:"createdAt"`
	Stock         int            `json:"stock"`

	HowToUse      string `json:"howToUse,omitempty"`
	HowToUseDE    string `json:"howToUse_de,omitempty"`
	WhatsInside   string `json:"whatsInside,omitempty"`
	WhatsInsideDE string `json:"whatsInside_de,omitempty"`
	Ingredients   string `json:"ingredients,omitempty"`
	IngredientsDE string `json:"ingredients_de,omitempty"`
	Benefits      string `json:"benefits,omitempty"`
	BenefitsDE    string `json:"benefits_de,omitempty"`
}

// LocalizedName returns the product name for the given language.
func (p Product) LocalizedName(lang Language) string {
	if lang == LanguageDE && p.NameDE != "" {
		return p.NameDE
	}
	return p.Name
}

// LocalizedDescription returns the product description for the given language.
func (p Product) LocalizedDescription(lang Language) string {
	if lang == LanguageDE && p.DescriptionDE != "" {
		return p.DescriptionDE
	}
	return p.Description
}

// VisibleIn reports whether the product targets the given market.
func (p Product) VisibleIn(country CountryCode) bool {
	return containsCountry(p.Countries, country)
}

// PriceFor returns the price entry for a market. The second return is false
// when the product has no entry for that market; callers render "not available"
// instead of borrowing another market's amount.
func (p Product) PriceFor(country CountryCode) (ProductPrice, bool) {
	for _, pr := range p.Prices {
		if pr.Country == country {
			return pr, true
		}
	}
	return ProductPrice{}, false
}

// InStock reports whether any quantity can be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Banner is a promotional slide. Localized copy lives on the entity itself
// (title_de/subtitle_de) rather than in a lookup keyed by the title text, so
// editing a title cannot silently detach its translation.
type Banner struct {
	ID         string          `json:"id"`
	ImageURL   string          `json:"imageUrl"`
	Title      string          `json:"title"`
	TitleDE    string          `json:"title_de,omitempty"`
	Subtitle   string          `json:"subtitle,omitempty"`
	SubtitleDE string          `json:"subtitle_de,omitempty"`
	Link       string          `json:"link,omitempty"`
	Placement  BannerPlacement `json:"placement"`
	Countries  []CountryCode   `json:"countries"`
	IsDefault  bool            `json:"isDefault"`
	Status     Status          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
}

// LocalizedTitle returns the banner headline for the given language.
func (b Banner) LocalizedTitle(lang Language) string {
	if lang == LanguageDE && b.TitleDE != "" {
		return b.TitleDE
	}
	return b.Title
}

// LocalizedSubtitle returns the banner subtitle for the given language.
func (b Banner) LocalizedSubtitle(lang Language) string {
	if lang == LanguageDE && b.SubtitleDE != "" {
		return b.SubtitleDE
	}
	return b.Subtitle
}

// VisibleIn reports whether the banner targets the given market.
func (b Banner) VisibleIn(country CountryCode) bool {
	return containsCountry(b.Countries, country)
}

func containsCountry(countries []CountryCode, country CountryCode) bool {
	for _, c := range countries {
		if c == country {
			return true
		}
	}
	return false
}

// CreatedAtLayout is the date format stamped on new entities. The persisted
// JSON keeps the original day-granularity strings.
const CreatedAtLayout = "2006-01-02"
