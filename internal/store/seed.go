package store

import (
	"fmt"

	"catalog-service/internal/models"
)

// Seed collections returned whenever a snapshot is missing or undecodable.
// They are never written back implicitly: the first admin save persists the
// whole (possibly still seed-derived) collection.

// SeedCategories returns the demo category set.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID:            "1",
			Name:          "Organic Hair Colour",
			NameDE:        "Bio-Haarfarbe",
			Countries:     []models.CountryCode{models.CountryIndia, models.CountryGermany},
			Status:        models.StatusActive,
			CreatedAt:     "2023-10-01",
			Description:   "Natural and organic hair colouring solutions for vibrant results.",
			DescriptionDE: "Natürliche und biologische Haarfarben für lebendige Ergebnisse.",
		},
		{
			ID:            "2",
			Name:          "Hair Treatment",
			NameDE:        "Haarpflege & Kuren",
			Countries:     []models.CountryCode{models.CountryIndia, models.CountryGermany},
			Status:        models.StatusActive,
			CreatedAt:     "2023-10-02",
			Description:   "Revitalize and protect your hair with our professional organic treatments.",
			DescriptionDE: "Revitalisieren und schützen Sie Ihr Haar mit unseren professionellen Bio-Behandlungen.",
		},
		{
			ID:            "3",
			Name:          "Sunab Organic Hair Colour",
			NameDE:        "Sunab Bio-Haarfarbe",
			Countries:     []models.CountryCode{models.CountryIndia, models.CountryGermany},
			Status:        models.StatusActive,
			CreatedAt:     "2023-10-03",
			Description:   "Premium certified organic hair colour by Sunab.",
			DescriptionDE: "Premium-zertifizierte Bio-Haarfarbe von Sunab.",
		},
	}
}

// SeedBanners returns the demo banner set. b5 is the default fallback slide.
func SeedBanners() []models.Banner {
	return []models.Banner{
		{
			ID:         "b1",
			ImageURL:   "https://images.unsplash.com/photo-1560869713-7d0a29430803?q=80&w=1200&auto=format&fit=crop",
			Title:      "Shine with Rich Black",
			TitleDE:    "Glänzen mit Tiefschwarz",
			Subtitle:   "Long-lasting black hair color",
			SubtitleDE: "Langanhaltende schwarze Haarfarbe",
			Placement:  models.PlacementTop,
			Countries:  []models.CountryCode{models.CountryIndia},
			IsDefault:  false,
			Status:     models.StatusActive,
			CreatedAt:  "2023-11-01",
		},
		{
			ID:         "b2",
			ImageURL:   "https://images.unsplash.com/photo-1620331311520-246422fd82f9?q=80&w=1200&auto=format&fit=crop",
			Title:      "Bold Burgundy Look",
			TitleDE:    "Mutiger Burgund-Look",
			Subtitle:   "Trendy burgundy shades for you",
			SubtitleDE: "Trendige Burgund-Töne für Sie",
			Placement:  models.PlacementTop,
			Countries:  []models.CountryCode{models.CountryIndia},
			IsDefault:  false,
			Status:     models.StatusActive,
			CreatedAt:  "2023-11-02",
		},
		{
			ID:         "b3",
			ImageURL:   "https://images.unsplash.com/photo-1492707892479-7bc8d5a4ee93?q=80&w=1200&auto=format&fit=crop",
			Title:      "Radiant Chestnut Brown",
			TitleDE:    "Strahlendes Kastanienbraun",
			Subtitle:   "Premium hair color for natural shine",
			SubtitleDE: "Premium Haarfarbe für natürlichen Glanz",
			Placement:  models.PlacementTop,
			Countries:  []models.CountryCode{models.CountryGermany},
			IsDefault:  false,
			Status:     models.StatusActive,
			CreatedAt:  "2023-11-03",
		},
		{
			ID:         "b4",
			ImageURL:   "https://images.unsplash.com/photo-1516914915975-93fee9075881?q=80&w=1200&auto=format&fit=crop",
			Title:      "Platinum Blonde Perfection",
			TitleDE:    "Platinblond Perfektion",
			Subtitle:   "Salon quality at home",
			SubtitleDE: "Salon-Qualität für zuhause",
			Placement:  models.PlacementTop,
			Countries:  []models.CountryCode{models.CountryGermany},
			IsDefault:  false,
			Status:     models.StatusActive,
			CreatedAt:  "2023-11-04",
		},
		{
			ID:         "b5",
			ImageURL:   "https://images.unsplash.com/photo-1522337360788-8b13df772ec2?q=80&w=1200&auto=format&fit=crop",
			Title:      "Discover Your Perfect Hair Color",
			TitleDE:    "Entdecke Deine perfekte Haarfarbe",
			Subtitle:   "Professional hair color range",
			SubtitleDE: "Professionelles Haarfärbe-Sortiment",
			Placement:  models.PlacementTop,
			Countries:  []models.CountryCode{models.CountryIndia, models.CountryGermany},
			IsDefault:  true,
			Status:     models.StatusActive,
			CreatedAt:  "2023-10-25",
		},
	}
}

type seedProduct struct {
	cat       string
	countries []models.CountryCode
	name      string
	nameDE    string
	desc      string
	descDE    string
	how       string
	howDE     string
	inside    string
	insideDE  string
	ing       string
	ingDE     string
	ben       string
	benDE     string
	stock     int
}

var seedProductImages = []string{
	"https://images.unsplash.com/photo-1620331311520-246422fd82f9?w=800&q=80",
	"https://images.unsplash.com/photo-1522337360788-8b13df772ec2?w=800&q=80",
	"https://images.unsplash.com/photo-1560869713-7d0a29430803?w=800&q=80",
	"https://images.unsplash.com/photo-1516914915975-93fee9075881?w=800&q=80",
	"https://images.unsplash.com/photo-1492707892479-7bc8d5a4ee93?w=800&q=80",
	"https://images.unsplash.com/photo-1526045431048-f857369aba09?w=800&q=80",
	"https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?w=800&q=80",
	"https://images.unsplash.com/photo-1599305090598-fe179d501227?w=800&q=80",
}

var seedProductData = []seedProduct{
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia, models.CountryGermany},
		name: "Soft Black Colour", nameDE: "Sanftes Schwarz",
		desc: "Natural black shade for elegant hair.", descDE: "Natürlicher Schwarzton für elegantes Haar.",
		how: "Mix with warm water, apply for 60 mins.", howDE: "Mit warmem Wasser mischen, 60 Min. einwirken lassen.",
		inside: "Indigo, Henna, Amla.", insideDE: "Indigo, Henna, Amla.",
		ing: "Indigofera Tinctoria, Lawsonia Inermis.", ingDE: "Indigofera Tinctoria, Lawsonia Inermis.",
		ben: "Chemical free, shiny hair.", benDE: "Chemiefrei, glänzendes Haar.",
		stock: 50,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia, models.CountryGermany},
		name: "Dark Brown Organic", nameDE: "Dunkelbraun Bio",
		desc: "Rich deep brown tones.", descDE: "Reiche, tiefe Brauntöne.",
		how: "Paste application, rinse after 90 mins.", howDE: "Paste auftragen, nach 90 Min. ausspülen.",
		inside: "Walnut, Henna.", insideDE: "Walnuss, Henna.",
		ing: "Juglans Regia, Lawsonia Inermis.", ingDE: "Juglans Regia, Lawsonia Inermis.",
		ben: "Safe for all hair types.", benDE: "Sicher für alle Haartypen.",
		stock: 25,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia},
		name: "Kerala Indigo Powder", nameDE: "Kerala Indigo Pulver",
		desc: "Traditional blue-black dye.", descDE: "Traditioneller blauschwarzer Farbstoff.",
		how: "Two-step process with henna.", howDE: "Zweistufiger Prozess mit Henna.",
		inside: "Pure Indigo leaf powder.", insideDE: "Reines Indigo-Blattpulver.",
		ing: "100% Indigofera Tinctoria.", ingDE: "100% Indigofera Tinctoria.",
		ben: "Deepest black naturally.", benDE: "Tiefstes Schwarz auf natürliche Weise.",
		stock: 0,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryGermany},
		name: "Alpine Ash Blonde", nameDE: "Alpines Aschblond",
		desc: "Cool blonde tones for European textures.", descDE: "Kühle Blondtöne für europäische Texturen.",
		how: "30-45 min application.", howDE: "30-45 Min. Anwendung.",
		inside: "Cassia, Rhubarb root.", insideDE: "Cassia, Rhabarberwurzel.",
		ing: "Cassia Obovata, Rheum Palmatum.", ingDE: "Cassia Obovata, Rheum Palmatum.",
		ben: "Brightens naturally blonde hair.", benDE: "Hellt natürlich blondes Haar auf.",
		stock: 12,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia, models.CountryGermany},
		name: "Copper Brown Shine", nameDE: "Kupferbraun Glanz",
		desc: "Warm earthy copper tones.", descDE: "Warme erdige Kupfertöne.",
		how: "Apply to damp hair.", howDE: "Auf das feuchte Haar auftragen.",
		inside: "Henna, Hibiscus.", insideDE: "Henna, Hibiskus.",
		ing: "Lawsonia Inermis, Hibiscus Sabdariffa.", ingDE: "Lawsonia Inermis, Hibiscus Sabdariffa.",
		ben: "Vibrant reflections.", benDE: "Lebendige Reflexe.",
		stock: 44,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia},
		name: "Neem Infused Black", nameDE: "Neem-Schwarz",
		desc: "Anti-bacterial coloring.", descDE: "Antibakterielle Färbung.",
		how: "Massage paste into scalp and hair.", howDE: "Paste in Kopfhaut und Haar einmassieren.",
		inside: "Neem, Amla, Indigo.", insideDE: "Neem, Amla, Indigo.",
		ing: "Azadirachta Indica, Emblica Officinalis.", ingDE: "Azadirachta Indica, Emblica Officinalis.",
		ben: "Treats dandruff while coloring.", benDE: "Behandelt Schuppen während des Färbens.",
		stock: 100,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryGermany},
		name: "Munich Berry Red", nameDE: "Münchner Beerenrot",
		desc: "Modern fruity red tint.", descDE: "Moderne fruchtige Rottönung.",
		how: "Mix with warm fruit juice or water.", howDE: "Mit warmem Fruchtsaft oder Wasser mischen.",
		inside: "Berry extracts, Henna.", insideDE: "Beerenextrakte, Henna.",
		ing: "Rubus Idaeus, Lawsonia Inermis.", ingDE: "Rubus Idaeus, Lawsonia Inermis.",
		ben: "Sweet scent and deep red.", benDE: "Süßer Duft und tiefes Rot.",
		stock: 8,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia, models.CountryGermany},
		name: "Burgundy Wine Shade", nameDE: "Burgunder Wein-Ton",
		desc: "Elegant sophisticated dark red.", descDE: "Elegantes, anspruchsvolles Dunkelrot.",
		how: "60 min soak.", howDE: "60 Min. einweichen.",
		inside: "Beetroot powder, Henna.", insideDE: "Rote-Bete-Pulver, Henna.",
		ing: "Beta Vulgaris, Lawsonia Inermis.", ingDE: "Beta Vulgaris, Lawsonia Inermis.",
		ben: "Rich velvet finish.", benDE: "Reiches Samt-Finish.",
		stock: 22,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryIndia},
		name: "Rajasthani Premium Henna", nameDE: "Rajasthani Premium Henna",
		desc: "Finest triple-sifted henna.", descDE: "Feinstes, dreifach gesiebtes Henna.",
		how: "Soak overnight, apply 3 hours.", howDE: "Über Nacht einweichen, 3 Std. auftragen.",
		inside: "100% Rajasthani Henna.", insideDE: "100% Rajasthani Henna.",
		ing: "Lawsonia Inermis.", ingDE: "Lawsonia Inermis.",
		ben: "Extreme conditioning.", benDE: "Extreme Pflege.",
		stock: 150,
	},
	{
		cat: "1", countries: []models.CountryCode{models.CountryGermany},
		name: "Nordic Light Blonde", nameDE: "Nordisches Lichtblond",
		desc: "Sun-kissed organic effect.", descDE: "Sonnengeküsster Bio-Effekt.",
		how: "Apply for 20-40 mins.", howDE: "20-40 Min. auftragen.",
		inside: "Chamomile, Lemon peel.", insideDE: "Kamille, Zitronenschale.",
		ing: "Matricaria Chamomilla, Citrus Limonum.", ingDE: "Matricaria Chamomilla, Citrus Limonum.",
		ben: "Gentle brightening.", benDE: "Sanfte Aufhellung.",
		stock: 5,
	},
}

// SeedProducts returns the demo product set. Amounts follow the demo's
// deterministic ramp so reloads always produce the same collection.
func SeedProducts() []models.Product {
	products := make([]models.Product, 0, len(seedProductData))

	for i, p := range seedProductData {
		var prices []models.ProductPrice
		for _, country := range p.countries {
			switch country {
			case models.CountryIndia:
				prices = append(prices, models.ProductPrice{
					Country:  models.CountryIndia,
					Amount:   float64(350 + i*15),
					Currency: "INR",
				})
			case models.CountryGermany:
				prices = append(prices, models.ProductPrice{
					Country:  models.CountryGermany,
					Amount:   float64(14 + i%5),
					Currency: "EUR",
				})
			}
		}

		products = append(products, models.Product{
			ID:            fmt.Sprintf("prod_%s_%d", p.cat, i),
			Name:          p.name,
			NameDE:        p.nameDE,
			Description:   p.desc,
			DescriptionDE: p.descDE,
			CategoryID:    p.cat,
			Images:        []string{seedProductImages[i%len(seedProductImages)]},
			Status:        models.StatusActive,
			Countries:     p.countries,
			Prices:        prices,
			CreatedAt:     "2023-11-20",
			Stock:         p.stock,
			HowToUse:      p.how,
			HowToUseDE:    p.howDE,
			WhatsInside:   p.inside,
			WhatsInsideDE: p.insideDE,
			Ingredients:   p.ing,
			IngredientsDE: p.ingDE,
			Benefits:      p.ben,
			BenefitsDE:    p.benDE,
		})
	}

	return products
}
