package store

import (
	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/pkg/enums"
)

// seedProducts is the built-in catalog used when no snapshot exists yet.
func seedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Solar Panel 400W Monocrystalline",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "https://images.pexels.com/photos/9875416/pexels-photo-9875416.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategorySolarPanels,
			Description: "High-efficiency 400W monocrystalline solar panel with 25-year warranty. Perfect for residential and commercial installations.",
			Specifications: []string{
				"400W Peak Power",
				"Monocrystalline Technology",
				"25-Year Warranty",
				"Weather Resistant",
				"Easy Installation",
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          2,
			Name:        "Solar Battery 12V 100Ah Lithium",
			Price:       decimal.RequireFromString("599.99"),
			Image:       "https://images.pexels.com/photos/9875415/pexels-photo-9875415.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategoryBatteries,
			Description: "Premium lithium battery with built-in BMS for safe and reliable energy storage.",
			Specifications: []string{
				"12V 100Ah Capacity",
				"Lithium Iron Phosphate",
				"Built-in BMS",
				"10-Year Warranty",
				"Maintenance Free",
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          3,
			Name:        "Solar Inverter 3000W Pure Sine Wave",
			Price:       decimal.RequireFromString("399.99"),
			Image:       "https://images.pexels.com/photos/9875413/pexels-photo-9875413.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategoryInverters,
			Description: "High-quality pure sine wave inverter for clean power conversion.",
			Specifications: []string{
				"3000W Continuous Power",
				"Pure Sine Wave Output",
				"LCD Display",
				"Multiple Protection",
				"Remote Monitoring",
			},
			InStock:  true,
			Featured: false,
		},
		{
			ID:          4,
			Name:        "Solar Charge Controller MPPT 60A",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.pexels.com/photos/9875414/pexels-photo-9875414.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategoryControllers,
			Description: "Advanced MPPT charge controller for maximum power point tracking.",
			Specifications: []string{
				"60A Maximum Current",
				"MPPT Technology",
				"LCD Display",
				"Multiple Load Control",
				"Temperature Compensation",
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          5,
			Name:        "Solar Installation Kit Complete",
			Price:       decimal.RequireFromString("899.99"),
			Image:       "https://images.pexels.com/photos/9875412/pexels-photo-9875412.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategoryKits,
			Description: "Complete solar installation kit with all necessary components.",
			Specifications: []string{
				"Complete Installation Kit",
				"All Mounting Hardware",
				"Wiring and Connectors",
				"Installation Manual",
				"Technical Support",
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          6,
			Name:        "Solar LED Street Light 150W",
			Price:       decimal.RequireFromString("249.99"),
			Image:       "https://images.pexels.com/photos/9875411/pexels-photo-9875411.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    enums.ProductCategoryLighting,
			Description: "All-in-one solar LED street light with motion sensor and dusk-to-dawn operation.",
			Specifications: []string{
				"150W LED Light",
				"Motion Sensor",
				"Remote Control",
				"Weatherproof IP65",
				"5-Year Warranty",
			},
			InStock:  true,
			Featured: false,
		},
	}
}
