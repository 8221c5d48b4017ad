// Package catalog holds the service catalog offered when the backend has no
// rate cards, and loads operator overrides from CSV or XLSX sheets.
package catalog

import "farmconnect/entities"

func item(key, title, desc, label string, price float64, days int) entities.ServiceCatalogItem {
	return entities.ServiceCatalogItem{
		Key: key, Title: title, Description: desc,
		PriceLabel: label, PriceValue: price, DaysUntilAvailable: days,
	}
}

// Default returns a fresh copy of the built-in catalog.
func Default() []entities.ServiceCatalogItem {
	return []entities.ServiceCatalogItem{
		item("tractorRepair", "Tractor Repair", "Professional tractor maintenance and repair", "$250", 250, 2),
		item("agronomistConsultation", "Agronomist Consultation", "Expert advice on crop management", "$180", 180, 3),
		item("fertilizerDelivery", "Fertilizer Delivery", "Premium fertilizer supply and delivery", "$320", 320, 1),
		item("irrigationSetup", "Irrigation System Setup", "Complete irrigation system installation", "$500", 500, 5),
		item("pestControl", "Pest Control Service", "Comprehensive pest management solutions", "$150", 150, 1),
		item("soilAnalysis", "Soil Analysis", "Detailed soil composition testing", "$200", 200, 4),
		item("seedSupply", "Seed Supply", "High-quality seed varieties", "$400", 400, 2),
		item("equipmentRental", "Equipment Rental", "Farm equipment rental service", "$350/day", 350, 1),
		item("harvestingService", "Harvesting Service", "Professional harvesting assistance", "$600", 600, 7),
		item("droneMonitoring", "Drone Monitoring", "Aerial crop monitoring with drones", "$280", 280, 3),
	}
}

// Find looks a service up by key.
func Find(items []entities.ServiceCatalogItem, key string) (entities.ServiceCatalogItem, bool) {
	for _, it := range items {
		if it.Key == key {
			return it, true
		}
	}
	return entities.ServiceCatalogItem{}, false
}
