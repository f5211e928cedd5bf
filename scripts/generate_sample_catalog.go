package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Writes a small sample catalogue and referral discount file so the API
// can be run locally without real data.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	original := func(v float64) *float64 { return &v }

	catalog := []map[string]interface{}{
		{
			"id": "silk-slip-dress", "name": "Silk Slip Dress", "price": 890.00,
			"originalPrice": original(1180.00), "category": "Dresses",
			"colors": []map[string]string{{"name": "Champagne", "swatch": "#F7E7CE"}, {"name": "Noir", "swatch": "#1B1B1B"}},
			"sizes":  []map[string]interface{}{{"name": "S", "inStock": true}, {"name": "M", "inStock": true}, {"name": "L", "inStock": false}},
			"tags":   []string{"new", "evening"},
			"rating": 4.8, "reviewCount": 124, "inStock": true, "quality": 9.2, "popularity": 87,
		},
		{
			"id": "cashmere-wrap-coat", "name": "Cashmere Wrap Coat", "price": 2450.00,
			"category": "Outerwear",
			"colors":   []map[string]string{{"name": "Camel", "swatch": "#C19A6B"}},
			"sizes":    []map[string]interface{}{{"name": "M", "inStock": true}, {"name": "L", "inStock": true}},
			"tags":     []string{"bestseller"},
			"rating":   4.9, "reviewCount": 86, "inStock": true, "quality": 9.7, "popularity": 93,
		},
		{
			"id": "leather-tote", "name": "Grained Leather Tote", "price": 1320.00,
			"originalPrice": original(1650.00), "category": "Bags",
			"colors": []map[string]string{{"name": "Cognac", "swatch": "#9A463D"}, {"name": "Noir", "swatch": "#1B1B1B"}},
			"tags":   []string{"icon"},
			"rating": 4.6, "reviewCount": 211, "inStock": true, "quality": 8.9, "popularity": 95,
		},
		{
			"id": "silk-scarf", "name": "Printed Silk Scarf", "price": 340.00,
			"category": "Accessories",
			"colors":   []map[string]string{{"name": "Emerald", "swatch": "#2E8B57"}},
			"tags":     []string{"gift"},
			"rating":   4.4, "reviewCount": 58, "inStock": false, "quality": 8.1, "popularity": 44,
		},
	}

	discounts := map[string][]map[string]interface{}{
		"demo-session": {
			{
				"id": "ref-001", "type": "referrer", "percentage": 20.0,
				"active": true, "createdAt": time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	writeJSON(filepath.Join(dataDir, "catalog.json"), catalog)
	writeJSON(filepath.Join(dataDir, "referral_discounts.json"), discounts)

	fmt.Println("Sample data files created successfully!")
}

func writeJSON(path string, v interface{}) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Created %s\n", path)
}
