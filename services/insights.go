package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Adam11-11/Projet-Immobilier/models"
	"github.com/Adam11-11/Projet-Immobilier/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(listings []*models.CleanListing) *models.InsightReport {
	report := &models.InsightReport{
		ListingsByCity:  make(map[string]int),
		DPEDistribution: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)
	report.MinPrice = listings[0].Prix
	report.MaxPrice = listings[0].Prix

	var priceTotal, surfaceTotal float64
	for _, l := range listings {
		if l.TypeMaison == 1 {
			report.Houses++
		}
		if l.TypeAppartement == 1 {
			report.Apartments++
		}

		priceTotal += float64(l.Prix)
		if l.Prix < report.MinPrice {
			report.MinPrice = l.Prix
		}
		if l.Prix > report.MaxPrice {
			report.MaxPrice = l.Prix
			report.MostExpensive = l
		}

		surfaceTotal += l.Surface

		if l.Ville != "" {
			report.ListingsByCity[l.Ville]++
		}
		for cat, v := range l.DPE {
			if v == 1 {
				report.DPEDistribution[cat]++
			}
		}
		if l.Latitude != "" && l.Longitude != "" {
			report.GeocodedCount++
		}
	}

	report.AveragePrice = round2(priceTotal / float64(len(listings)))
	report.AverageSurface = round2(surfaceTotal / float64(len(listings)))
	if report.MostExpensive == nil {
		report.MostExpensive = listings[0]
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  ÎLE-DE-FRANCE LISTINGS REPORT\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total listings : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Printf("  Houses         : \033[1m%d\033[0m\n", r.Houses)
	fmt.Printf("  Apartments     : \033[1m%d\033[0m\n", r.Apartments)
	fmt.Printf("  Geocoded       : \033[1m%d\033[0m\n", r.GeocodedCount)
	fmt.Println()

	fmt.Printf("\033[1;33m  Price Statistics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalListings > 0 {
		fmt.Printf("  Average price   : \033[1;32m%.2f €\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum price   : \033[1;32m%d €\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum price   : \033[1;32m%d €\033[0m\n", r.MaxPrice)
		fmt.Printf("  Average surface : \033[1;32m%.2f m²\033[0m\n", r.AverageSurface)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Most Expensive Listing\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  City  : %s\n", r.MostExpensive.Ville)
		fmt.Printf("  Price : \033[1;31m%d €\033[0m\n", r.MostExpensive.Prix)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  DPE Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, cat := range models.DPECategories {
		if count := r.DPEDistribution[cat]; count > 0 {
			fmt.Printf("  %-14s %s (%d)\n", cat, strings.Repeat("█", count), count)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Listings by City\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ListingsByCity) == 0 {
		fmt.Printf("  No city data\n")
	} else {
		type cityCount struct {
			city  string
			count int
		}
		var cities []cityCount
		for city, cnt := range r.ListingsByCity {
			cities = append(cities, cityCount{city, cnt})
		}
		sort.Slice(cities, func(i, j int) bool {
			return cities[i].count > cities[j].count
		})
		for _, cc := range cities {
			fmt.Printf("  %-30s %s (%d)\n", truncate(cc.city, 28), strings.Repeat("█", cc.count), cc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
