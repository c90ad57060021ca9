package worker

import (
	"math"

	"hireloop/models"
)

const (
	HoursPerDay   = 8
	HoursPerMonth = 160
)

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveRates returns the daily and monthly rates for an hourly rate.
func DeriveRates(hourly float64) (daily, monthly float64) {
	return Round2(hourly * HoursPerDay), Round2(hourly * HoursPerMonth)
}

// NewServiceRate builds a rate record whose derived fields follow hourly.
func NewServiceRate(hourly float64, minBookingHours int) models.ServiceRate {
	if minBookingHours < 1 {
		minBookingHours = 1
	}
	daily, monthly := DeriveRates(hourly)
	return models.ServiceRate{
		HourlyRate:      hourly,
		DailyRate:       daily,
		MonthlyRate:     monthly,
		MinBookingHours: minBookingHours,
	}
}

// ApplyHourlyRate returns a copy of pricing with key's hourly rate replaced
// and its derived fields recomputed. Other keys are untouched.
func ApplyHourlyRate(pricing models.ServicePricing, key string, hourly float64) models.ServicePricing {
	out := make(models.ServicePricing, len(pricing)+1)
	for k, v := range pricing {
		out[k] = v
	}
	minHours := 1
	if prev, ok := pricing[key]; ok {
		minHours = prev.MinBookingHours
	}
	out[key] = NewServiceRate(hourly, minHours)
	return out
}

// PricingKeys returns the pricing keys a selection needs, in selection order.
func PricingKeys(serviceType string, categories []string) []string {
	if serviceType == models.ServiceTypeCompanionship {
		return []string{models.LegacyPricingKey}
	}
	if serviceType == models.ServiceTypeAssistance {
		return append([]string(nil), categories...)
	}
	return nil
}

// PrunePricing drops entries that do not belong to the selection.
func PrunePricing(pricing models.ServicePricing, serviceType string, categories []string) models.ServicePricing {
	out := models.ServicePricing{}
	for _, key := range PricingKeys(serviceType, categories) {
		if rate, ok := pricing[key]; ok {
			out[key] = rate
		}
	}
	return out
}

// PricingComplete reports whether every key the selection needs has a rate.
func PricingComplete(pricing models.ServicePricing, serviceType string, categories []string) bool {
	keys := PricingKeys(serviceType, categories)
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if rate, ok := pricing[key]; !ok || rate.HourlyRate <= 0 {
			return false
		}
	}
	return true
}

// LegacyRate picks the rate mirrored into the flat hourly/daily/monthly
// columns: the first selected category, or the companionship rate.
func LegacyRate(pricing models.ServicePricing, serviceType string, categories []string) (models.ServiceRate, bool) {
	for _, key := range PricingKeys(serviceType, categories) {
		if rate, ok := pricing[key]; ok {
			return rate, true
		}
	}
	return models.ServiceRate{}, false
}

// pricingDocument is the persisted form of a pricing map plus its legacy columns.
func pricingDocument(pricing models.ServicePricing, serviceType string, categories []string) map[string]any {
	doc := map[string]any{"service_pricing": pricing}
	if legacy, ok := LegacyRate(pricing, serviceType, categories); ok {
		doc["hourly_rate"] = legacy.HourlyRate
		doc["daily_rate"] = legacy.DailyRate
		doc["monthly_rate"] = legacy.MonthlyRate
		doc["min_booking_hours"] = legacy.MinBookingHours
	} else {
		doc["hourly_rate"] = 0.0
		doc["daily_rate"] = 0.0
		doc["monthly_rate"] = 0.0
	}
	return doc
}
