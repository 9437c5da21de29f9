package orrery

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Facts are the reference figures shown in a body's info block.
type Facts struct {
	AgeYears     float64 `yaml:"age_years"`
	DiameterKm   int     `yaml:"diameter_km"`
	DistanceKm   int     `yaml:"distance_km"` // from the sun, or from the primary for satellites
	TemperatureC int     `yaml:"temperature_c"`
}

// Rows formats the facts for display with tag's digit grouping.
func (f Facts) Rows(tag language.Tag) []InfoRow {
	p := message.NewPrinter(tag)
	return []InfoRow{
		{Label: "Age", Value: formatAge(p, f.AgeYears)},
		{Label: "Diameter", Value: p.Sprintf("%d km", f.DiameterKm)},
		{Label: "Distance", Value: p.Sprintf("%d km", f.DistanceKm)},
		{Label: "Temperature", Value: p.Sprintf("%d °C", f.TemperatureC)},
	}
}

func formatAge(p *message.Printer, years float64) string {
	switch {
	case years >= 1e9:
		return p.Sprintf("%.1f billion years", years/1e9)
	case years >= 1e6:
		return p.Sprintf("%.1f million years", years/1e6)
	}
	return p.Sprintf("%.0f years", years)
}
