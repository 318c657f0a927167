package demand

import (
	"encoding/json"
	"testing"
	"time"
)

func TestGenerateFallbackScenario(t *testing.T) {
	// 2025-06-01 is a Sunday: template index 0 (tempMax=72, precip=0)
	// with the weekend multiplier applied.
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	resp := GenerateFallback(now)

	if len(resp.Forecasts) != 10 {
		t.Fatalf("got %d forecasts, want 10", len(resp.Forecasts))
	}

	today := resp.Forecasts[0]
	if !today.IsToday {
		t.Error("first forecast should be flagged as today")
	}
	if today.DayName != "TODAY" {
		t.Errorf("today day name = %q, want TODAY", today.DayName)
	}
	if today.Date != "2025-06-01" {
		t.Errorf("today date = %s, want 2025-06-01", today.Date)
	}
	// base 12 + (72-65)*0.15 = 13.05, * 1.05 weekend = 13.7025 -> 13.70
	if today.Demand != 13.70 {
		t.Errorf("today demand = %v, want 13.70", today.Demand)
	}
	if today.LowerBound != 12.50 || today.UpperBound != 14.90 {
		t.Errorf("bounds = [%v, %v], want [12.50, 14.90]", today.LowerBound, today.UpperBound)
	}
	if today.VsAverage != -1 {
		t.Errorf("vsAverage = %d, want -1", today.VsAverage)
	}
	if got := Classify(today.Demand).Level; got != LevelLow {
		t.Errorf("Classify(13.70) = %s, want Low", got)
	}
	if today.Factors.DayType != "weekend" {
		t.Errorf("today dayType = %s, want weekend", today.Factors.DayType)
	}
}

func TestGenerateFallbackWetDay(t *testing.T) {
	// Offset 3 from a Sunday lands on Wednesday with template entry
	// (79, 0.3): base 14.1, * 0.85 rain = 11.985 -> 11.99.
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	resp := GenerateFallback(now)

	wed := resp.Forecasts[3]
	if wed.Date != "2025-06-04" {
		t.Fatalf("offset 3 date = %s, want 2025-06-04", wed.Date)
	}
	if wed.Demand != 11.99 {
		t.Errorf("wet day demand = %v, want 11.99", wed.Demand)
	}
	if wed.Factors.Precipitation != "yes" {
		t.Errorf("wet day precipitation factor = %s, want yes", wed.Factors.Precipitation)
	}
	if wed.DayName != "WED" {
		t.Errorf("day name = %q, want WED", wed.DayName)
	}
	if wed.IsToday {
		t.Error("offset 3 should not be flagged as today")
	}
}

func TestGenerateFallbackDeterminism(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a, err := json.Marshal(GenerateFallback(now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(GenerateFallback(now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Error("two fallback generations for the same instant differ")
	}
}

func TestGenerateFallbackInvariants(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	resp := GenerateFallback(now)

	todays := 0
	prevDate := ""
	for i, f := range resp.Forecasts {
		if f.IsToday {
			todays++
		}
		if f.Date <= prevDate {
			t.Errorf("forecast %d: date %s not strictly ascending after %s", i, f.Date, prevDate)
		}
		prevDate = f.Date
		if !(f.LowerBound <= f.Demand && f.Demand <= f.UpperBound) {
			t.Errorf("forecast %d: bounds [%v, %v] do not bracket demand %v",
				i, f.LowerBound, f.UpperBound, f.Demand)
		}
		if f.Weather.TempMin > f.Weather.TempMax {
			t.Errorf("forecast %d: tempMin %v exceeds tempMax %v", i, f.Weather.TempMin, f.Weather.TempMax)
		}
		if f.Weather.Precipitation < 0 {
			t.Errorf("forecast %d: negative precipitation", i)
		}
	}
	if todays != 1 {
		t.Errorf("got %d forecasts flagged today, want exactly 1", todays)
	}
	if resp.ModelAccuracy.ModelType != "Simulated" {
		t.Errorf("model type = %s, want Simulated", resp.ModelAccuracy.ModelType)
	}
}
