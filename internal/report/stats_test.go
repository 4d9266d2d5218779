package report

import (
	"testing"

	"pinglog/internal/models"
)

func TestSummarize(t *testing.T) {
	ds := models.Dataset{
		Key:  "router",
		RTTs: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 120},
	}
	ds.Times = make([]int64, len(ds.RTTs))

	s := Summarize(ds, []float64{60, 100})

	if s.Samples != 10 {
		t.Errorf("samples = %d, want 10", s.Samples)
	}
	if s.MinRTT != 10 || s.MaxRTT != 120 {
		t.Errorf("min/max = %v/%v, want 10/120", s.MinRTT, s.MaxRTT)
	}
	if s.MedianRTT != 60 {
		t.Errorf("median = %v, want 60", s.MedianRTT)
	}
	if len(s.OverThreshold) != 2 {
		t.Fatalf("expected 2 threshold shares, got %d", len(s.OverThreshold))
	}
	// 70, 80, 90, 120 exceed 60ms; only 120 exceeds 100ms.
	if s.OverThreshold[0].Percent != 40 {
		t.Errorf("over 60ms = %v%%, want 40%%", s.OverThreshold[0].Percent)
	}
	if s.OverThreshold[1].Percent != 10 {
		t.Errorf("over 100ms = %v%%, want 10%%", s.OverThreshold[1].Percent)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(models.Dataset{Key: "router"}, []float64{60})
	if s.Samples != 0 {
		t.Errorf("samples = %d, want 0", s.Samples)
	}
	if s.OverThreshold[0].Percent != 0 {
		t.Errorf("empty dataset should report 0%% over threshold")
	}
}

func TestPercentOver(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		threshold float64
		want      float64
	}{
		{"all under", []float64{1, 2, 3}, 10, 0},
		{"all over", []float64{11, 12}, 10, 100},
		{"half over", []float64{5, 15}, 10, 50},
		{"exact threshold is not over", []float64{10, 20}, 10, 50},
		{"empty", nil, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentOver(tt.values, tt.threshold); got != tt.want {
				t.Errorf("PercentOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("10.0.0.1"); got != "10_0_0_1" {
		t.Errorf("sanitizeFilename = %q", got)
	}
	if got := sanitizeFilename("fe80::1%eth0"); got == "fe80::1%eth0" {
		t.Errorf("colons should be replaced, got %q", got)
	}
}
