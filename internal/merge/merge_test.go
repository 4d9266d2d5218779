package merge

import (
	"reflect"
	"sort"
	"testing"

	"pinglog/internal/models"
)

func capture(targets ...models.Target) models.Capture {
	return models.Capture{StartTime: 0, Targets: targets}
}

func TestFoldMergesByHostName(t *testing.T) {
	a := capture(models.Target{
		HostName: "router",
		IP:       "10.0.0.1",
		Times:    []int64{1000, 2000, 3000, 4000, 5000},
		RTTs:     []float64{10, 11, 12, 13, 14},
	})
	b := capture(models.Target{
		HostName: "router",
		IP:       "10.0.0.2",
		Times:    []int64{6000, 7000, 8000, 9000, 10000},
		RTTs:     []float64{20, 21, 22, 23, 24},
	})

	datasets := Fold([]models.Capture{a, b})
	if len(datasets) != 1 {
		t.Fatalf("expected 1 dataset, got %d", len(datasets))
	}

	ds := datasets[0]
	if ds.Key != "router" {
		t.Errorf("key = %q, want %q", ds.Key, "router")
	}
	if want := []string{"10.0.0.1", "10.0.0.2"}; !reflect.DeepEqual(ds.IPs, want) {
		t.Errorf("IPs = %v, want %v", ds.IPs, want)
	}
	if ds.Len() != 10 {
		t.Errorf("samples = %d, want 10", ds.Len())
	}
	if len(ds.Times) != len(ds.RTTs) {
		t.Errorf("parallel slices diverged: %d times, %d rtts", len(ds.Times), len(ds.RTTs))
	}
}

func TestFoldFallsBackToIP(t *testing.T) {
	datasets := Fold([]models.Capture{capture(
		models.Target{IP: "8.8.8.8", Times: []int64{1}, RTTs: []float64{9}},
	)})
	if len(datasets) != 1 || datasets[0].Key != "8.8.8.8" {
		t.Fatalf("expected dataset keyed by IP, got %+v", datasets)
	}
}

func TestFoldKeepsDistinctKeysSeparate(t *testing.T) {
	datasets := Fold([]models.Capture{capture(
		models.Target{HostName: "router", IP: "10.0.0.1", Times: []int64{1}, RTTs: []float64{1}},
		models.Target{HostName: "modem", IP: "10.0.0.254", Times: []int64{2}, RTTs: []float64{2}},
	)})
	if len(datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(datasets))
	}
	if datasets[0].Key != "router" || datasets[1].Key != "modem" {
		t.Errorf("keys in file order expected, got %q, %q", datasets[0].Key, datasets[1].Key)
	}
}

func TestFoldDeduplicatesIPs(t *testing.T) {
	a := capture(models.Target{HostName: "router", IP: "10.0.0.1", Times: []int64{1}, RTTs: []float64{1}})
	b := capture(models.Target{HostName: "router", IP: "10.0.0.1", Times: []int64{2}, RTTs: []float64{2}})

	datasets := Fold([]models.Capture{a, b})
	if len(datasets[0].IPs) != 1 {
		t.Errorf("IP union should deduplicate, got %v", datasets[0].IPs)
	}
	// Re-loading the same session still doubles the samples.
	if datasets[0].Len() != 2 {
		t.Errorf("samples = %d, want 2", datasets[0].Len())
	}
}

func TestFoldSortsChronologically(t *testing.T) {
	// Later session loaded first: file order is not chronological.
	late := capture(models.Target{
		HostName: "router", IP: "10.0.0.1",
		Times: []int64{9000, 10000},
		RTTs:  []float64{90, 100},
	})
	early := capture(models.Target{
		HostName: "router", IP: "10.0.0.1",
		Times: []int64{1000, 2000},
		RTTs:  []float64{10, 20},
	})

	datasets := Fold([]models.Capture{late, early})
	ds := datasets[0]

	if !sort.SliceIsSorted(ds.Times, func(i, j int) bool { return ds.Times[i] < ds.Times[j] }) {
		t.Fatalf("times not sorted: %v", ds.Times)
	}
	// RTTs must follow their timestamps through the sort.
	want := []float64{10, 20, 90, 100}
	if !reflect.DeepEqual(ds.RTTs, want) {
		t.Errorf("RTTs = %v, want %v", ds.RTTs, want)
	}
}

func TestFoldEmpty(t *testing.T) {
	if datasets := Fold(nil); len(datasets) != 0 {
		t.Errorf("expected no datasets, got %d", len(datasets))
	}
}
