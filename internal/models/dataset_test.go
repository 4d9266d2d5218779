package models

import "testing"

func TestTargetKey(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"host name preferred", Target{HostName: "router", IP: "10.0.0.1"}, "router"},
		{"falls back to ip", Target{IP: "10.0.0.1"}, "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatasetTitle(t *testing.T) {
	tests := []struct {
		name   string
		ds     Dataset
		maxIPs int
		want   string
	}{
		{
			"host with ips",
			Dataset{Key: "router", IPs: []string{"10.0.0.1", "10.0.0.2"}},
			3,
			"router (10.0.0.1, 10.0.0.2)",
		},
		{
			"ips truncated",
			Dataset{Key: "router", IPs: []string{"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4"}},
			3,
			"router (1.1.1.1, 2.2.2.2, 3.3.3.3, ...)",
		},
		{
			"ip-keyed dataset avoids repeating itself",
			Dataset{Key: "8.8.8.8", IPs: []string{"8.8.8.8"}},
			3,
			"8.8.8.8",
		},
		{
			"no ips",
			Dataset{Key: "router"},
			3,
			"router",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ds.Title(tt.maxIPs); got != tt.want {
				t.Errorf("Title(%d) = %q, want %q", tt.maxIPs, got, tt.want)
			}
		})
	}
}
