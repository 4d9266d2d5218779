package models

import (
	"fmt"
	"strings"
)

// Dataset is the merged cross-session view of one logical host: the
// union of IPs ever seen under its display key and the concatenation of
// all samples across loaded captures. Times and RTTs are parallel
// slices of equal length; after merging they are sorted by timestamp.
type Dataset struct {
	Key   string
	IPs   []string // first-seen order
	Times []int64  // ms since epoch
	RTTs  []float64
}

// Len returns the number of samples in the dataset.
func (d *Dataset) Len() int {
	return len(d.Times)
}

// Title formats the dataset for chart titles: the display key followed
// by up to maxIPs of its addresses.
func (d *Dataset) Title(maxIPs int) string {
	if len(d.IPs) == 0 || (len(d.IPs) == 1 && d.IPs[0] == d.Key) {
		return d.Key
	}
	ips := d.IPs
	truncated := false
	if maxIPs > 0 && len(ips) > maxIPs {
		ips = ips[:maxIPs]
		truncated = true
	}
	joined := strings.Join(ips, ", ")
	if truncated {
		joined += ", ..."
	}
	return fmt.Sprintf("%s (%s)", d.Key, joined)
}
