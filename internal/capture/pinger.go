package capture

import (
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"time"
)

// Pinger sends a single probe and reports its round-trip time in ms.
type Pinger interface {
	Ping(addr string, timeout time.Duration) (float64, error)
}

// ExecPinger probes via the system ping binary.
type ExecPinger struct{}

// NewPinger creates an ExecPinger.
func NewPinger() *ExecPinger {
	return &ExecPinger{}
}

// Ping sends one echo request to addr and parses the RTT from the
// command output. A non-zero exit or an unparseable reply is returned
// as an error; the caller records it as a timed-out probe.
func (p *ExecPinger) Ping(addr string, timeout time.Duration) (float64, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("ping", "-n", "1", "-w", strconv.Itoa(int(timeout.Milliseconds())), addr)
	} else {
		secs := int(timeout.Seconds())
		if secs < 1 {
			secs = 1
		}
		cmd = exec.Command("ping", "-c", "1", "-W", strconv.Itoa(secs), addr)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ping %s: %w", addr, err)
	}

	rtt, ok := parseRTT(string(output))
	if !ok {
		return 0, fmt.Errorf("ping %s: no RTT in output", addr)
	}
	return rtt, nil
}

var rttPatterns = []*regexp.Regexp{
	regexp.MustCompile(`time[=<]([0-9.]+)\s*ms`),
	regexp.MustCompile(`time[=<]([0-9.]+)ms`),
	regexp.MustCompile(`round-trip min/avg/max = [0-9.]+/([0-9.]+)/`),
}

// parseRTT extracts the round-trip time from ping output.
// Linux/macOS print "time=XX.X ms", Windows "time=XXms" or "time<1ms".
func parseRTT(output string) (float64, bool) {
	for _, re := range rttPatterns {
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if rtt, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return rtt, true
			}
		}
	}
	return 0, false
}
