package seismic

import (
	"fmt"
	"sync"
	"time"
)

// Monitor prints a fixed-width ASCII progress bar to standard output
// as lateral cells are processed, matching §5(d)'s serialized,
// purely-observational progress reporting. Ported from the original's
// monitorInitialize/monitor/printTime trio.
type Monitor struct {
	mu sync.Mutex

	size        float64
	next        float64
	ticksPrinted int
}

// NewMonitor initializes a Monitor for a lateral grid of nx*ny cells,
// printing the header bar immediately.
func NewMonitor(nx, ny int) *Monitor {
	size := float64(nx*ny) * 0.02
	if size < 1.0 {
		size = 1.0
	}

	fmt.Println("\nComputing synthetic seismic:")
	fmt.Println("  0%       20%       40%       60%       80%      100%")
	fmt.Println("  |    |    |    |    |    |    |    |    |    |    |  ")
	fmt.Print("  ^")

	return &Monitor{size: size, next: size}
}

// Tick reports that `done` cells (out of the grid total) have been
// processed, printing one more '^' tick mark whenever the count
// crosses the next threshold. Safe for concurrent callers.
func (m *Monitor) Tick(done int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if float64(done) >= m.next {
		m.next += m.size
		fmt.Print("^")
		m.ticksPrinted++
		if m.next > m.size*51 {
			fmt.Println()
		}
	}
}

// Done prints the trailing newline once generation has completed.
func (m *Monitor) Done() {
	m.mu.Lock()
	defer m.mu.Unlock()
	fmt.Println()
}

// PrintTime logs the current wall-clock time, matching the original's
// printTime diagnostic used to bracket long-running batch runs.
func PrintTime() {
	now := time.Now()
	fmt.Printf("Time: %d:%d:%d\n", now.Hour(), now.Minute(), now.Second())
}
