package display

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// statusLine builds the compact host line shown on the idle screen, so a
// headless panel still tells you the daemon is alive when no sport has data.
func statusLine() string {
	h, err := host.Info()
	if err != nil {
		return time.Now().Format("15:04")
	}
	line := fmt.Sprintf("%s up %s", h.Hostname, (time.Duration(h.Uptime) * time.Second).Truncate(time.Minute))
	if vm, err := mem.VirtualMemory(); err == nil {
		line += fmt.Sprintf(" mem %.0f%%", vm.UsedPercent)
	}
	return line
}
