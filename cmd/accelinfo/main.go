// accelinfo prints which accelerator backends are compiled in, which are
// present on this host, which one the process would use, and the host CPU's
// vector extensions.
//
// Useful to debug "why is my program not using the GPU" deployment questions
// without writing any code.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"

	"github.com/mengph/pytorch/accelerators"
	_ "github.com/mengph/pytorch/accelerators/all"
	"github.com/mengph/pytorch/cpuisa"
)

var (
	flagJSON  = flag.Bool("json", false, "Output the report as JSON instead of a table.")
	flagPlain = flag.Bool("plain", false, "Disable colors and styling, e.g. for piping into other tools.")
)

// deviceReport is one row of the report.
type deviceReport struct {
	Device     string `json:"device"`
	Registered bool   `json:"registered"`
	Available  bool   `json:"available"`
	Selected   bool   `json:"selected"`
}

type report struct {
	Devices       []deviceReport `json:"devices"`
	Selected      string         `json:"selected"`
	CPUExtensions []string       `json:"cpu_vector_extensions"`
}

func buildReport() report {
	registered := accelerators.RegisteredDevices()
	availability := accelerators.Registered()
	selected, found := accelerators.GetAccelerator(false)

	var r report
	for _, device := range accelerators.Devices() {
		r.Devices = append(r.Devices, deviceReport{
			Device:     device.String(),
			Registered: slices.Contains(registered, device),
			Available:  availability.IsAvailable(device),
			Selected:   found && device == selected,
		})
	}
	r.Selected = selected.String()
	for _, isa := range cpuisa.Supported() {
		r.CPUExtensions = append(r.CPUExtensions, isa.Name)
	}
	return r
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("accelinfo takes no arguments. See 'accelinfo -help'.")
		os.Exit(1)
	}
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	r := buildReport()
	if *flagJSON {
		fmt.Println(string(must.M1(json.MarshalIndent(r, "", "  "))))
		return
	}

	table := newPlainTable(lipgloss.Left, lipgloss.Center, lipgloss.Center, lipgloss.Center)
	table.Headers("Device", "Registered", "Available", "Selected")
	for _, device := range r.Devices {
		table.Row(device.Device, checkmark(device.Registered), checkmark(device.Available), checkmark(device.Selected))
	}
	fmt.Println(table.Render())
	fmt.Printf("Active accelerator: %s\n", r.Selected)
	if len(r.CPUExtensions) == 0 {
		fmt.Println("CPU vector extensions: none")
	} else {
		fmt.Printf("CPU vector extensions: %v\n", r.CPUExtensions)
	}
}

func checkmark(value bool) string {
	if value {
		return "✔"
	}
	return ""
}
