// Package report prints elevator and call button status in the console
// format of the simulator.
package report

import (
	"io"
	"strings"

	"elevsim/src/config"
	"elevsim/src/dispatcher"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Printer struct {
	p *message.Printer
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{p: message.NewPrinter(language.English), w: w}
}

// Line echoes one ingested event-file line.
func (r *Printer) Line(number int, text string) {
	r.p.Fprintf(r.w, "line %d: %s\n", number, text)
}

// Time announces the logical time of the next step.
func (r *Printer) Time(timestamp int) {
	r.p.Fprintf(r.w, "=== time %d\n", timestamp)
}

// Elevators prints one row per car: id, floor:direction and the schedule.
//
//	E-0          1:I  => [3, 7]
func (r *Printer) Elevators(cs *dispatcher.ControlSystem) {
	for _, e := range cs.Elevators() {
		snap := e.Snapshot()
		schedule := make([]string, 0, len(snap.Floors))
		for _, floor := range e.FloorSchedule() {
			schedule = append(schedule, r.p.Sprint(floor))
		}
		r.p.Fprintf(r.w, "%-10s  %2d:%s  => [%s]\n",
			snap.ID, snap.Floor, snap.Dir.Status(), strings.Join(schedule, ", "))
	}
}

// Calls prints the call buttons, config.CallsPerRow per row, each as
// floor:flags with D for down and U for up.
func (r *Printer) Calls(cs *dispatcher.ControlSystem) {
	separator := ""
	for index, button := range cs.FloorCallButtons() {
		if index%config.CallsPerRow == 0 {
			r.p.Fprintf(r.w, "%s%-10s", separator, "Calls")
			separator = "\n"
		}
		status := ""
		if button.IsDown() {
			status += "D"
		}
		if button.IsUp() {
			status += "U"
		}
		r.p.Fprintf(r.w, "  %2d:%2s", button.Floor(), status)
	}
	r.p.Fprintf(r.w, "\n")
}

// Status prints elevators followed by calls.
func (r *Printer) Status(cs *dispatcher.ControlSystem) {
	r.Elevators(cs)
	r.Calls(cs)
}
