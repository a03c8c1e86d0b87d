package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
	"github.com/olekukonko/tablewriter"
)

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

func formatColor(c photons2d.Color) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.R, c.G, c.B)
}

func formatPoint(p photons2d.Vector2) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// sceneTables renders the walls (boundary excluded) and the lights.
func sceneTables(w *photons2d.World) string {
	var buf bytes.Buffer
	table := newTable(&buf, "#", "P1", "P2", "Diffuse", "Reflect", "Transmit", "Absorb")
	segs := w.Segments()
	for i, s := range segs[4:] {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			formatPoint(s.P1),
			formatPoint(s.P2),
			fmt.Sprintf("%.2f", s.Diffuse),
			fmt.Sprintf("%.2f", s.Reflect),
			fmt.Sprintf("%.2f", s.Transmit),
			fmt.Sprintf("%.2f", s.Absorb()),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "WALLS", fmt.Sprintf("%d", len(segs)-4)})
	table.Render()

	buf.WriteString("\n")
	table = newTable(&buf, "#", "Kind", "Position", "Color")
	for i, l := range w.Lights() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			l.Policy.Kind(),
			formatPoint(l.Position),
			formatColor(l.Color),
		})
	}
	table.SetFooter([]string{"", "", "LIGHTS", fmt.Sprintf("%d", w.LightCount())})
	table.Render()
	return buf.String()
}

// runStats renders per-light emission and the interaction tally.
func runStats(w *photons2d.World, elapsed time.Duration, frames int) string {
	var buf bytes.Buffer
	table := newTable(&buf, "#", "Kind", "Position", "Rays", "% of rays")
	total := w.RayCount()
	for i, l := range w.Lights() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			l.Policy.Kind(),
			formatPoint(l.Position),
			fmt.Sprintf("%d", l.Emitted()),
			fmt.Sprintf("%02.1f %%", percent(l.Emitted(), total)),
		})
	}
	rate := 0.0
	if s := elapsed.Seconds(); s > 0 {
		rate = float64(total) / s
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", total), fmt.Sprintf("%.0f rays/s", rate)})
	table.Render()

	buf.WriteString("\n")
	table = newTable(&buf, "Interaction", "Count", "% of interactions")
	tally := w.Tally()
	interactions := tally.Interactions()
	for o := photons2d.Absorbed; o <= photons2d.Transmitted; o++ {
		table.Append([]string{
			o.String(),
			fmt.Sprintf("%d", tally.Count(o)),
			fmt.Sprintf("%02.1f %%", percent(tally.Count(o), interactions)),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", interactions), fmt.Sprintf("%d frames in %s", frames, elapsed.Round(time.Millisecond))})
	table.Render()

	// paths that ended without being absorbed
	buf.WriteString("\n")
	table = newTable(&buf, "Path ending", "Count", "% of rays")
	for _, o := range []photons2d.Outcome{photons2d.Escaped, photons2d.BounceLimit} {
		table.Append([]string{
			o.String(),
			fmt.Sprintf("%d", tally.Count(o)),
			fmt.Sprintf("%02.1f %%", percent(tally.Count(o), total)),
		})
	}
	table.Render()
	return buf.String()
}

type benchRow struct {
	workers int
	rate    float64
}

func benchTable(rows []benchRow) string {
	var buf bytes.Buffer
	table := newTable(&buf, "Workers", "Rays/s", "Rays/s per worker", "Speedup")
	for _, r := range rows {
		speedup := 0.0
		if rows[0].rate > 0 {
			speedup = r.rate / rows[0].rate
		}
		table.Append([]string{
			fmt.Sprintf("%d", r.workers),
			fmt.Sprintf("%.0f", r.rate),
			fmt.Sprintf("%.0f", r.rate/float64(r.workers)),
			fmt.Sprintf("%.2fx", speedup),
		})
	}
	table.Render()
	return buf.String()
}

func percent(n, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
