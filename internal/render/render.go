package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/tourgraph/internal/portal"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat accepts "table" or "json".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q (want table or json)", s)
	}
}

// Renderer writes views to out.
type Renderer struct {
	out    io.Writer
	format Format
	styles *Styles
}

// New returns a Renderer writing format to out.
func New(out io.Writer, format Format) *Renderer {
	if format == "" {
		format = FormatTable
	}

	return &Renderer{out: out, format: format, styles: DefaultStyles()}
}

// Spot prints one spot with its neighbours.
func (r *Renderer) Spot(v portal.SpotView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(v.Name))
	b.WriteString(r.styles.Muted.Render(fmt.Sprintf("  #%d", v.ID)))
	b.WriteString("\n")
	if v.Description != "" {
		b.WriteString(v.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if len(v.Neighbors) == 0 {
		b.WriteString(r.styles.Muted.Render("no walkable paths"))
		b.WriteString("\n")

		return r.write(b.String())
	}

	rows := make([][]string, 0, len(v.Neighbors))
	for _, n := range v.Neighbors {
		rows = append(rows, []string{n.Name, meters(n.Distance), minutes(n.Duration)})
	}
	b.WriteString(r.table([]string{"Neighbour", "Distance", "Duration"}, rows))

	return r.write(b.String())
}

// Spots prints a spot listing.
func (r *Renderer) Spots(vs []portal.SpotView) error {
	if r.format == FormatJSON {
		return r.json(vs)
	}

	rows := make([][]string, 0, len(vs))
	for _, v := range vs {
		rows = append(rows, []string{strconv.Itoa(v.ID), v.Name, strconv.Itoa(len(v.Neighbors)), v.Description})
	}

	return r.write(r.table([]string{"ID", "Name", "Paths", "Description"}, rows))
}

// Paths prints a path listing.
func (r *Renderer) Paths(ps []portal.PathView) error {
	if r.format == FormatJSON {
		return r.json(ps)
	}

	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{p.From, p.To, meters(p.Distance), minutes(p.Duration)})
	}

	return r.write(r.table([]string{"From", "To", "Distance", "Duration"}, rows))
}

// Route prints a single route.
func (r *Renderer) Route(v portal.RouteView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	return r.write(r.route(v) + "\n")
}

// Plan prints a multi-stop route and the must-pass visit order.
func (r *Renderer) Plan(v portal.PlanView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	out := r.route(v.RouteView)
	if v.Reachable && len(v.Order) > 0 {
		out += "\n" + r.styles.Label.Render("Visit order: ") + strings.Join(v.Order, ", ")
	}

	return r.write(out + "\n")
}

// Walks prints every simple route, one row each.
func (r *Renderer) Walks(ws []portal.WalkView) error {
	if r.format == FormatJSON {
		return r.json(ws)
	}
	if len(ws) == 0 {
		return r.write(r.styles.Warning.Render("no route found") + "\n")
	}

	rows := make([][]string, 0, len(ws))
	for i, w := range ws {
		rows = append(rows, []string{strconv.Itoa(i + 1), meters(w.Distance), minutes(w.Duration), strings.Join(w.Spots, " -> ")})
	}

	return r.write(r.table([]string{"#", "Distance", "Duration", "Route"}, rows))
}

// Backbone prints a spanning tree of paths.
func (r *Renderer) Backbone(v portal.BackboneView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	rows := make([][]string, 0, len(v.Paths))
	for _, p := range v.Paths {
		rows = append(rows, []string{p.From, p.To, meters(p.Distance), minutes(p.Duration)})
	}
	total := meters(v.Weight)
	if v.Metric == "duration" {
		total = minutes(v.Weight)
	}

	return r.write(r.styles.Title.Render("Trail backbone ("+v.Method+")") + "\n" +
		r.table([]string{"From", "To", "Distance", "Duration"}, rows) +
		r.styles.Label.Render("Total "+v.Metric+": ") + total + "\n")
}

// Reach prints the spots reachable from a start spot.
func (r *Renderer) Reach(v portal.ReachView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	rows := make([][]string, 0, len(v.Spots))
	for _, h := range v.Spots {
		rows = append(rows, []string{h.Name, strconv.Itoa(h.Hops)})
	}

	return r.write(r.styles.Title.Render("Reachable from "+v.Start) + "\n" +
		r.table([]string{"Spot", "Stops"}, rows))
}

// Stats prints catalog counters.
func (r *Renderer) Stats(v portal.StatsView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	rows := [][]string{
		{"spots", strconv.Itoa(v.Spots)},
		{"paths", strconv.Itoa(v.Paths)},
		{"deleted", strconv.Itoa(v.Deleted)},
		{"slots", strconv.Itoa(v.Slots)},
		{"revision", strconv.FormatUint(v.Revision, 10)},
	}

	return r.write(r.table([]string{"Metric", "Value"}, rows))
}

// Trails prints the disjoint-route count and the critical paths.
func (r *Renderer) Trails(v portal.TrailsView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s -> %s: %d independent trail(s)\n",
		r.styles.Title.Render("Trails"), v.From, v.To, v.Count)
	if v.Count == 0 {
		b.WriteString(r.styles.Muted.Render("no route found") + "\n")
		return r.write(b.String())
	}
	if v.Bottleneck {
		b.WriteString(r.styles.Warning.Render("bottleneck: closing one path cuts this route") + "\n")
	}
	rows := make([][]string, 0, len(v.Critical))
	for _, p := range v.Critical {
		rows = append(rows, []string{p.From, p.To, meters(p.Distance), minutes(p.Duration)})
	}
	b.WriteString(r.table([]string{"Critical from", "To", "Distance", "Duration"}, rows))

	return r.write(b.String())
}

// Chart prints the all-pairs chart as a grid; unreachable pairs show "-".
func (r *Renderer) Chart(v portal.ChartView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}
	if len(v.Spots) == 0 {
		return r.write(r.styles.Muted.Render("no spots") + "\n")
	}

	unit := meters
	if v.Metric == "duration" {
		unit = minutes
	}
	headers := append([]string{""}, v.Spots...)
	rows := make([][]string, 0, len(v.Rows))
	for i, row := range v.Rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, v.Spots[i])
		for _, w := range row {
			if w < 0 {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, unit(w))
		}
		rows = append(rows, cells)
	}

	return r.write(r.table(headers, rows))
}

// Import summarises a grid import.
func (r *Renderer) Import(v portal.ImportView) error {
	if r.format == FormatJSON {
		return r.json(v)
	}

	rows := [][]string{
		{"spots", strconv.Itoa(v.Spots)},
		{"paths", strconv.Itoa(v.Paths)},
		{"islands", strconv.Itoa(v.Islands)},
	}

	return r.write(r.table([]string{"Imported", "Count"}, rows))
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if r.format == FormatJSON {
		return r.json(map[string]string{"status": "ok", "message": msg})
	}

	return r.write(r.styles.Success.Render("✓ ") + msg + "\n")
}

// Error prints err as a failure line.
func (r *Renderer) Error(err error) error {
	if r.format == FormatJSON {
		return r.json(map[string]string{"error": err.Error()})
	}

	return r.write(r.styles.Failure.Render("✗ ") + err.Error() + "\n")
}

func (r *Renderer) route(v portal.RouteView) string {
	if !v.Reachable {
		return r.styles.Warning.Render("unreachable") + r.styles.Muted.Render(" (metric: "+v.Metric+")")
	}

	weight := meters(v.Weight)
	if v.Metric == "duration" {
		weight = minutes(v.Weight)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(v.Spots, " -> "),
		r.styles.Label.Render("Total "+v.Metric+": ")+weight,
	)

	return r.styles.Route.Render(body)
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}

			return r.styles.Cell
		})

	return t.String() + "\n"
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)

	return err
}

func meters(n int64) string  { return strconv.FormatInt(n, 10) + " m" }
func minutes(n int64) string { return strconv.FormatInt(n, 10) + " min" }
