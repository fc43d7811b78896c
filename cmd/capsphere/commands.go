// SPDX-License-Identifier: MIT
// Package: capsphere/cmd/capsphere
//
// commands.go: the layout, graph, mesh, summary and font subcommands.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/constellation"
	"github.com/katalvlaran/capsphere/engine"
)

// DefaultCount is the demo set size when --count is not given.
const DefaultCount = 12

// layoutRow is one node of the layout command.
type layoutRow struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Magnitude   float64 `json:"magnitude" yaml:"magnitude"`
	Inclination float64 `json:"inclination" yaml:"inclination"`
	Azimuth     float64 `json:"azimuth" yaml:"azimuth"`
	Surface     r3.Vec  `json:"surface" yaml:"surface"`
	Tip         r3.Vec  `json:"tip" yaml:"tip"`
}

func newLayoutCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print angles, surface and tip positions of the demo set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := demoSet(count, a.cfg.SphereGeometry())
			rows := layoutRows(set)
			if a.format != formatText {
				return encode(cmd.OutOrStdout(), a.format, rows)
			}
			w := cmd.OutOrStdout()
			for _, r := range rows {
				fmt.Fprintf(w, "%-7s φ=%.4f θ=%.4f tip=(%.3f, %.3f, %.3f)\n",
					r.ID, r.Inclination, r.Azimuth, r.Tip.X, r.Tip.Y, r.Tip.Z)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", DefaultCount, "number of demo capabilities")

	return cmd
}

func layoutRows(set *constellation.Set) []layoutRow {
	caps := set.Capabilities()
	angles := set.Angles()
	nodes := set.Nodes()
	surfaces := set.Surfaces()

	rows := make([]layoutRow, len(caps))
	for i, c := range caps {
		rows[i] = layoutRow{
			ID:          c.ID,
			Name:        c.Name,
			Magnitude:   c.Magnitude,
			Inclination: angles[i].Inclination,
			Azimuth:     angles[i].Azimuth,
			Surface:     surfaces[c.ID],
			Tip:         nodes[i].Position,
		}
	}

	return rows
}

// styleFlags are the per-command overrides of the configured style.
type styleFlags struct {
	count     int
	mode      string
	neighbors int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", DefaultCount, "number of demo capabilities")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "connection mode: none, hull or knn (default from config)")
	cmd.Flags().IntVarP(&f.neighbors, "neighbors", "k", 0, "k for knn mode (default from config)")
}

// scene resolves the style and runs the engine over the demo set.
func (f *styleFlags) scene(a *app) (*engine.Scene, error) {
	style, err := a.cfg.EngineStyle()
	if err != nil {
		return nil, err
	}
	if f.mode != "" {
		if style.Mode, err = connect.ParseMode(f.mode); err != nil {
			return nil, err
		}
	}
	if f.neighbors > 0 {
		style.Neighbors = f.neighbors
	}

	set := demoSet(f.count, a.cfg.SphereGeometry())
	return a.engine.Compute(set.Nodes(), style)
}

// graphReport is the output of the graph command.
type graphReport struct {
	Nodes      int           `json:"nodes" yaml:"nodes"`
	Euler      int           `json:"euler_characteristic" yaml:"euler_characteristic"`
	Components [][]string    `json:"components" yaml:"components"`
	Patches    [][]string    `json:"patches" yaml:"patches"`
	Path       []string      `json:"path,omitempty" yaml:"path,omitempty"`
	Around     []string      `json:"around,omitempty" yaml:"around,omitempty"`
	Graph      connect.Graph `json:"graph" yaml:"graph"`
}

func newGraphCmd(a *app) *cobra.Command {
	var (
		f      styleFlags
		path   []string
		around string
		hops   int
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the edges and faces of the demo set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(path) != 0 && len(path) != 2 {
				return fmt.Errorf("--path wants two IDs, got %d", len(path))
			}
			s, err := f.scene(a)
			if err != nil {
				return err
			}
			rep := graphReport{
				Nodes:      len(s.Nodes),
				Euler:      s.Graph.EulerCharacteristic(len(s.Nodes)),
				Components: s.Graph.Components(s.Nodes),
				Patches:    s.Graph.Patches(s.Nodes),
				Graph:      s.Graph,
			}
			if len(path) == 2 {
				if rep.Path, err = s.Graph.Path(s.Nodes, path[0], path[1]); err != nil {
					return err
				}
			}
			if around != "" {
				if rep.Around, err = s.Graph.Within(s.Nodes, around, hops); err != nil {
					return err
				}
			}
			if a.format != formatText {
				return encode(cmd.OutOrStdout(), a.format, rep)
			}
			w := cmd.OutOrStdout()
			for _, e := range s.Graph.Edges {
				fmt.Fprintf(w, "edge %s-%s\n", e.A, e.B)
			}
			for _, fc := range s.Graph.Faces {
				fmt.Fprintf(w, "face %s\n", strings.Join(fc.NodeIDs[:], "-"))
			}
			if rep.Path != nil {
				fmt.Fprintf(w, "path %s\n", strings.Join(rep.Path, "-"))
			}
			if rep.Around != nil {
				fmt.Fprintf(w, "around %s\n", strings.Join(rep.Around, " "))
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringSliceVar(&path, "path", nil, "two IDs a,b: print a fewest-hop route")
	cmd.Flags().StringVar(&around, "around", "", "print the IDs within --hops of this ID")
	cmd.Flags().IntVar(&hops, "hops", 1, "radius for --around")

	return cmd
}

// meshReport is the output of the mesh command.
type meshReport struct {
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Faces       int       `json:"faces" yaml:"faces"`
	Vertices    int       `json:"vertices" yaml:"vertices"`
	Triangles   int       `json:"triangles" yaml:"triangles"`
	Opaque      bool      `json:"opaque" yaml:"opaque"`
	Positions   []float32 `json:"positions,omitempty" yaml:"positions,omitempty"`
	Colors      []float32 `json:"colors,omitempty" yaml:"colors,omitempty"`
}

func newMeshCmd(a *app) *cobra.Command {
	var (
		f      styleFlags
		buffer bool
	)
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Print tessellation statistics (and optionally the vertex buffer)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.scene(a)
			if err != nil {
				return err
			}
			rep := meshReport{
				Fingerprint: fmt.Sprintf("%016x", s.Fingerprint),
				Faces:       len(s.Graph.Faces),
				Vertices:    s.Buffer.VertexCount(),
				Triangles:   s.Buffer.Triangles(),
				Opaque:      s.Buffer.Opaque,
			}
			if buffer {
				rep.Positions = s.Buffer.Positions
				rep.Colors = s.Buffer.Colors
			}
			if a.format != formatText {
				return encode(cmd.OutOrStdout(), a.format, rep)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fingerprint %s: %d faces, %d vertices, %d triangles, opaque=%t\n",
				rep.Fingerprint, rep.Faces, rep.Vertices, rep.Triangles, rep.Opaque)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&buffer, "buffer", false, "include positions and colors")

	return cmd
}

// summaryReport is the structured output of the summary command.
type summaryReport struct {
	Nodes      int      `json:"nodes" yaml:"nodes"`
	Edges      int      `json:"edges" yaml:"edges"`
	Faces      int      `json:"faces" yaml:"faces"`
	Euler      int      `json:"euler_characteristic" yaml:"euler_characteristic"`
	Components int      `json:"components" yaml:"components"`
	Patches    int      `json:"patches" yaml:"patches"`
	Vertices   int      `json:"vertices" yaml:"vertices"`
	Legend     []legend `json:"legend" yaml:"legend"`
}

type legend struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Color     string  `json:"color" yaml:"color"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func newSummaryCmd(a *app) *cobra.Command {
	var f styleFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print counts, the Euler characteristic and a colored legend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.scene(a)
			if err != nil {
				return err
			}
			set := demoSet(f.count, a.cfg.SphereGeometry())
			rep := summaryReport{
				Nodes:      len(s.Nodes),
				Edges:      len(s.Graph.Edges),
				Faces:      len(s.Graph.Faces),
				Euler:      s.Graph.EulerCharacteristic(len(s.Nodes)),
				Components: len(s.Graph.Components(s.Nodes)),
				Patches:    len(s.Graph.Patches(s.Nodes)),
				Vertices:   s.Buffer.VertexCount(),
			}
			for _, c := range set.Capabilities() {
				rep.Legend = append(rep.Legend, legend{ID: c.ID, Name: c.Name, Color: c.Color.Hex(), Magnitude: c.Magnitude})
			}
			if a.format != formatText {
				return encode(cmd.OutOrStdout(), a.format, rep)
			}

			var b strings.Builder
			b.WriteString(titleStyle.Render("capsphere") + "\n")
			fmt.Fprintf(&b, "nodes %d  edges %d  faces %d  V-E+F %d  components %d  patches %d  vertices %d\n",
				rep.Nodes, rep.Edges, rep.Faces, rep.Euler, rep.Components, rep.Patches, rep.Vertices)
			for _, l := range rep.Legend {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(l.Color)).Render("  ")
				fmt.Fprintf(&b, "%s %-16s %s\n", swatch, l.Name, dimStyle.Render(fmt.Sprintf("%.1f", l.Magnitude)))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	f.register(cmd)

	return cmd
}

// fontReport is the output of the font command.
type fontReport struct {
	Distance   float64  `json:"distance" yaml:"distance"`
	FontSize   float64  `json:"font_size" yaml:"font_size"`
	ScreenSize *float64 `json:"screen_size,omitempty" yaml:"screen_size,omitempty"`
}

func newFontCmd(a *app) *cobra.Command {
	var distance, base, minScreen float64
	cmd := &cobra.Command{
		Use:   "font",
		Short: "Print the distance-compensated label font size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("base") {
				base = a.cfg.Label.BaseSize
			}
			if !cmd.Flags().Changed("min") {
				minScreen = a.cfg.Label.MinScreenSize
			}
			sc := a.cfg.Scaler()
			size := sc.FontSize(distance, base, minScreen)
			rep := fontReport{Distance: distance, FontSize: size}
			if screen := sc.ScreenSize(size, distance); !math.IsInf(screen, 0) {
				rep.ScreenSize = &screen
			}
			if a.format != formatText {
				return encode(cmd.OutOrStdout(), a.format, rep)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", size)
			return err
		},
	}
	cmd.Flags().Float64VarP(&distance, "distance", "d", 10, "camera distance")
	cmd.Flags().Float64Var(&base, "base", 0, "base font size (default from config)")
	cmd.Flags().Float64Var(&minScreen, "min", 0, "minimum on-screen size (default from config)")

	return cmd
}
