package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/scenefile"
	"github.com/gogpu/canvas/internal/ui"
	"github.com/gogpu/canvas/layout"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <scene.yaml>",
		Short: "Lay out a scene and print every object's geometry",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("deep", false, "Relayout every root group and its nested groups before printing")
	cmd.Flags().String("strategy", "", "Strategy used for the --deep relayout of root groups (one-shot)")
	return cmd
}

type objectReport struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Depth  int             `json:"depth"`
	Left   float64         `json:"left"`
	Top    float64         `json:"top"`
	Width  float64         `json:"width"`
	Height float64         `json:"height"`
	Angle  float64         `json:"angle"`
	Center [2]float64      `json:"center"`
	Layout json.RawMessage `json:"layout,omitempty"`
}

type sceneReport struct {
	Name    string         `json:"name"`
	Objects []objectReport `json:"objects"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	deep, _ := cmd.Flags().GetBool("deep")
	tag, _ := cmd.Flags().GetString("strategy")

	scene, err := scenefile.Load(args[0])
	if err != nil {
		return err
	}

	if deep {
		var override layout.Strategy
		if tag != "" {
			if override, err = layout.NewStrategy(tag); err != nil {
				return err
			}
		}
		for _, obj := range scene.Objects {
			if g, ok := obj.(*canvas.Group); ok {
				g.TriggerLayout(layout.ImperativeOptions{Strategy: override, Deep: true})
			}
		}
	} else if tag != "" {
		return fmt.Errorf("--strategy requires --deep")
	}

	report, err := buildReport(scene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	name := report.Name
	if name == "" {
		name = args[0]
	}
	_, _ = fmt.Fprintln(out, ui.Title("Scene: "+name))
	tbl := ui.NewTable(out, "ID", "TYPE", "LEFT", "TOP", "WIDTH", "HEIGHT", "ANGLE", "STRATEGY")
	for _, o := range report.Objects {
		strategy := "-"
		if o.Layout != nil {
			var m layout.Manager
			if err := json.Unmarshal(o.Layout, &m); err == nil {
				strategy = m.Strategy().Type()
			}
		}
		tbl.Row(strings.Repeat("  ", o.Depth)+o.ID, o.Type, o.Left, o.Top, o.Width, o.Height, o.Angle, strategy)
	}
	return tbl.Flush()
}

func buildReport(scene *scenefile.Scene) (sceneReport, error) {
	report := sceneReport{Name: scene.Name, Objects: []objectReport{}}
	var walkErr error
	scene.Walk(func(obj canvas.Shape, depth int) {
		if walkErr != nil {
			return
		}
		r, err := describe(scene.ID(obj), obj, depth)
		if err != nil {
			walkErr = err
			return
		}
		report.Objects = append(report.Objects, r)
	})
	return report, walkErr
}

// placed is implemented by every canvas shape through the embedded
// canvas.Object.
type placed interface {
	Angle() float64
	CenterPoint() geom.Point
}

func describe(id string, obj canvas.Shape, depth int) (objectReport, error) {
	pos, size := obj.Position(), obj.Dimensions()
	r := objectReport{
		ID:     id,
		Depth:  depth,
		Left:   pos.X,
		Top:    pos.Y,
		Width:  size.X,
		Height: size.Y,
	}
	if p, ok := obj.(placed); ok {
		c := p.CenterPoint()
		r.Angle = p.Angle()
		r.Center = [2]float64{c.X, c.Y}
	}

	switch o := obj.(type) {
	case *canvas.Rect:
		r.Type = scenefile.TypeRect
	case *canvas.Text:
		r.Type = scenefile.TypeText
	case *canvas.Group:
		r.Type = scenefile.TypeGroup
		data, err := o.LayoutJSON()
		if err != nil {
			return r, err
		}
		r.Layout = data
	}
	return r, nil
}
