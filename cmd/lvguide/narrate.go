package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvguide/config"
	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/directions"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/routemap"
)

const (
	formatText   = "text"
	formatJSON   = "json"
	formatPretty = "pretty"
)

func newNarrateCmd(c *cli) *cobra.Command {
	var (
		format string
		legs   []string
	)
	cmd := &cobra.Command{
		Use:   "narrate <fixture.yaml>",
		Short: "Print the guidance of every leg of a fixture",
		Long: `Builds the fixture map, routes each leg (or the --legs given) and prints
maneuvers with their instructions.

Formats:
  - text:   one numbered line per maneuver with its verbal texts
  - json:   the maneuver and instruction records
  - pretty: a Go-syntax dump of the assembled directions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatPretty:
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			cfg, err := config.Load(c.configPath, c.envFiles...)
			if err != nil {
				return err
			}
			a, err := directions.FromConfig(cfg, directions.WithLogger(c.logger))
			if err != nil {
				return err
			}

			f, err := routemap.LoadFixture(args[0])
			if err != nil {
				return err
			}
			if len(legs) > 0 {
				f.Legs = legs
			}
			edges, err := f.LegEdges()
			if err != nil {
				return err
			}
			route, err := a.BuildRoute(edges...)
			if err != nil {
				return err
			}
			c.logger.Info("route assembled",
				zap.String("fixture", f.Name),
				zap.Int("legs", len(route.Legs)),
				zap.Float64("length_m", route.Length))

			return write(cmd.OutOrStdout(), format, f.Legs, route)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or pretty")
	cmd.Flags().StringSliceVar(&legs, "legs", nil, "node paths or waypoints (A>D) to route instead of the fixture legs")

	return cmd
}

// maneuverView is the serialised form of one maneuver.
type maneuverView struct {
	Kind        string                `json:"type"`
	BeginEdge   int                   `json:"begin_edge"`
	EndEdge     int                   `json:"end_edge"`
	StreetNames []string              `json:"street_names,omitempty"`
	Signs       map[string][]string   `json:"sign,omitempty"`
	Length      float64               `json:"length_m"`
	Time        int                   `json:"time_s"`
	Narrative   narrative.Instruction `json:"narrative"`
}

type legView struct {
	Path      string         `json:"path"`
	Length    float64        `json:"length_m"`
	Time      int            `json:"time_s"`
	Maneuvers []maneuverView `json:"maneuvers"`
}

func views(paths []string, route directions.Route) []legView {
	out := make([]legView, len(route.Legs))
	for i, leg := range route.Legs {
		lv := legView{Path: paths[i], Length: leg.Length, Time: leg.Time}
		for j, m := range leg.Maneuvers {
			mv := maneuverView{
				Kind:        m.Kind.String(),
				BeginEdge:   m.Begin,
				EndEdge:     m.End,
				StreetNames: m.StreetNames.Texts(),
				Length:      m.Length,
				Time:        m.Time,
				Narrative:   leg.Instructions[j],
			}
			for c := 0; c < core.SignCategoryCount; c++ {
				if l := m.Signs[c]; len(l) > 0 {
					if mv.Signs == nil {
						mv.Signs = map[string][]string{}
					}
					mv.Signs[core.SignCategory(c).String()] = l.Texts()
				}
			}
			lv.Maneuvers = append(lv.Maneuvers, mv)
		}
		out[i] = lv
	}

	return out
}

func write(w io.Writer, format string, paths []string, route directions.Route) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(views(paths, route))
	case formatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", route)
		return err
	}

	for i, leg := range route.Legs {
		fmt.Fprintf(w, "leg %s: %.0f m, %d s\n", paths[i], leg.Length, leg.Time)
		for j, in := range leg.Instructions {
			fmt.Fprintf(w, "%2d. %s\n", j+1, in.Instruction)
			for _, line := range []struct{ label, text string }{
				{"succinct", in.VerbalSuccinct},
				{"alert", in.VerbalAlert},
				{"pre", in.VerbalPre},
				{"post", in.VerbalPost},
			} {
				if line.text != "" {
					fmt.Fprintf(w, "    %-8s %s\n", line.label+":", line.text)
				}
			}
		}
	}

	return nil
}
