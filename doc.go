// Package ggchart is the incremental rendering controller for chart series.
//
// # Overview
//
// A chart owns one handler per serie and calls [Handler.Update] once per
// frame. The handler inspects the serie's dirty flags in a fixed order and
// rebuilds only what went stale:
//
//  1. a deferred label content refresh ([Handler.RefreshLabelNextFrame])
//  2. a structural label rebuild (release the label pool, re-materialize)
//  3. a title rebuild
//  4. a "serie renamed" event for the legend and a chart repaint
//  5. a geometry repaint request for the serie
//
// Flags are cleared only after the rebuild they triggered has finished; a
// mutation that lands during a rebuild keeps its flag set for the next frame.
//
// # Quick Start
//
//	chart := container.New(container.WithBounds(style.Rect{W: 800, H: 600}))
//	s := series.New(0, "sales", series.TypeLine)
//	s.Label.Show = true
//	s.AddValue("mon", 10)
//	s.AddValue("tue", 20)
//	h := chart.AddSerie(s) // calls InitComponent
//
//	chart.Update()                 // once per frame
//	params := h.UpdateTooltipSerieParams(nil, ggchart.ParamQuery{DataIndex: 1})
//
// # Collaborators
//
// Drawing, the label widget pool, the theme and the legend are reached only
// through the [Chart] and [LabelPool] interfaces. The widget package provides
// the default pool and the container package a reference chart.
//
// # Concurrency
//
// Handlers are not safe for concurrent use. All calls for one chart must
// happen on the goroutine that ticks it.
package ggchart
