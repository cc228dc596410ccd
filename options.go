package ggchart

import "github.com/gogpu/ggchart/style"

// HandlerOption configures a SerieHandler during creation.
//
// Example:
//
//	h := ggchart.NewLineHandler(chart, s, ggchart.WithTitleFontSize(12))
type HandlerOption func(*handlerOptions)

// handlerOptions holds optional configuration for handler creation.
type handlerOptions struct {
	rootObjectName  string
	labelObjectName string
	titleObjectName string
	titleFontSize   float64
	titleSize       style.Vec2
}

// defaultHandlerOptions returns the default handler options.
func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		rootObjectName:  "serie",
		labelObjectName: "label",
		titleObjectName: "title",
		titleFontSize:   10,
		titleSize:       style.Vec2{X: 50, Y: 12},
	}
}

// WithLabelObjectName sets the prefix of label widget names and the name of
// the label root node. The default is "label".
func WithLabelObjectName(name string) HandlerOption {
	return func(o *handlerOptions) {
		if name != "" {
			o.labelObjectName = name
		}
	}
}

// WithRootObjectName sets the prefix of the serie root node name. The
// default is "serie", giving roots named "serie_<index>".
func WithRootObjectName(name string) HandlerOption {
	return func(o *handlerOptions) {
		if name != "" {
			o.rootObjectName = name
		}
	}
}

// WithTitleFontSize sets the font size of the serie title. The title box
// height follows as size+2.
func WithTitleFontSize(size float64) HandlerOption {
	return func(o *handlerOptions) {
		if size > 0 {
			o.titleFontSize = size
			o.titleSize.Y = size + 2
		}
	}
}
