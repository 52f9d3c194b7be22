// Package render turns a board's visible subgraph into images.
//
// The board core knows nothing about pixels: it exposes VisibleNodes and
// VisibleEdges, and this package consumes them. [ToDOT] produces a Graphviz
// DOT description of the visible graph, [SVG] rasterizes it with
// goccy/go-graphviz, and [PNG] converts the SVG with rsvg-convert.
package render
