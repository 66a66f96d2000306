package cfg

import "image/color"

// Defaults for a cleaning run, in mm. The CLI flags start from these.
var MinLengthMM = 2.0
var TargetDimensionMM = 100.0
var StrokeWidthMM = 1.5

// FlattenMaxStep is the longest chord, in mm, used when curves and arcs are
// turned into polylines for the exporters.
var FlattenMaxStep = 0.25

// SimplifyEpsilon is the Douglas-Peucker tolerance, in mm, applied to
// flattened polylines before G-code is written.
var SimplifyEpsilon = 0.02

// Plotter settings for G-code output. Z heights and feeds are machine units
// (mm and mm/min).
var XYTravelRate = 10000.0
var XYFeedRate = 1500.0
var ZFeedRate = 1500.0
var PenUpZ = 2.0
var PenDownZ = -2.0

// PreviewSizePX is the length of the PNG preview's longer side. The other
// side follows the drawing's aspect ratio.
var PreviewSizePX = 800

var BackgroundColor = color.White
