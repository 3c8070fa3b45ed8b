// Package chroma is a scalar colorimetry library for Go.
//
// # Overview
//
// chroma represents colors in the standardized CIE and derived colorspaces,
// converts between them, measures perceptual color difference, and selects
// sets of maximally distinguishable colors. It is aimed at graphics and
// data-visualization code that needs numerically correct, perceptually
// meaningful color math instead of ad-hoc RGB arithmetic.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	// Convert sRGB red to CIE L*a*b*
//	lab := chroma.ToLab(chroma.RGB{R: 1})
//
//	// Perceptual difference between two colors (CIEDE2000)
//	d := chroma.ColorDiff(chroma.Red, chroma.Blue, chroma.DE2000())
//
//	// Eight colors that are easy to tell apart
//	colors, err := chroma.DistinguishableColors(8, nil)
//
// # Colorspaces
//
// Supported spaces: RGB (sRGB, gamma-encoded), HSV, HSL, RGB24, CIE XYZ,
// xyY, L*a*b*, L*u*v*, LCHab, LCHuv, the DIN99/DIN99d/DIN99o family and
// CAT02 LMS. CIE XYZ is the pivot: every conversion between two
// non-adjacent spaces routes through it. Any user-defined type joins the
// conversion graph by implementing the Color interface.
//
// Values are plain immutable structs and are never clamped on
// construction; out-of-gamut inputs pass through the formulas and produce
// mathematically valid out-of-gamut results. Every function in this
// package is a pure function of its inputs and is safe for concurrent use.
//
// # White Points
//
// L*a*b*, L*u*v* and chromatic adaptation are defined relative to a
// reference white, defaulting to CIE Standard Illuminant D65. The
// *WhiteRef function variants take an explicit white point.
package chroma

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
