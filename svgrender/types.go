package svgrender

import (
	"encoding/xml"
)

// svgDoc is the root <svg> element.
type svgDoc struct {
	XMLName xml.Name    `xml:"svg"`
	Xmlns   string      `xml:"xmlns,attr"`
	Width   int         `xml:"width,attr"`
	Height  int         `xml:"height,attr"`
	ViewBox string      `xml:"viewBox,attr"`
	Circles []svgCircle `xml:"circle"`
}

// svgCircle is a single filled stitch marker.
type svgCircle struct {
	Cx   float64 `xml:"cx,attr"`
	Cy   float64 `xml:"cy,attr"`
	R    float64 `xml:"r,attr"`
	Fill string  `xml:"fill,attr"`
}
