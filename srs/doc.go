// Package srs resolves spatial reference systems from EPSG codes, well-known
// text, or a small set of named presets.
//
// What:
//
//   - SRS is a plain value describing a reference system: EPSG code, preset
//     name, WKT, and a proj4 string.
//   - LatLon (EPSG:4326) and EuropeM (EPSG:3035) ship as presets.
//   - FromEPSG / FromName look systems up in a process-wide registry;
//     Register adds custom ones.
//   - Resolve normalizes the textual forms ("EPSG:4326", "4326", "latlon",
//     or a raw GEOGCS/PROJCS WKT string) into an SRS.
//
// Why:
//
//   - Raster metadata carries its reference system in whichever of these
//     shapes the producing tool preferred; consumers want one value type.
//
// The package performs no projection math and wraps no native library; it is
// a lookup and normalization layer only. All operations are safe for
// concurrent use.
//
// Errors:
//
//   - ErrUnknownSRS: the source matches no registered system.
//   - ErrInvalidWKT: a WKT string lacks a recognized root node.
package srs
