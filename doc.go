// Package gridscale resamples 2D grids of numeric samples by integer
// factors and moves them in and out of simple geospatial containers.
//
// 🚀 What is gridscale?
//
//	A small, pure-Go toolkit for grid resampling workflows where input and
//	output resolutions are integer multiples of one another:
//		• rescale/ — the core: block-replicate upscaling and block-average
//		  downscaling with strict or lenient divisibility handling
//		• raster/  — ESRI ASCII Grid codec plus a georeferenced rescale binding
//		• srs/     — spatial-reference lookup from EPSG codes, WKT, or presets
//		• cmd/gridscale — CLI that re-exports a raster file at a new resolution
//
// ✨ Why choose gridscale?
//
//   - Deterministic – pure functions, fresh output buffers, no global state
//   - Honest averaging – lenient downscales correct their boundary cells so
//     zero padding never dilutes an edge value
//   - Pure Go – no cgo, no native geospatial library
//
// Quick ASCII example:
//
//	| 1 2 |   scaled by 2   | 1 1 2 2 |
//	| 3 4 |  ───────────▶   | 1 1 2 2 |
//	                        | 3 3 4 4 |
//	                        | 3 3 4 4 |
//
// and the inverse, scaled by -2, averages each 2×2 block back to one cell.
//
//	go get github.com/terralab/gridscale
package gridscale
