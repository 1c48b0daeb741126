// Package imageio loads and saves grayfx grids as image files.
//
// Decoding accepts PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Color images are reduced to one
// intensity channel with the ITU-R BT.601 luma weights
// (0.299R + 0.587G + 0.114B); gray images are taken as is.
//
// Encoding writes PNG, JPEG, GIF, BMP or TIFF, chosen by file extension.
// Preview scales a grid for display with nearest-neighbour sampling.
package imageio
