// Package soxfx runs effect processing through the SoX command-line tool.
//
// A Processor receives parameter writes like any external effect unit and
// translates the current settings into a SoX effect chain when a block is
// rendered. The sox binary must be installed and on PATH (or configured
// with WithSoxPath).
package soxfx
