// Package fxnode assembles effect nodes from data: a Descriptor lists an
// effect's parameters, and a Node binds those parameters and a bypass mixer
// to one external processor and its dry/wet gain elements.
//
// Built-in descriptors cover Apple's peak limiter and high-pass filter
// units; PeakLimiter and HighPassFilter add typed accessors on top. Node
// settings can be stored and restored as JSON presets.
package fxnode
