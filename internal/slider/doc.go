// Package slider implements a headless range-slider controller: value math,
// pointer geometry, the controlled/uncontrolled state machine and the derived
// presentation state that renderers draw from.
//
// A Controller owns no drawing surface. Renderers attach a TrackElement and a
// HandleElement to its slots, forward pointer, key and focus events, and read
// Presentation back (or Subscribe to it).
package slider
