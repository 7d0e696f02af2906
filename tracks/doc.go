// Package tracks holds per-object trajectories produced by an external tracker
// and the temporal post-processing applied to them: segmentation into tracklets,
// gap interpolation, per-tracklet smoothing and clipping.
//
// Everything here is in-memory and synchronous. Nothing logs.
package tracks
