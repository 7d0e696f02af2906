// Command trackctl post-processes object tracks: it fills short gaps,
// smooths trajectories tracklet by tracklet, clips frame ranges, plots
// channels and keeps track sets in a SQLite store.
//
// Tracks are read from and written to .json or .csv files (see package trackio).
package main
