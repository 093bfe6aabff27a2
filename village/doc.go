// Package village builds the static winter village around the fireworks:
// houses, trees, street lights and the snowy ground as voxel instances, and
// the chimneys that launch rockets on randomised timers.
package village
