// Package filter builds the low-pass kernels used for supersampled
// anti-aliasing.
//
// A kernel is an n×n grid of sample offsets spread evenly across
// [-radius, radius] on both axes around a pixel center, with one weight per
// offset. Weights come from a separable Gaussian and are normalized so they
// sum to 1.
package filter
