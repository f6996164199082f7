// Package emd computes the first Wasserstein distance (Earth-Mover's
// distance) between two one-dimensional empirical distributions.
//
// 🚀 What is it?
//
//	Given two sets of real values u and v, each value carrying equal
//	weight within its set, the distance is the minimal "work" needed to
//	morph one empirical distribution into the other:
//
//	    W1(u, v) = ∫ |U(t) - V(t)| dt
//
//	where U and V are the empirical cumulative distribution functions.
//
// Algorithm Outline:
//  1. Sort copies of u and v ascending.
//  2. Merge both value sets into one ascending sequence; walk its
//     consecutive gaps.
//  3. On each gap, the CDFs are constant; accumulate
//     |U - V| × gap width via binary search ranks.
//
// Complexity: O((n+m)·log(n+m)) time, O(n+m) space.
//
// The sets may differ in length; equal-length inputs reduce to the mean
// absolute difference of the two sorted sequences.
package emd
