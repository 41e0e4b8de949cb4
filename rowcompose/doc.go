// Package rowcompose emits, for a pair of adjacent row stitch counts
// (prev, target), the exact sequence of stitch kinds that consumes every
// stitch of the previous row and produces exactly the target row's
// count. See ComposeRow for the placement rule and the verified
// post-condition.
package rowcompose
