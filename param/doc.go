// Package param implements Parameterizer: least-squares conformal mapping
// (LSCM) of a disk-topology mesh onto the plane. Each triangle contributes
// a discrete Cauchy-Riemann constraint in a local orthonormal frame; the
// resulting sparse normal equations are solved by conjugate gradient.
package param
