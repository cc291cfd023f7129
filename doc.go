// Package rgbpca performs a Karhunen–Loève (principal component) analysis
// of an image's colours.
//
// Every pixel is one observation of the random vector (R, G, B). The
// package estimates the mean and population covariance of those samples,
// diagonalizes the covariance with a symmetric eigensolver and then, for
// each of the three eigen-axes, rebuilds the image with that axis removed:
//
//	P_k = V · D_k · Vᵀ          (D_k = identity with entry k zeroed)
//	out = clamp(P_k · (x − μ) + μ, 0, 255)
//
// The numeric core (SamplePixels, EstimateMoments, Decompose,
// ReconstructAll) is pure; Analyzer wraps it with image decoding, the
// console report and writing of the three result files.
package rgbpca
