// Package rowmap implements RowMapper: assigns row indices to sample
// indices by gauge, for the profile (amigurumi-of-revolution) pipeline.
package rowmap
