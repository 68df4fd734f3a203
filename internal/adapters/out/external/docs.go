// Package external mocks the three third-party delivery platforms. Each
// platform shares one Service implementation parameterized by a constant
// profile (id prefix, restaurant id, fee schedule, delivery estimate).
// Nothing here performs network I/O.
package external
