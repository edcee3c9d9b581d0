// Package prob implements the degree-of-controllability probability
// estimator of spec.md §4.6: given one or more lifted conflicts, it
// estimates the probability that the sum of the conflict's contingent
// edges' independently-drawn uniform durations lies within the cycle's
// available slack, approximated by a normal CDF over the exact uniform-sum
// moments.
package prob
