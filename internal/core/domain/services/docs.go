// Package services holds domain services that coordinate several aggregates:
// the delivery route allocator and the sales fact projection used for reporting.
package services
