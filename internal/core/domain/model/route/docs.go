// Package route models a delivery route: one courier (motoboy) carrying a batch of
// ready orders, whose cost is split evenly across them.
package route
