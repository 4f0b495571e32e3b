// Package cart implements the shopping cart: a mutable map of product id to quantity
// that prices itself against a catalog and turns into a checkout payload.
//
// A Cart is owned by a single caller and is not safe for concurrent use.
package cart
