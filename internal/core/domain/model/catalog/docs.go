// Package catalog holds the cookie catalog as seen by the order core: products with
// a display flavor (sabor), a sale price and a production cost. The core only reads
// products; creation and updates are plain record upserts.
package catalog
