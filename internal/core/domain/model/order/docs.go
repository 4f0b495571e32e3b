// Package order holds the Order aggregate and its lifecycle state machine.
//
// An order is placed in RECEBIDO and moves RECEBIDO -> EM_PREPARO -> PRONTO through
// kitchen actions, PRONTO -> EM_ROTA only when a delivery route picks it up, and
// EM_ROTA -> CONCLUIDO on delivery. EXTRAVIADO can be reached from every
// non-terminal status through a loss report. CONCLUIDO and EXTRAVIADO are terminal.
//
// Items snapshot the product sale price and production cost at creation, so later
// catalog edits never change what an order is worth or what a loss costs.
package order
