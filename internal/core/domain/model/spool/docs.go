// Package spool implements the filament ledger: the Spool aggregate, its
// reservations, and the archival waste history.
//
// A spool tracks three weights. Total weight is what the spool held when it
// entered inventory. Remaining weight is what is physically left. Reserved
// weight is soft-held by open orders. The aggregate enforces
//
//	0 <= reserved <= remaining <= total
//
// on every mutation. Reserving filament raises the reserved weight only;
// committing a reservation deducts from both reserved and remaining;
// returning a reservation lowers reserved and leaves remaining intact. Grams
// are therefore conserved across any sequence of reserve, commit and return
// operations, with Restock as the single explicit exception.
//
// Spools are archived, never deleted. Archiving emits a write-once
// WasteRecord capturing the unusable leftover for the filament history log.
package spool
