// Package order implements the print order aggregate: the order sheet, its
// line items, and the lifecycle state machine.
//
// An order references spools, reservations, printers and its customer by ID
// only. Filament quantities are owned by the spool aggregate; the order
// records which reservation backs which item so the application layer can
// commit or return holds as the order moves through its lifecycle.
package order
