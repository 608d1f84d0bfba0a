// Package indexed provides a triple-store backend that keeps statements in
// ordered B-tree indexes (SPO, POS and OSP for graphs; GSPO, SPOG, POSG and
// OSPG for datasets). A wildcard query is answered by a range scan over the
// index whose leading positions it binds.
//
// Streams detect mutation of their container and stop with
// rdf.ErrConcurrentModification. Containers are not safe for concurrent use.
package indexed
