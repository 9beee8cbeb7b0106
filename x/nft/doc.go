/*
Package nft implements a registry of unique, transferable tokens.

Each token is identified by a client chosen string and owned by exactly
one address at a time. The owner can delegate transfer rights in two
ways. A per token approval names a single address that may transfer or
burn that one token. An operator grant gives an address transfer rights
over every token of the granting owner, optionally until a given block
height.

Tokens are created by the minter address declared in the package
configuration. A burned token identifier is retired forever and cannot
be issued again.
*/
package nft
