// Package name converts between name strings and their 64-bit packed form.
//
// A name is at most 13 characters over the alphabet ".12345abcdefghijklmnopqrstuvwxyz".
// Each of the first 12 characters is stored as a 5-bit symbol starting at the
// most significant bit; the optional 13th character occupies the low 4 bits.
//
//	n, err := name.FromString("eosio.token") // 6138663591592764928
//	n.String()                              // "eosio.token"
//
// Conversion to string is total: every uint64 has exactly one canonical string,
// with trailing '.' characters removed.
package name
