/*
Package bfvcore provides the arithmetic core of a BFV-style leveled homomorphic
encryption scheme: negacyclic ring arithmetic over Z_q[X]/(X^N+1) through a
Number-Theoretic Transform, exact fixed-width 128/192-bit integer arithmetic,
and the ciphertext-multiplication operator producing degree-2 product
ciphertexts rescaled from the plaintext modulus t to the ciphertext modulus q.

Key generation, encryption, decryption, complete relinearization and any
serving layer are external to this module and consume it through the ring
element and ciphertext types of the ring and bfv packages.
*/
package bfvcore
