package config

import "solana-declare-go/pkg/pubkey"

// Well-known Solana program addresses. PDA declarations may reference
// these by alias instead of repeating the base58 literal.
var (
	// System program
	SystemProgramID = pubkey.MustFromBase58("11111111111111111111111111111111")

	// Token program
	TokenProgramID = pubkey.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	// Associated Token program
	AssociatedTokenProgramID = pubkey.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

	// Rent sysvar
	RentProgramID = pubkey.MustFromBase58("SysvarRent111111111111111111111111111111111")

	// Metaplex token metadata program
	TokenMetadataProgramID = pubkey.MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

	// pump.fun program (verified)
	PumpFunProgramID = pubkey.MustFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
)

// programAliases maps manifest-friendly names to program IDs
var programAliases = map[string]pubkey.PublicKey{
	"system":           SystemProgramID,
	"token":            TokenProgramID,
	"associated-token": AssociatedTokenProgramID,
	"rent":             RentProgramID,
	"token-metadata":   TokenMetadataProgramID,
	"pump-fun":         PumpFunProgramID,
}

// ResolveProgramAlias returns the base58 address for a known alias.
// Unknown names are left to the base58 decoder to accept or reject.
func ResolveProgramAlias(name string) (string, bool) {
	key, ok := programAliases[name]
	if !ok {
		return "", false
	}
	return key.String(), true
}
