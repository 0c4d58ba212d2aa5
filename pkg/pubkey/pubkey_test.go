package pubkey

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/mr-tron/base58"
)

// TestFromBase58_RoundTrip verifies decode(encode(k)) == k for random
// 32-byte keys
func TestFromBase58_RoundTrip(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 64; i++ {
		raw := make([]byte, Length)
		_, err := rand.Read(raw)
		is.NoErr(err)

		key, err := FromBase58(base58.Encode(raw))
		is.NoErr(err)
		is.Equal(key.Bytes(), raw)
		is.Equal(key.String(), base58.Encode(raw))
	}
}

// TestFromBase58_SystemProgram verifies the all-ones string decodes to
// the zero key
func TestFromBase58_SystemProgram(t *testing.T) {
	is := is.New(t)

	key, err := FromBase58("11111111111111111111111111111111")
	is.NoErr(err)
	is.True(key.IsZero())
	is.Equal(key, PublicKey{})
	is.Equal(key.String(), "11111111111111111111111111111111")
}

// TestFromBase58_WrongLength verifies short and long inputs are
// rejected with the actual decoded length reported
func TestFromBase58_WrongLength(t *testing.T) {
	is := is.New(t)

	// "1" decodes to a single zero byte
	_, err := FromBase58("1")
	var wl *WrongLengthError
	is.True(errors.As(err, &wl))
	is.Equal(wl.Len, 1)

	// 33 bytes decode cleanly but are still rejected
	long := make([]byte, 33)
	long[0] = 0x7f
	_, err = FromBase58(base58.Encode(long))
	wl = nil
	is.True(errors.As(err, &wl))
	is.Equal(wl.Len, 33)
}

// TestFromBase58_InvalidEncoding verifies characters outside the
// base58 alphabet are rejected
func TestFromBase58_InvalidEncoding(t *testing.T) {
	is := is.New(t)

	for _, input := range []string{
		"O1111111111111111111111111111111",
		"0xdeadbeef",
		"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII",
		"llllllllllllllllllllllllllllllll",
		"not base58 at all!",
	} {
		_, err := FromBase58(input)
		is.True(errors.Is(err, ErrInvalidEncoding))
	}
}

func TestFromBytes(t *testing.T) {
	is := is.New(t)

	raw := make([]byte, Length)
	_, err := rand.Read(raw)
	is.NoErr(err)

	key, err := FromBytes(raw)
	is.NoErr(err)
	is.Equal(key.Bytes(), raw)

	_, err = FromBytes(raw[:31])
	var wl *WrongLengthError
	is.True(errors.As(err, &wl))
	is.Equal(wl.Len, 31)
}

func TestEquals(t *testing.T) {
	is := is.New(t)

	a := MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	b := MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	c := MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

	is.True(a.Equals(b))
	is.True(!a.Equals(c))
	is.True(!a.IsZero())
}

// TestMustFromBase58_Panics verifies the must-variant panics on bad
// input instead of returning a zero key
func TestMustFromBase58_Panics(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.True(recover() != nil)
	}()
	MustFromBase58("1")
}
