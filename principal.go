package main

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/minio/sha256-simd"
)

// Crockford base32 alphabet used by c32check addresses.
const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var c32Values = func() [128]int8 {
	var tbl [128]int8
	for i := range tbl {
		tbl[i] = -1
	}
	for i, ch := range c32Alphabet {
		tbl[ch] = int8(i)
	}
	return tbl
}()

// clarityNamePattern matches contract and asset names: a letter followed
// by letters, digits, or a small set of punctuation, at most 128 chars.
var clarityNamePattern = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9]|[-_!?+<>=/*])*$`)

func validClarityName(s string) bool {
	return len(s) >= 1 && len(s) <= 128 && clarityNamePattern.MatchString(s)
}

// StandardPrincipal is a checksum-verified standard account address.
type StandardPrincipal struct {
	Version byte
	Hash160 [20]byte
}

// String renders the principal in c32check form ("S" + version char +
// payload), the inverse of parseStandardPrincipal.
func (p StandardPrincipal) String() string {
	return "S" + string(c32Alphabet[p.Version]) + c32EncodeFixed(p.checksummed())
}

func (p StandardPrincipal) checksummed() []byte {
	out := make([]byte, 0, 24)
	out = append(out, p.Hash160[:]...)
	return append(out, c32Checksum(p.Version, p.Hash160[:])...)
}

// c32Checksum is the first four bytes of a double SHA-256 over the
// version byte followed by the hash bytes.
func c32Checksum(version byte, hash []byte) []byte {
	first := sha256.Sum256(append([]byte{version}, hash...))
	second := sha256.Sum256(first[:])
	return second[:4]
}

// c32Normalize uppercases and maps the homoglyphs O->0, L->1, I->1.
func c32Normalize(s string) string {
	up := strings.ToUpper(s)
	return strings.NewReplacer("O", "0", "L", "1", "I", "1").Replace(up)
}

// c32DecodeFixed decodes a c32 string into exactly n bytes: leading '0'
// characters contribute leading zero bytes, the rest decodes as a
// big-endian base-32 integer.
func c32DecodeFixed(s string, n int) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '0' {
		zeros++
	}
	acc := new(big.Int)
	for _, ch := range s[zeros:] {
		if ch >= 128 || c32Values[ch] < 0 {
			return nil, fmt.Errorf("invalid c32 character %q", ch)
		}
		acc.Mul(acc, big.NewInt(32))
		acc.Add(acc, big.NewInt(int64(c32Values[ch])))
	}
	body := acc.Bytes()
	if zeros+len(body) != n {
		return nil, fmt.Errorf("c32 payload decodes to %d bytes, want %d", zeros+len(body), n)
	}
	out := make([]byte, n)
	copy(out[zeros:], body)
	return out, nil
}

// c32EncodeFixed encodes bytes as c32, preserving leading zero bytes as
// '0' characters.
func c32EncodeFixed(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	acc := new(big.Int).SetBytes(data[zeros:])
	var digits []byte
	thirtyTwo := big.NewInt(32)
	mod := new(big.Int)
	for acc.Sign() > 0 {
		acc.DivMod(acc, thirtyTwo, mod)
		digits = append(digits, c32Alphabet[mod.Int64()])
	}
	var sb strings.Builder
	for i := 0; i < zeros; i++ {
		sb.WriteByte('0')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// parseStandardPrincipal decodes and checksum-verifies a c32check
// address such as "SP000000000000000000002Q6VF78".
func parseStandardPrincipal(s string) (StandardPrincipal, error) {
	norm := c32Normalize(s)
	if len(norm) < 3 || norm[0] != 'S' {
		return StandardPrincipal{}, fmt.Errorf("invalid principal %q: must start with 'S'", s)
	}
	if norm[1] >= 128 || c32Values[norm[1]] < 0 {
		return StandardPrincipal{}, fmt.Errorf("invalid principal %q: bad version character", s)
	}
	version := c32Values[norm[1]]
	payload, err := c32DecodeFixed(norm[2:], 24)
	if err != nil {
		return StandardPrincipal{}, fmt.Errorf("invalid principal %q: %w", s, err)
	}
	var p StandardPrincipal
	p.Version = byte(version)
	copy(p.Hash160[:], payload[:20])
	want := c32Checksum(p.Version, p.Hash160[:])
	got := payload[20:]
	for i := range want {
		if want[i] != got[i] {
			return StandardPrincipal{}, fmt.Errorf("invalid principal %q: checksum mismatch", s)
		}
	}
	return p, nil
}

// QualifiedContractIdentifier names a contract by its issuing principal
// and contract name, e.g. "SP000000000000000000002Q6VF78.pox".
type QualifiedContractIdentifier struct {
	Issuer StandardPrincipal
	Name   string
}

func (q QualifiedContractIdentifier) String() string {
	return q.Issuer.String() + "." + q.Name
}

func parseContractIdentifier(s string) (QualifiedContractIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return QualifiedContractIdentifier{}, fmt.Errorf("invalid contract identifier %q: want issuer.name", s)
	}
	issuer, err := parseStandardPrincipal(parts[0])
	if err != nil {
		return QualifiedContractIdentifier{}, err
	}
	if !validClarityName(parts[1]) {
		return QualifiedContractIdentifier{}, fmt.Errorf("invalid contract identifier %q: bad contract name", s)
	}
	return QualifiedContractIdentifier{Issuer: issuer, Name: parts[1]}, nil
}

// AssetIdentifier names one asset class defined by a contract.
type AssetIdentifier struct {
	Contract  QualifiedContractIdentifier
	AssetName string
}

func (a AssetIdentifier) String() string {
	return a.Contract.String() + "::" + a.AssetName
}
