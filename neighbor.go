package main

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PeerAddress is a 16-byte peer address; IPv4 addresses are stored in
// their IPv4-mapped IPv6 form.
type PeerAddress [16]byte

func peerAddressFrom(addr netip.Addr) PeerAddress {
	return PeerAddress(addr.As16())
}

func (a PeerAddress) String() string {
	return netip.AddrFrom16(a).String()
}

// NeighborKey identifies a peer on the wire.
type NeighborKey struct {
	PeerVersion uint32
	NetworkID   uint32
	Addrbytes   PeerAddress
	Port        uint16
}

// Neighbor is one row of peer bookkeeping: identity, public key, and
// contact/trust counters. Freshly configured neighbors start with all
// counters zeroed and a far-future expiry.
type Neighbor struct {
	Addr            NeighborKey
	PublicKey       *btcec.PublicKey
	ExpireBlock     uint64
	LastContactTime uint64
	Whitelisted     int64
	Blacklisted     int64
	ASN             uint32
	Org             uint32
	InDegree        uint32
	OutDegree       uint32
}

// parseBootstrapNode parses a "pubkey@host:port" peer descriptor into a
// bookkeeping row for the testnet network.
func parseBootstrapNode(raw string) (*Neighbor, error) {
	comps := strings.Split(raw, "@")
	if len(comps) != 2 {
		return nil, fmt.Errorf("bootstrap node %q: want public-key@host:port", raw)
	}
	keyBytes, err := hex.DecodeString(comps[0])
	if err != nil {
		return nil, fmt.Errorf("bootstrap node public key: %w", err)
	}
	pubKey, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("bootstrap node public key: %w", err)
	}
	addrPort, err := netip.ParseAddrPort(comps[1])
	if err != nil {
		return nil, fmt.Errorf("bootstrap node address: %w", err)
	}
	return &Neighbor{
		Addr: NeighborKey{
			PeerVersion: peerVersion,
			NetworkID:   networkIDTestnet,
			Addrbytes:   peerAddressFrom(addrPort.Addr()),
			Port:        addrPort.Port(),
		},
		PublicKey:   pubKey,
		ExpireBlock: bootstrapPeerExpireBlock,
	}, nil
}
