package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	peerVersion      = 0x15000000
	networkIDTestnet = 0xff000000

	// Height of the first bitcoin block the SPV client trusts.
	firstBlockMainnet = 373601

	bootstrapPeerExpireBlock = 99999

	envEventObserver = "STACKS_EVENT_OBSERVER"
)

var defaultMagicBytes = [2]byte{'i', 'd'}

// defaultNodeConfig derives a fresh node identity: random working-dir
// suffix and two unprivileged ports. Called once per process unless the
// document pins the fields itself.
func defaultNodeConfig() NodeConfig {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("rand: %v", err))
	}
	return derivedNodeConfig(buf)
}

// derivedNodeConfig is the deterministic core of defaultNodeConfig,
// split out so tests can pin the entropy.
func derivedNodeConfig(buf [8]byte) NodeConfig {
	rpcPort := saturatingPortOffset(binary.BigEndian.Uint16(buf[0:2]))
	p2pPort := saturatingPortOffset(binary.BigEndian.Uint16(buf[2:4]))
	return NodeConfig{
		Name:       "helium-node",
		Seed:       make([]byte, 32),
		WorkingDir: fmt.Sprintf("/tmp/stacks-testnet-%x", buf),
		RPCBind:    fmt.Sprintf("127.0.0.1:%d", rpcPort),
		P2PBind:    fmt.Sprintf("127.0.0.1:%d", p2pPort),
	}
}

// saturatingPortOffset shifts a random port above the privileged range
// without wrapping back into it.
func saturatingPortOffset(p uint16) uint16 {
	if p > math.MaxUint16-1024 {
		return math.MaxUint16
	}
	return p + 1024
}

func defaultBurnchainConfig() BurnchainConfig {
	return BurnchainConfig{
		Chain:                   "bitcoin",
		Mode:                    "mocknet",
		CommitAnchorBlockWithin: 5000,
		BurnFeeCap:              10000,
		PeerHost:                "127.0.0.1",
		PeerPort:                8333,
		RPCPort:                 8332,
		RPCSSL:                  false,
		Username:                "",
		Password:                "",
		Timeout:                 30,
		SPVHeadersPath:          "./spv-headers.dat",
		FirstBlock:              firstBlockMainnet,
		MagicBytes:              defaultMagicBytes,
		BurnchainOpTxFee:        1000,
	}
}

// defaultConnectionOptions returns the helium peer-network baseline.
// "Unbounded" durations stop at int64 max because the peer database
// stores them as signed 64-bit integers.
func defaultConnectionOptions() ConnectionOptions {
	return ConnectionOptions{
		InboxMaxlen:             100,
		OutboxMaxlen:            100,
		Timeout:                 5000,
		IdleTimeout:             15,
		Heartbeat:               60000,
		PrivateKeyLifetime:      math.MaxInt64,
		NumNeighbors:            4,
		NumClients:              1000,
		SoftNumNeighbors:        4,
		SoftNumClients:          1000,
		MaxNeighborsPerHost:     10,
		MaxClientsPerHost:       1000,
		SoftMaxNeighborsPerHost: 10,
		SoftMaxNeighborsPerOrg:  100,
		SoftMaxClientsPerHost:   1000,
		WalkInterval:            math.MaxInt64,
		DNSTimeout:        15000,
		MaxInflightBlocks: 6,
	}
}
