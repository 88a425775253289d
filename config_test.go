package main

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const bootAddress = "SP000000000000000000002Q6VF78"

func TestResolveEmptyDocument(t *testing.T) {
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Burnchain.Mode != "mocknet" {
		t.Fatalf("mode = %q, want mocknet", cfg.Burnchain.Mode)
	}
	if cfg.Burnchain.Chain != "bitcoin" {
		t.Fatalf("chain = %q, want bitcoin", cfg.Burnchain.Chain)
	}
	if len(cfg.Node.Seed) != 32 {
		t.Fatalf("seed length = %d, want 32", len(cfg.Node.Seed))
	}
	for i, b := range cfg.Node.Seed {
		if b != 0 {
			t.Fatalf("seed[%d] = %d, want 0", i, b)
		}
	}
	if !strings.HasPrefix(cfg.Node.WorkingDir, "/tmp/stacks-testnet-") {
		t.Fatalf("working dir = %q", cfg.Node.WorkingDir)
	}
	if cfg.Node.BootstrapNode != nil {
		t.Fatalf("unexpected bootstrap node")
	}
	if cfg.Burnchain.FirstBlock != firstBlockMainnet {
		t.Fatalf("first block = %d, want %d", cfg.Burnchain.FirstBlock, firstBlockMainnet)
	}
	if cfg.ConnectionOptions.PrivateKeyLifetime != math.MaxInt64 {
		t.Fatalf("private key lifetime = %d", cfg.ConnectionOptions.PrivateKeyLifetime)
	}
	if cfg.ConnectionOptions.WalkInterval != math.MaxInt64 {
		t.Fatalf("walk interval = %d", cfg.ConnectionOptions.WalkInterval)
	}
}

func TestModeValidation(t *testing.T) {
	tests := []struct {
		mode string
		ok   bool
	}{
		{"mocknet", true},
		{"helium", false}, // no mining key
		{"neon", true},
		{"neon-god", true},
		{"mainnet", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			doc := "[burnchain]\nmode = \"" + tt.mode + "\"\n"
			_, err := parseConfig(doc)
			if tt.ok && err != nil {
				t.Fatalf("mode %q rejected: %v", tt.mode, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("mode %q accepted", tt.mode)
			}
		})
	}
}

func TestHeliumRequiresMiningKey(t *testing.T) {
	doc := `
[burnchain]
mode = "helium"
local_mining_public_key = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Burnchain.LocalMiningPublicKey == "" {
		t.Fatalf("mining key not carried through")
	}

	if _, err := parseConfig("[burnchain]\nmode = \"helium\"\n"); err == nil {
		t.Fatalf("helium without mining key accepted")
	}
}

func TestNodeSeedDecoding(t *testing.T) {
	cfg, err := parseConfig("[node]\nseed = \"0102ff\"\n")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if want := []byte{0x01, 0x02, 0xff}; !reflect.DeepEqual(cfg.Node.Seed, want) {
		t.Fatalf("seed = %x, want %x", cfg.Node.Seed, want)
	}

	if _, err := parseConfig("[node]\nseed = \"zz\"\n"); err == nil {
		t.Fatalf("invalid seed hex accepted")
	}
}

func TestConnectionOptionsPartialOverride(t *testing.T) {
	cfg, err := parseConfig("[connection_options]\nheartbeat = 30\n")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.ConnectionOptions.Heartbeat != 30 {
		t.Fatalf("heartbeat = %d, want 30", cfg.ConnectionOptions.Heartbeat)
	}
	def := defaultConnectionOptions()
	if cfg.ConnectionOptions.InboxMaxlen != def.InboxMaxlen {
		t.Fatalf("inbox maxlen = %d, want default %d", cfg.ConnectionOptions.InboxMaxlen, def.InboxMaxlen)
	}
	if cfg.ConnectionOptions.NumNeighbors != def.NumNeighbors {
		t.Fatalf("num neighbors = %d, want default %d", cfg.ConnectionOptions.NumNeighbors, def.NumNeighbors)
	}
}

func TestReadOnlyCallLimitMerge(t *testing.T) {
	doc := `
[connection_options]
read_only_call_limit_read_count = 7
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	limit := cfg.ConnectionOptions.ReadOnlyCallLimit
	if limit.ReadCount != 7 {
		t.Fatalf("read count = %d, want 7", limit.ReadCount)
	}
	def := defaultConnectionOptions().ReadOnlyCallLimit
	if limit.WriteLength != def.WriteLength || limit.Runtime != def.Runtime {
		t.Fatalf("unset limit fields not defaulted: %+v", limit)
	}
}

func TestInitialBalances(t *testing.T) {
	doc := `
[[mstx_balance]]
address = "` + bootAddress + `"
amount = 10000000

[[mstx_balance]]
address = "` + bootAddress + `"
amount = 5
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.InitialBalances) != 2 {
		t.Fatalf("got %d balances, want 2", len(cfg.InitialBalances))
	}
	if cfg.InitialBalances[0].Amount != 10000000 || cfg.InitialBalances[1].Amount != 5 {
		t.Fatalf("balances out of order: %+v", cfg.InitialBalances)
	}
	if got := cfg.InitialBalances[0].Address.String(); got != bootAddress {
		t.Fatalf("address round-trip = %q, want %q", got, bootAddress)
	}

	bad := "[[mstx_balance]]\naddress = \"SP00NOTANADDRESS\"\namount = 1\n"
	if _, err := parseConfig(bad); err == nil {
		t.Fatalf("bad balance address accepted")
	}
}

func TestAddInitialBalance(t *testing.T) {
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if err := cfg.addInitialBalance(bootAddress, 42); err != nil {
		t.Fatalf("addInitialBalance: %v", err)
	}
	if len(cfg.InitialBalances) != 1 || cfg.InitialBalances[0].Amount != 42 {
		t.Fatalf("balance not appended: %+v", cfg.InitialBalances)
	}
	if err := cfg.addInitialBalance("not-an-address", 1); err == nil {
		t.Fatalf("bad address accepted")
	}
}

func TestEventObservers(t *testing.T) {
	doc := `
[[events_observer]]
endpoint = "http://127.0.0.1:50303"
events_keys = ["*", "stx"]
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.EventsObservers) != 1 {
		t.Fatalf("got %d observers, want 1", len(cfg.EventsObservers))
	}
	keys := cfg.EventsObservers[0].EventsKeys
	if len(keys) != 2 || keys[0].Kind != EventKeyAny || keys[1].Kind != EventKeySTX {
		t.Fatalf("keys = %+v", keys)
	}

	bad := `
[[events_observer]]
endpoint = "http://127.0.0.1:50303"
events_keys = ["bogus::key::extra"]
`
	if _, err := parseConfig(bad); err == nil {
		t.Fatalf("invalid events key accepted")
	}
}

func TestEnvObserverAppendedLast(t *testing.T) {
	t.Setenv(envEventObserver, "127.0.0.1:50399")
	doc := `
[[events_observer]]
endpoint = "http://127.0.0.1:50303"
events_keys = ["stx"]
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.EventsObservers) != 2 {
		t.Fatalf("got %d observers, want 2", len(cfg.EventsObservers))
	}
	last := cfg.EventsObservers[1]
	if last.Endpoint != "127.0.0.1:50399" {
		t.Fatalf("env observer endpoint = %q", last.Endpoint)
	}
	if len(last.EventsKeys) != 1 || last.EventsKeys[0].Kind != EventKeyAny {
		t.Fatalf("env observer keys = %+v", last.EventsKeys)
	}
}

func TestEnvObserverWithoutDocument(t *testing.T) {
	t.Setenv(envEventObserver, "127.0.0.1:50399")
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.EventsObservers) != 1 || cfg.EventsObservers[0].Endpoint != "127.0.0.1:50399" {
		t.Fatalf("observers = %+v", cfg.EventsObservers)
	}
}

func TestEnvObserverSetButEmpty(t *testing.T) {
	t.Setenv(envEventObserver, "")
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	// set counts, even when empty
	if len(cfg.EventsObservers) != 1 || cfg.EventsObservers[0].Endpoint != "" {
		t.Fatalf("observers = %+v", cfg.EventsObservers)
	}
	if keys := cfg.EventsObservers[0].EventsKeys; len(keys) != 1 || keys[0].Kind != EventKeyAny {
		t.Fatalf("keys = %+v", cfg.EventsObservers[0].EventsKeys)
	}
}

func TestResolutionIdempotent(t *testing.T) {
	doc := `
[node]
name = "pinned"
seed = "00aa"
working_dir = "/tmp/heliumd-test"
rpc_bind = "127.0.0.1:30443"
p2p_bind = "127.0.0.1:30444"

[burnchain]
mode = "neon"
peer_host = "10.1.1.1"
`
	first, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	second, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution not deterministic for a fully pinned document")
	}
}

func TestSPVHeadersPathDerivedFromWorkingDir(t *testing.T) {
	doc := `
[node]
working_dir = "/data/helium"

[burnchain]
mode = "mocknet"
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Burnchain.SPVHeadersPath != "/data/helium/burnchain/spv-headers.dat" {
		t.Fatalf("spv headers path = %q", cfg.Burnchain.SPVHeadersPath)
	}

	pinned := doc + "spv_headers_path = \"/elsewhere/headers.dat\"\n"
	cfg, err = parseConfig(pinned)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Burnchain.SPVHeadersPath != "/elsewhere/headers.dat" {
		t.Fatalf("pinned spv headers path = %q", cfg.Burnchain.SPVHeadersPath)
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := Config{}
	cfg.Node.WorkingDir = "/data/helium"
	cfg.Burnchain.Chain = "bitcoin"
	if got := cfg.burnchainPath(); got != "/data/helium/burnchain/" {
		t.Fatalf("burnchain path = %q", got)
	}
	if got := cfg.burnDBPath(); got != "/data/helium/burnchain/db" {
		t.Fatalf("burn db path = %q", got)
	}
	if got := cfg.burnDBFilePath(); got != "/data/helium/burnchain/db/bitcoin/regtest/burn.db/" {
		t.Fatalf("burn db file path = %q", got)
	}
	if got := cfg.chainstatePath(); got != "/data/helium/chainstate/" {
		t.Fatalf("chainstate path = %q", got)
	}
	if got := cfg.peerDBPath(); got != "/data/helium/peer_db.sqlite" {
		t.Fatalf("peer db path = %q", got)
	}
}

func TestRPCURL(t *testing.T) {
	b := BurnchainConfig{PeerHost: "127.0.0.1", RPCPort: 8332}
	if got := b.rpcURL(); got != "http://127.0.0.1:8332" {
		t.Fatalf("rpc url = %q", got)
	}
	b.RPCSSL = true
	b.RPCPort = 443
	if got := b.rpcURL(); got != "https://127.0.0.1:443" {
		t.Fatalf("ssl rpc url = %q", got)
	}
}

func TestLoadConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := "[burnchain]\nmode = \"neon\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Burnchain.Mode != "neon" {
		t.Fatalf("mode = %q, want neon", cfg.Burnchain.Mode)
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestBootstrapNodeResolution(t *testing.T) {
	doc := `
[node]
bootstrap_node = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798@127.0.0.1:20444"
`
	cfg, err := parseConfig(doc)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	n := cfg.Node.BootstrapNode
	if n == nil {
		t.Fatalf("bootstrap node not set")
	}
	if n.Addr.Port != 20444 {
		t.Fatalf("port = %d, want 20444", n.Addr.Port)
	}
	if n.Addr.PeerVersion != peerVersion || n.Addr.NetworkID != networkIDTestnet {
		t.Fatalf("addr = %+v", n.Addr)
	}
	if n.ExpireBlock != bootstrapPeerExpireBlock {
		t.Fatalf("expire block = %d", n.ExpireBlock)
	}

	if _, err := parseConfig("[node]\nbootstrap_node = \"no-at-sign-here\"\n"); err == nil {
		t.Fatalf("malformed bootstrap node accepted")
	}
}
