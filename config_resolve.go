package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// orDefault unwraps an optional document field, falling back to the
// compiled-in default when the field is absent.
func orDefault[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// loadConfig reads and resolves a TOML config document from disk.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return parseConfig(string(data))
}

// parseConfig resolves a TOML config document held in memory.
func parseConfig(content string) (Config, error) {
	var fc configFile
	if err := toml.Unmarshal([]byte(content), &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return resolveConfig(fc)
}

// defaultConfig resolves an empty document: all compiled-in defaults
// plus a freshly derived node identity.
func defaultConfig() Config {
	cfg, err := resolveConfig(configFile{})
	if err != nil {
		// an empty document always resolves
		panic(err)
	}
	return cfg
}

// resolveConfig turns a sparse document into a fully-defaulted,
// validated Config. Resolution order matters: the burnchain section
// derives its SPV headers path from the already-resolved node working
// directory.
func resolveConfig(fc configFile) (Config, error) {
	node, err := resolveNodeConfig(fc.Node)
	if err != nil {
		return Config{}, err
	}
	burnchain, err := resolveBurnchainConfig(fc.Burnchain, node)
	if err != nil {
		return Config{}, err
	}
	if err := validateBurnchainConfig(&burnchain); err != nil {
		return Config{}, err
	}
	balances, err := resolveInitialBalances(fc.MstxBalance)
	if err != nil {
		return Config{}, err
	}
	observers, err := resolveEventObservers(fc.EventsObserver)
	if err != nil {
		return Config{}, err
	}
	if endpoint, ok := os.LookupEnv(envEventObserver); ok {
		observers = append(observers, EventObserverConfig{
			Endpoint:   endpoint,
			EventsKeys: []EventKeyType{{Kind: EventKeyAny}},
		})
	}
	return Config{
		Node:              node,
		Burnchain:         burnchain,
		InitialBalances:   balances,
		EventsObservers:   observers,
		ConnectionOptions: resolveConnectionOptions(fc.ConnectionOptions, defaultConnectionOptions()),
	}, nil
}

func resolveNodeConfig(nf *nodeConfigFile) (NodeConfig, error) {
	def := defaultNodeConfig()
	if nf == nil {
		return def, nil
	}
	node := NodeConfig{
		Name:       orDefault(nf.Name, def.Name),
		Seed:       def.Seed,
		WorkingDir: orDefault(nf.WorkingDir, def.WorkingDir),
		RPCBind:    orDefault(nf.RPCBind, def.RPCBind),
		P2PBind:    orDefault(nf.P2PBind, def.P2PBind),
	}
	if nf.Seed != nil {
		seed, err := hex.DecodeString(*nf.Seed)
		if err != nil {
			return NodeConfig{}, fmt.Errorf("node.seed: invalid hex: %w", err)
		}
		node.Seed = seed
	}
	if nf.BootstrapNode != nil {
		neighbor, err := parseBootstrapNode(*nf.BootstrapNode)
		if err != nil {
			return NodeConfig{}, fmt.Errorf("node.bootstrap_node: %w", err)
		}
		node.BootstrapNode = neighbor
	}
	return node, nil
}

func resolveBurnchainConfig(bf *burnchainConfigFile, node NodeConfig) (BurnchainConfig, error) {
	def := defaultBurnchainConfig()
	def.SPVHeadersPath = defaultSPVHeadersPath(node)
	if bf == nil {
		return def, nil
	}
	b := BurnchainConfig{
		Chain:                   orDefault(bf.Chain, def.Chain),
		Mode:                    orDefault(bf.Mode, def.Mode),
		CommitAnchorBlockWithin: orDefault(bf.CommitAnchorBlockWithin, def.CommitAnchorBlockWithin),
		BurnFeeCap:              orDefault(bf.BurnFeeCap, def.BurnFeeCap),
		PeerHost:                orDefault(bf.PeerHost, def.PeerHost),
		PeerPort:                orDefault(bf.PeerPort, def.PeerPort),
		RPCPort:                 orDefault(bf.RPCPort, def.RPCPort),
		RPCSSL:                  orDefault(bf.RPCSSL, def.RPCSSL),
		Username:                orDefault(bf.Username, def.Username),
		Password:                orDefault(bf.Password, def.Password),
		Timeout:                 orDefault(bf.Timeout, def.Timeout),
		SPVHeadersPath:          orDefault(bf.SPVHeadersPath, def.SPVHeadersPath),
		FirstBlock:              orDefault(bf.FirstBlock, def.FirstBlock),
		// the wire magic is fixed per network; a configured override is
		// accepted in the document but not honored
		MagicBytes:       def.MagicBytes,
		BurnchainOpTxFee: orDefault(bf.BurnchainOpTxFee, def.BurnchainOpTxFee),
	}
	if bf.LocalMiningPublicKey != nil {
		b.LocalMiningPublicKey = *bf.LocalMiningPublicKey
	}
	return b, nil
}

func resolveInitialBalances(entries []initialBalanceFile) ([]InitialBalance, error) {
	var balances []InitialBalance
	for _, e := range entries {
		addr, err := parseStandardPrincipal(e.Address)
		if err != nil {
			return nil, fmt.Errorf("mstx_balance: %w", err)
		}
		balances = append(balances, InitialBalance{Address: addr, Amount: e.Amount})
	}
	return balances, nil
}

func resolveEventObservers(entries []eventObserverConfigFile) ([]EventObserverConfig, error) {
	var observers []EventObserverConfig
	for _, e := range entries {
		var keys []EventKeyType
		for _, raw := range e.EventsKeys {
			key, ok := parseEventKey(raw)
			if !ok {
				return nil, fmt.Errorf("events_observer %s: invalid events key %q", e.Endpoint, raw)
			}
			keys = append(keys, key)
		}
		observers = append(observers, EventObserverConfig{Endpoint: e.Endpoint, EventsKeys: keys})
	}
	return observers, nil
}

// resolveConnectionOptions merges the partial tuning section over the
// default record, field by field. The nested read-only call limit
// merges against the default record's sub-record.
func resolveConnectionOptions(of *connectionOptionsFile, def ConnectionOptions) ConnectionOptions {
	if of == nil {
		return def
	}
	limit := def.ReadOnlyCallLimit
	limit.WriteLength = orDefault(of.ReadOnlyCallLimitWriteLength, limit.WriteLength)
	limit.WriteCount = orDefault(of.ReadOnlyCallLimitWriteCount, limit.WriteCount)
	limit.ReadLength = orDefault(of.ReadOnlyCallLimitReadLength, limit.ReadLength)
	limit.ReadCount = orDefault(of.ReadOnlyCallLimitReadCount, limit.ReadCount)
	limit.Runtime = orDefault(of.ReadOnlyCallLimitRuntime, limit.Runtime)
	return ConnectionOptions{
		InboxMaxlen:             orDefault(of.InboxMaxlen, def.InboxMaxlen),
		OutboxMaxlen:            orDefault(of.OutboxMaxlen, def.OutboxMaxlen),
		Timeout:                 orDefault(of.Timeout, def.Timeout),
		IdleTimeout:             orDefault(of.IdleTimeout, def.IdleTimeout),
		Heartbeat:               orDefault(of.Heartbeat, def.Heartbeat),
		PrivateKeyLifetime:      orDefault(of.PrivateKeyLifetime, def.PrivateKeyLifetime),
		NumNeighbors:            orDefault(of.NumNeighbors, def.NumNeighbors),
		NumClients:              orDefault(of.NumClients, def.NumClients),
		SoftNumNeighbors:        orDefault(of.SoftNumNeighbors, def.SoftNumNeighbors),
		SoftNumClients:          orDefault(of.SoftNumClients, def.SoftNumClients),
		MaxNeighborsPerHost:     orDefault(of.MaxNeighborsPerHost, def.MaxNeighborsPerHost),
		MaxClientsPerHost:       orDefault(of.MaxClientsPerHost, def.MaxClientsPerHost),
		SoftMaxNeighborsPerHost: orDefault(of.SoftMaxNeighborsPerHost, def.SoftMaxNeighborsPerHost),
		SoftMaxNeighborsPerOrg:  orDefault(of.SoftMaxNeighborsPerOrg, def.SoftMaxNeighborsPerOrg),
		SoftMaxClientsPerHost:   orDefault(of.SoftMaxClientsPerHost, def.SoftMaxClientsPerHost),
		WalkInterval:            orDefault(of.WalkInterval, def.WalkInterval),
		DNSTimeout:              orDefault(of.DNSTimeout, def.DNSTimeout),
		MaxInflightBlocks:       orDefault(of.MaxInflightBlocks, def.MaxInflightBlocks),
		MaximumCallArgumentSize: orDefault(of.MaximumCallArgumentSize, def.MaximumCallArgumentSize),
		ReadOnlyCallLimit:       limit,
	}
}

// addInitialBalance appends one genesis balance after resolution, used
// by test harnesses to fund accounts programmatically.
func (c *Config) addInitialBalance(address string, amount uint64) error {
	addr, err := parseStandardPrincipal(address)
	if err != nil {
		return err
	}
	c.InitialBalances = append(c.InitialBalances, InitialBalance{Address: addr, Amount: amount})
	return nil
}
