package main

import "encoding/hex"

// Config is the fully resolved node configuration. It is built exactly once
// at startup by resolveConfig and treated as read-only afterwards.
type Config struct {
	Node              NodeConfig
	Burnchain         BurnchainConfig
	InitialBalances   []InitialBalance
	EventsObservers   []EventObserverConfig
	ConnectionOptions ConnectionOptions
}

// NodeConfig describes this node's identity and bind points.
// Seed, WorkingDir, RPCBind and P2PBind are always populated after
// resolution; BootstrapNode is nil unless the document configured one.
type NodeConfig struct {
	Name          string
	Seed          []byte
	WorkingDir    string
	RPCBind       string
	P2PBind       string
	BootstrapNode *Neighbor
}

// BurnchainConfig describes the external proof-of-work chain the node
// anchors to and how to reach its RPC endpoint.
type BurnchainConfig struct {
	Chain                   string
	Mode                    string
	CommitAnchorBlockWithin uint64
	BurnFeeCap              uint64
	PeerHost                string
	PeerPort                uint16
	RPCPort                 uint16
	RPCSSL                  bool
	Username                string
	Password                string
	Timeout                 uint32
	SPVHeadersPath          string
	FirstBlock              uint64
	MagicBytes              [2]byte
	LocalMiningPublicKey    string
	BurnchainOpTxFee        uint64
}

// ReadOnlyCallLimit bounds the execution cost of a single read-only
// contract call served over RPC.
type ReadOnlyCallLimit struct {
	WriteLength uint64 `json:"write_length"`
	WriteCount  uint64 `json:"write_count"`
	ReadLength  uint64 `json:"read_length"`
	ReadCount   uint64 `json:"read_count"`
	Runtime     uint64 `json:"runtime"`
}

// ConnectionOptions is the peer-network tuning record. Values are taken
// as given; bounds enforcement is left to the consumers.
type ConnectionOptions struct {
	InboxMaxlen             uint64            `json:"inbox_maxlen"`
	OutboxMaxlen            uint64            `json:"outbox_maxlen"`
	Timeout                 uint64            `json:"timeout"`
	IdleTimeout             uint64            `json:"idle_timeout"`
	Heartbeat               uint32            `json:"heartbeat"`
	PrivateKeyLifetime      uint64            `json:"private_key_lifetime"`
	NumNeighbors            uint64            `json:"num_neighbors"`
	NumClients              uint64            `json:"num_clients"`
	SoftNumNeighbors        uint64            `json:"soft_num_neighbors"`
	SoftNumClients          uint64            `json:"soft_num_clients"`
	MaxNeighborsPerHost     uint64            `json:"max_neighbors_per_host"`
	MaxClientsPerHost       uint64            `json:"max_clients_per_host"`
	SoftMaxNeighborsPerHost uint64            `json:"soft_max_neighbors_per_host"`
	SoftMaxNeighborsPerOrg  uint64            `json:"soft_max_neighbors_per_org"`
	SoftMaxClientsPerHost   uint64            `json:"soft_max_clients_per_host"`
	WalkInterval            uint64            `json:"walk_interval"`
	DNSTimeout              uint64            `json:"dns_timeout"`
	MaxInflightBlocks       uint64            `json:"max_inflight_blocks"`
	MaximumCallArgumentSize uint32            `json:"maximum_call_argument_size"`
	ReadOnlyCallLimit       ReadOnlyCallLimit `json:"read_only_call_limit"`
}

// InitialBalance seeds the genesis ledger with a starting amount for one
// account. The address has already been parsed and checksum-verified.
type InitialBalance struct {
	Address StandardPrincipal
	Amount  uint64
}

// EventObserverConfig describes one event sink: a delivery endpoint plus
// the parsed subscription keys it asked for.
type EventObserverConfig struct {
	Endpoint   string
	EventsKeys []EventKeyType
}

// EffectiveConfig is the JSON shape of a resolved Config, printed by the
// -check mode so operators can see what the node actually ended up with.
type EffectiveConfig struct {
	Node struct {
		Name         string `json:"name"`
		SeedHex      string `json:"seed"`
		WorkingDir   string `json:"working_dir"`
		RPCBind      string `json:"rpc_bind"`
		P2PBind      string `json:"p2p_bind"`
		BootstrapSet bool   `json:"bootstrap_node_set"`
	} `json:"node"`
	Burnchain struct {
		Chain                   string `json:"chain"`
		Mode                    string `json:"mode"`
		PeerHost                string `json:"peer_host"`
		PeerPort                uint16 `json:"peer_port"`
		RPCURL                  string `json:"rpc_url"`
		BurnFeeCap              uint64 `json:"burn_fee_cap"`
		CommitAnchorBlockWithin uint64 `json:"commit_anchor_block_within"`
		Timeout                 uint32 `json:"timeout"`
		SPVHeadersPath          string `json:"spv_headers_path"`
		FirstBlock              uint64 `json:"first_block"`
		LocalMiningPublicKey    string `json:"local_mining_public_key,omitempty"`
		BurnchainOpTxFee        uint64 `json:"burnchain_op_tx_fee"`
	} `json:"burnchain"`
	InitialBalances []EffectiveBalance `json:"initial_balances,omitempty"`
	EventsObservers []string           `json:"events_observers,omitempty"`
	Paths           struct {
		BurnchainPath  string `json:"burnchain_path"`
		BurnDBFilePath string `json:"burn_db_file_path"`
		ChainstatePath string `json:"chainstate_path"`
		PeerDBPath     string `json:"peer_db_path"`
	} `json:"paths"`
	ConnectionOptions ConnectionOptions `json:"connection_options"`
}

type EffectiveBalance struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

func buildEffectiveConfig(cfg Config) EffectiveConfig {
	var ec EffectiveConfig
	ec.Node.Name = cfg.Node.Name
	ec.Node.SeedHex = hex.EncodeToString(cfg.Node.Seed)
	ec.Node.WorkingDir = cfg.Node.WorkingDir
	ec.Node.RPCBind = cfg.Node.RPCBind
	ec.Node.P2PBind = cfg.Node.P2PBind
	ec.Node.BootstrapSet = cfg.Node.BootstrapNode != nil
	ec.Burnchain.Chain = cfg.Burnchain.Chain
	ec.Burnchain.Mode = cfg.Burnchain.Mode
	ec.Burnchain.PeerHost = cfg.Burnchain.PeerHost
	ec.Burnchain.PeerPort = cfg.Burnchain.PeerPort
	ec.Burnchain.RPCURL = cfg.Burnchain.rpcURL()
	ec.Burnchain.BurnFeeCap = cfg.Burnchain.BurnFeeCap
	ec.Burnchain.CommitAnchorBlockWithin = cfg.Burnchain.CommitAnchorBlockWithin
	ec.Burnchain.Timeout = cfg.Burnchain.Timeout
	ec.Burnchain.SPVHeadersPath = cfg.Burnchain.SPVHeadersPath
	ec.Burnchain.FirstBlock = cfg.Burnchain.FirstBlock
	ec.Burnchain.LocalMiningPublicKey = cfg.Burnchain.LocalMiningPublicKey
	ec.Burnchain.BurnchainOpTxFee = cfg.Burnchain.BurnchainOpTxFee
	for _, b := range cfg.InitialBalances {
		ec.InitialBalances = append(ec.InitialBalances, EffectiveBalance{
			Address: b.Address.String(),
			Amount:  b.Amount,
		})
	}
	for _, o := range cfg.EventsObservers {
		ec.EventsObservers = append(ec.EventsObservers, o.Endpoint)
	}
	ec.Paths.BurnchainPath = cfg.burnchainPath()
	ec.Paths.BurnDBFilePath = cfg.burnDBFilePath()
	ec.Paths.ChainstatePath = cfg.chainstatePath()
	ec.Paths.PeerDBPath = cfg.peerDBPath()
	ec.ConnectionOptions = cfg.ConnectionOptions
	return ec
}
