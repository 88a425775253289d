package main

// The *File structs mirror the on-disk TOML document. Every field is
// optional; nil means "absent" and resolves to the compiled-in default.

type configFile struct {
	Burnchain         *burnchainConfigFile      `toml:"burnchain"`
	Node              *nodeConfigFile           `toml:"node"`
	MstxBalance       []initialBalanceFile      `toml:"mstx_balance"`
	EventsObserver    []eventObserverConfigFile `toml:"events_observer"`
	ConnectionOptions *connectionOptionsFile    `toml:"connection_options"`
}

type nodeConfigFile struct {
	Name          *string `toml:"name"`
	Seed          *string `toml:"seed"`
	WorkingDir    *string `toml:"working_dir"`
	RPCBind       *string `toml:"rpc_bind"`
	P2PBind       *string `toml:"p2p_bind"`
	BootstrapNode *string `toml:"bootstrap_node"`
}

type burnchainConfigFile struct {
	Chain                   *string `toml:"chain"`
	Mode                    *string `toml:"mode"`
	BurnFeeCap              *uint64 `toml:"burn_fee_cap"`
	BlockTime               *uint64 `toml:"block_time"`
	CommitAnchorBlockWithin *uint64 `toml:"commit_anchor_block_within"`
	PeerHost                *string `toml:"peer_host"`
	PeerPort                *uint16 `toml:"peer_port"`
	RPCPort                 *uint16 `toml:"rpc_port"`
	RPCSSL                  *bool   `toml:"rpc_ssl"`
	Username                *string `toml:"username"`
	Password                *string `toml:"password"`
	Timeout                 *uint32 `toml:"timeout"`
	SPVHeadersPath          *string `toml:"spv_headers_path"`
	FirstBlock              *uint64 `toml:"first_block"`
	MagicBytes              *string `toml:"magic_bytes"`
	LocalMiningPublicKey    *string `toml:"local_mining_public_key"`
	BurnchainOpTxFee        *uint64 `toml:"burnchain_op_tx_fee"`
}

type connectionOptionsFile struct {
	InboxMaxlen                  *uint64 `toml:"inbox_maxlen"`
	OutboxMaxlen                 *uint64 `toml:"outbox_maxlen"`
	Timeout                      *uint64 `toml:"timeout"`
	IdleTimeout                  *uint64 `toml:"idle_timeout"`
	Heartbeat                    *uint32 `toml:"heartbeat"`
	PrivateKeyLifetime           *uint64 `toml:"private_key_lifetime"`
	NumNeighbors                 *uint64 `toml:"num_neighbors"`
	NumClients                   *uint64 `toml:"num_clients"`
	SoftNumNeighbors             *uint64 `toml:"soft_num_neighbors"`
	SoftNumClients               *uint64 `toml:"soft_num_clients"`
	MaxNeighborsPerHost          *uint64 `toml:"max_neighbors_per_host"`
	MaxClientsPerHost            *uint64 `toml:"max_clients_per_host"`
	SoftMaxNeighborsPerHost      *uint64 `toml:"soft_max_neighbors_per_host"`
	SoftMaxNeighborsPerOrg       *uint64 `toml:"soft_max_neighbors_per_org"`
	SoftMaxClientsPerHost        *uint64 `toml:"soft_max_clients_per_host"`
	WalkInterval                 *uint64 `toml:"walk_interval"`
	DNSTimeout                   *uint64 `toml:"dns_timeout"`
	MaxInflightBlocks            *uint64 `toml:"max_inflight_blocks"`
	MaximumCallArgumentSize      *uint32 `toml:"maximum_call_argument_size"`
	ReadOnlyCallLimitWriteLength *uint64 `toml:"read_only_call_limit_write_length"`
	ReadOnlyCallLimitWriteCount  *uint64 `toml:"read_only_call_limit_write_count"`
	ReadOnlyCallLimitReadLength  *uint64 `toml:"read_only_call_limit_read_length"`
	ReadOnlyCallLimitReadCount   *uint64 `toml:"read_only_call_limit_read_count"`
	ReadOnlyCallLimitRuntime     *uint64 `toml:"read_only_call_limit_runtime"`
}

type initialBalanceFile struct {
	Address string `toml:"address"`
	Amount  uint64 `toml:"amount"`
}

type eventObserverConfigFile struct {
	Endpoint   string   `toml:"endpoint"`
	EventsKeys []string `toml:"events_keys"`
}
