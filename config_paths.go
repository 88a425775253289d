package main

import "fmt"

// Filesystem layout under the node's working directory. The trailing
// slashes on directory paths match what the burnchain and chainstate
// stores expect to be handed.

func (c *Config) burnchainPath() string {
	return fmt.Sprintf("%s/burnchain/", c.Node.WorkingDir)
}

func (c *Config) burnDBPath() string {
	return fmt.Sprintf("%s/burnchain/db", c.Node.WorkingDir)
}

func (c *Config) burnDBFilePath() string {
	return fmt.Sprintf("%s/burnchain/db/%s/regtest/burn.db/", c.Node.WorkingDir, c.Burnchain.Chain)
}

func (c *Config) chainstatePath() string {
	return fmt.Sprintf("%s/chainstate/", c.Node.WorkingDir)
}

func (c *Config) peerDBPath() string {
	return fmt.Sprintf("%s/peer_db.sqlite", c.Node.WorkingDir)
}

// defaultSPVHeadersPath places the SPV headers file inside the node's
// burnchain directory.
func defaultSPVHeadersPath(node NodeConfig) string {
	return fmt.Sprintf("%s/burnchain/spv-headers.dat", node.WorkingDir)
}

// rpcURL formats the burnchain RPC endpoint from the host, port and TLS
// setting.
func (b *BurnchainConfig) rpcURL() string {
	scheme := "http://"
	if b.RPCSSL {
		scheme = "https://"
	}
	return fmt.Sprintf("%s%s:%d", scheme, b.PeerHost, b.RPCPort)
}
