package main

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	_ "modernc.org/sqlite"
)

// openPeerDB opens (creating if needed) the node's peer database and
// ensures the frontier schema exists. Numeric columns are signed 64-bit,
// which is why "unbounded" config values stop at int64 max.
func openPeerDB(dbPath string) (*sql.DB, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, os.ErrInvalid
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_foreign_keys=1&_journal=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensurePeerTables(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensurePeerTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS frontier (
			peer_version INTEGER NOT NULL,
			network_id INTEGER NOT NULL,
			addrbytes TEXT NOT NULL,
			port INTEGER NOT NULL,
			public_key TEXT NOT NULL,
			expire_block_height INTEGER NOT NULL,
			last_contact_time INTEGER NOT NULL,
			whitelisted INTEGER NOT NULL,
			blacklisted INTEGER NOT NULL,
			asn INTEGER NOT NULL,
			org INTEGER NOT NULL,
			in_degree INTEGER NOT NULL,
			out_degree INTEGER NOT NULL,
			PRIMARY KEY (network_id, addrbytes, port)
		)
	`)
	return err
}

// storeNeighbor upserts one peer bookkeeping row.
func storeNeighbor(db *sql.DB, n *Neighbor) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO frontier (
			peer_version, network_id, addrbytes, port, public_key,
			expire_block_height, last_contact_time, whitelisted, blacklisted,
			asn, org, in_degree, out_degree
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Addr.PeerVersion, n.Addr.NetworkID,
		hex.EncodeToString(n.Addr.Addrbytes[:]), n.Addr.Port,
		hex.EncodeToString(n.PublicKey.SerializeCompressed()),
		int64(n.ExpireBlock), int64(n.LastContactTime),
		n.Whitelisted, n.Blacklisted,
		n.ASN, n.Org, n.InDegree, n.OutDegree,
	)
	return err
}

// loadNeighbors reads back every frontier row.
func loadNeighbors(db *sql.DB) ([]*Neighbor, error) {
	rows, err := db.Query(`
		SELECT peer_version, network_id, addrbytes, port, public_key,
			expire_block_height, last_contact_time, whitelisted, blacklisted,
			asn, org, in_degree, out_degree
		FROM frontier ORDER BY network_id, addrbytes, port`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var neighbors []*Neighbor
	for rows.Next() {
		var (
			n           Neighbor
			addrHex     string
			keyHex      string
			expire      int64
			lastContact int64
		)
		if err := rows.Scan(&n.Addr.PeerVersion, &n.Addr.NetworkID, &addrHex, &n.Addr.Port,
			&keyHex, &expire, &lastContact, &n.Whitelisted, &n.Blacklisted,
			&n.ASN, &n.Org, &n.InDegree, &n.OutDegree); err != nil {
			return nil, err
		}
		addrBytes, err := hex.DecodeString(addrHex)
		if err != nil || len(addrBytes) != 16 {
			return nil, fmt.Errorf("frontier row: bad addrbytes %q", addrHex)
		}
		copy(n.Addr.Addrbytes[:], addrBytes)
		keyBytes, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("frontier row: bad public key hex: %w", err)
		}
		pubKey, err := btcec.ParsePubKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("frontier row: bad public key: %w", err)
		}
		n.PublicKey = pubKey
		n.ExpireBlock = uint64(expire)
		n.LastContactTime = uint64(lastContact)
		neighbors = append(neighbors, &n)
	}
	return neighbors, rows.Err()
}
