//go:build !nojsonsimd

package main

import "github.com/bytedance/sonic"

var fastJSON = sonic.ConfigDefault

func fastJSONMarshalIndent(v interface{}) ([]byte, error) {
	return fastJSON.MarshalIndent(v, "", "  ")
}
