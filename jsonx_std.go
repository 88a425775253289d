//go:build nojsonsimd

package main

import stdjson "encoding/json"

func fastJSONMarshalIndent(v interface{}) ([]byte, error) {
	return stdjson.MarshalIndent(v, "", "  ")
}
