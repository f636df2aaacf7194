package client

// IndexInfo represents a single index entry from /_cat/indices. The cat API
// reports every column as a string; with bytes=b the store size is a plain
// byte count, and it is empty for closed indices.
type IndexInfo struct {
	Index        string `json:"index"`
	Pri          string `json:"pri"`
	PriStoreSize string `json:"pri.store.size"`
}
