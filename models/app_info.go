package models

// AppInfo is returned by the info endpoint.
type AppInfo struct {
	Version     string  `json:"version"`
	BuildDate   string  `json:"build_date,omitempty"`
	BuildCommit string  `json:"build_commit,omitempty"`
	KDF         KDFInfo `json:"kdf"`
}

// KDFInfo describes the fixed key derivation and cipher parameters, so a
// third party can reproduce a token by hand.
type KDFInfo struct {
	Algorithm  string `json:"algorithm"`
	Hash       string `json:"hash"`
	Iterations int    `json:"iterations"`
	KeySize    int    `json:"key_size"`
	SaltSize   int    `json:"salt_size"`
	IVSize     int    `json:"iv_size"`
	Cipher     string `json:"cipher"`
}
