package model

// Manifest holds fields read from package.json
type Manifest struct {
	Name    string
	Version string
}
