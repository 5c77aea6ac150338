package config

// storeConfiguration holds the persistence adapter's on-disk location.
type storeConfiguration struct {
	Dir string
}

func init() {
	Settings.Store.Dir = "./data/quantumchess"
}
