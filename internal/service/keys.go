package service

// cacheKeys names the persistent cache entries derived from the configured
// storage key.
type cacheKeys struct {
	preference string
	table      string
	version    string
}

func newCacheKeys(storageKey string) cacheKeys {
	return cacheKeys{
		preference: storageKey,
		table:      storageKey + "_translations",
		version:    storageKey + "_translations_version",
	}
}
