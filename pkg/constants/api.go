package constants

const (
	// DdnsdPortNumber is the default admin/metrics port number for
	// the ddnsd daemon.
	DdnsdPortNumber = 6970
)
