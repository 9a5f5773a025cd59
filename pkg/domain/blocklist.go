package domain

import "time"

// Domain is a host known to serve phishing content. Hosts are unique within
// the store; re-adding an existing host is a no-op.
type Domain struct {
	// Host is the lowercase host name, the unique key of the blocklist.
	Host string `json:"host"`
	// AddedAt is when the host was first merged into the blocklist.
	AddedAt time.Time `json:"addedAt"`
}
