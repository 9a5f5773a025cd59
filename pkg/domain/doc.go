// Package domain contains the core domain entities and types used by the
// application: guild members, the phishing-domain blocklist, exemptions and
// check verdicts. These types represent the business concepts and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
