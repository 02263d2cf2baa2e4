// Package memoryclient validates, normalizes, and defaults the configuration
// for a client of a remote agent memory service, and ships the HTTP client
// that consumes it.
//
// Hosts hand config.Normalize an untyped key-value mapping (from a config
// file, environment, or a settings UI) and get back a strict, defaulted,
// environment-resolved config.MemoryConfig, or a descriptive error. The
// config package also exports a static field metadata table for
// configuration-editing UIs.
package memoryclient

import (
	"github.com/habiliai/memoryclient/client"
	"github.com/habiliai/memoryclient/config"
)

// New normalizes a raw configuration value and builds a memory client from
// the result.
func New(raw any, opts ...client.Option) (*client.Client, error) {
	conf, err := config.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return client.New(conf, opts...)
}
