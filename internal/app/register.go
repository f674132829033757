package app

import (
	"net/http"

	"github.com/2kybe3/kcli/internal/config"
	"github.com/2kybe3/kcli/internal/logger"
	"github.com/2kybe3/kcli/internal/pastebins"
	"github.com/2kybe3/kcli/internal/pastebins/pastebincom"
)

// provider describes a backend compiled into this build: which config section
// gates it and how to construct it from a key.
type provider struct {
	meta    pastebins.Meta
	section func(*config.File) config.ServiceConfig
	build   func(key string, hc *http.Client) pastebins.PasteBin
}

var providers = []provider{
	{
		meta:    pastebincom.Meta,
		section: func(f *config.File) config.ServiceConfig { return f.PastebinCom },
		build: func(key string, hc *http.Client) pastebins.PasteBin {
			return pastebincom.New(key, pastebincom.WithHTTPClient(hc))
		},
	},
}

// KnownServices lists every backend compiled into this build, registered or not.
func KnownServices() []pastebins.Meta {
	out := make([]pastebins.Meta, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.meta)
	}
	return out
}

// BuildRegistry registers every enabled backend that has a usable key.
// Enabled backends without one are skipped with a warning.
func BuildRegistry(cfg *config.File, log logger.Logger, hc *http.Client) *pastebins.Registry {
	return buildRegistry(providers, cfg, log, hc)
}

func buildRegistry(ps []provider, cfg *config.File, log logger.Logger, hc *http.Client) *pastebins.Registry {
	registry := pastebins.NewRegistry()

	for _, p := range ps {
		section := p.section(cfg)
		if !section.Enable {
			log.Debug("paste service disabled", logger.String("service", p.meta.ID))
			continue
		}

		key, ok := section.APIKey()
		if !ok {
			reason := "key is empty"
			if section.Key == nil {
				reason = "key is not set"
			}
			log.Warn("failed to register ("+p.meta.String()+") because "+reason,
				logger.String("service", p.meta.DisplayName),
				logger.String("domain", p.meta.Domain),
				logger.String("reason", reason))
			continue
		}

		registry.Register(p.build(key, hc))
		log.Debug("paste service registered",
			logger.String("service", p.meta.ID),
			logger.String("domain", p.meta.Domain))
	}

	return registry
}
