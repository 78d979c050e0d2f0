package grpcmw

import "github.com/DonKeyHot1/eclair"

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	packs    map[string]*eclair.LogPack
	fallback *eclair.LogPack
}

// WithPack registers the pack driving the engine for one method, keyed by
// the full method name, e.g. "/billing.Calculator/Total".
func WithPack(fullMethod string, pack *eclair.LogPack) Option {
	return func(o *options) {
		if o == nil || fullMethod == "" || pack == nil {
			return
		}

		if o.packs == nil {
			o.packs = make(map[string]*eclair.LogPack)
		}

		o.packs[fullMethod] = pack
	}
}

// WithDefaultPack registers the pack applied to methods without one of
// their own. Without it, unregistered methods pass through unlogged.
func WithDefaultPack(pack *eclair.LogPack) Option {
	return func(o *options) {
		if o == nil || pack == nil {
			return
		}

		o.fallback = pack
	}
}

func (o *options) packFor(fullMethod string) *eclair.LogPack {
	if pack, ok := o.packs[fullMethod]; ok {
		return pack
	}

	return o.fallback
}
