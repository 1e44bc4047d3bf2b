package software

// Option configures an Engine.
type Option func(*options)

type options struct {
	lutCacheSize int
}

func defaultOptions() options {
	return options{
		lutCacheSize: 64,
	}
}

// WithLUTCacheSize sets how many lighting lookup tables are memoized.
// Values <= 0 keep the default.
func WithLUTCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.lutCacheSize = n
		}
	}
}
