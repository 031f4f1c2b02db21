package monitor

import "log/slog"

// Option configures a Lister.
type Option interface {
	IsOption()
}

// WithLogger routes the Lister's debug logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return &loggerOption{logger: logger}
}

type loggerOption struct{ logger *slog.Logger }

func (*loggerOption) IsOption()              {}
func (o *loggerOption) Logger() *slog.Logger { return o.logger }

// WithBytesWidth pads the hex column of listing lines to n instruction
// bytes. The default fits a four-byte word.
func WithBytesWidth(n int) Option {
	return &bytesWidthOption{n: n}
}

type bytesWidthOption struct{ n int }

func (*bytesWidthOption) IsOption()    {}
func (o *bytesWidthOption) Width() int { return o.n }

// listerConfig holds parsed Lister options.
type listerConfig struct {
	logger *slog.Logger
	width  int
}

func defaultListerConfig() listerConfig {
	return listerConfig{
		logger: slog.Default(),
		width:  4,
	}
}

// parseListerOptions extracts configuration from an Option slice.
func parseListerOptions(opts []Option) listerConfig {
	cfg := defaultListerConfig()
	for _, opt := range opts {
		switch o := opt.(type) {
		case interface{ Logger() *slog.Logger }:
			if o.Logger() != nil {
				cfg.logger = o.Logger()
			}
		case interface{ Width() int }:
			if o.Width() > 0 {
				cfg.width = o.Width()
			}
		}
	}
	return cfg
}
