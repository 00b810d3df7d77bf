package arena

import (
	"fmt"

	"github.com/sirkon/errors"
)

const (
	// DefaultChunkSize число слотов в одном блоке арены по умолчанию.
	DefaultChunkSize = 64

	// MinChunkSize минимально допустимый размер блока.
	MinChunkSize = 1

	// MaxChunkSize максимально допустимый размер блока.
	MaxChunkSize = 1 << 20
)

// Option тип опции для создания арены.
type Option interface {
	String() string
	apply(c *config) error
}

// WithChunkSize задаёт число слотов в блоке. Должно быть степенью двойки.
func WithChunkSize(size int) Option {
	return chunkSize(size)
}

// WithLogger задаёт логгер событий арены.
func WithLogger(logger Logger) Option {
	return loggerOption{logger: logger}
}

type config struct {
	chunkSize int
	logger    Logger
}

type chunkSize int

func (o chunkSize) String() string {
	return fmt.Sprintf("set arena chunk size to %d slots", int(o))
}

func (o chunkSize) apply(c *config) error {
	if o < MinChunkSize || o > MaxChunkSize {
		return errors.Newf("chunk size must be within [%d, %d]", MinChunkSize, MaxChunkSize).
			Int("chunk-size", int(o))
	}

	if o&(o-1) != 0 {
		return errors.New("chunk size must be a power of two").Int("chunk-size", int(o))
	}

	c.chunkSize = int(o)
	return nil
}

type loggerOption struct {
	logger Logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("set arena logger %T", o.logger)
}

func (o loggerOption) apply(c *config) error {
	if o.logger == nil {
		return errors.New("logger must not be nil")
	}

	c.logger = o.logger
	return nil
}
