// Package logging реализация arena.Logger поверх zap.
package logging

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"go.uber.org/zap"

	"github.com/sirkon/chains/internal/arena"
)

// Zap логирование событий арены в zap.Logger. Рост арены пишется на уровне
// Debug, нарушения инвариантов на уровне Error вместе с контекстом ошибки.
type Zap struct {
	log *zap.Logger
}

// NewZap конструктор логгера. Пустой log заменяется на zap.NewNop.
func NewZap(log *zap.Logger) *Zap {
	if log == nil {
		log = zap.NewNop()
	}

	return &Zap{
		log: log,
	}
}

// ArenaGrown для реализации arena.Logger.
func (l *Zap) ArenaGrown(id uuid.UUID, chunks, capacity int) {
	l.log.Debug(
		"arena grown",
		zap.Stringer("arena-id", id),
		zap.Int("chunks", chunks),
		zap.Int("capacity", capacity),
	)
}

// InvariantViolated для реализации arena.Logger.
func (l *Zap) InvariantViolated(id uuid.UUID, err error) {
	fields := []zap.Field{
		zap.Stringer("arena-id", id),
		zap.Error(err),
	}

	if d := errors.GetContextDeliverer(err); d != nil {
		c := fieldsConsumer{
			fields: fields,
		}
		d.Deliver(&c)
		fields = c.fields
	}

	l.log.Error("invariant violated", fields...)
}

// fieldsConsumer переводит контекст ошибки в поля zap.
type fieldsConsumer struct {
	fields []zap.Field
}

func (c *fieldsConsumer) add(f zap.Field) {
	c.fields = append(c.fields, f)
}

func (c *fieldsConsumer) Bool(name string, value bool)       { c.add(zap.Bool(name, value)) }
func (c *fieldsConsumer) Int(name string, value int)         { c.add(zap.Int(name, value)) }
func (c *fieldsConsumer) Int8(name string, value int8)       { c.add(zap.Int8(name, value)) }
func (c *fieldsConsumer) Int16(name string, value int16)     { c.add(zap.Int16(name, value)) }
func (c *fieldsConsumer) Int32(name string, value int32)     { c.add(zap.Int32(name, value)) }
func (c *fieldsConsumer) Int64(name string, value int64)     { c.add(zap.Int64(name, value)) }
func (c *fieldsConsumer) Uint(name string, value uint)       { c.add(zap.Uint(name, value)) }
func (c *fieldsConsumer) Uint8(name string, value uint8)     { c.add(zap.Uint8(name, value)) }
func (c *fieldsConsumer) Uint16(name string, value uint16)   { c.add(zap.Uint16(name, value)) }
func (c *fieldsConsumer) Uint32(name string, value uint32)   { c.add(zap.Uint32(name, value)) }
func (c *fieldsConsumer) Uint64(name string, value uint64)   { c.add(zap.Uint64(name, value)) }
func (c *fieldsConsumer) Float32(name string, value float32) { c.add(zap.Float32(name, value)) }
func (c *fieldsConsumer) Float64(name string, value float64) { c.add(zap.Float64(name, value)) }
func (c *fieldsConsumer) String(name string, value string)   { c.add(zap.String(name, value)) }
func (c *fieldsConsumer) Any(name string, value interface{}) { c.add(zap.Any(name, value)) }

var (
	_ arena.Logger                = &Zap{}
	_ errors.ErrorContextConsumer = &fieldsConsumer{}
)
