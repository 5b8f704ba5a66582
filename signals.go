package lenient

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for decoder events.
var (
	SignalDecoderCreated = capitan.NewSignal("lenient.decoder.created", "Decoder instantiated")
	SignalDecodeStart    = capitan.NewSignal("lenient.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("lenient.decode.complete", "Decode operation finished")
	SignalEncodeStart    = capitan.NewSignal("lenient.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("lenient.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType   = capitan.NewStringKey("content_type")
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
	KeyFallbackCount = capitan.NewIntKey("fallback_count")
	KeyOmittedCount  = capitan.NewIntKey("omitted_count")
)

// emitDecoderCreated emits an event when a decoder is created.
func emitDecoderCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecoderCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fallbacks int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFallbackCount.Field(fallbacks),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, omitted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyOmittedCount.Field(omitted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
