package main

import "time"

type Config struct {
	Host                      string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port                      int           `env:"PORT,default=9001" validate:"min=1,max=65535"`
	LogLevel                  string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	OutboundBufferSize        int           `env:"OUTBOUND_BUFFER_SIZE,default=256" validate:"min=1"`
	WriteTimeout              time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	MaxLineLength             int           `env:"MAX_LINE_LENGTH,default=65536" validate:"min=64"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	CensoredWords             string        `env:"CENSORED_WORDS"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*" validate:"required"`
	MetricsAddr               string        `env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
	LowCapacityThreshold      int           `env:"LOW_CAPACITY_THRESHOLD,default=80" validate:"min=1,max=100"`
	HealthInterval            time.Duration `env:"HEALTH_INTERVAL,default=30s" validate:"gte=0"`
}
