package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrChannelClosed is returned when a line is sent to an outbound channel whose connection is gone.
	ErrChannelClosed = fmt.Errorf("outbound channel closed")
	// ErrSlowConsumer is returned by a channel closed because its client stopped reading.
	ErrSlowConsumer = fmt.Errorf("client not reading, slow consumer evicted")

	ErrEmptyName        = fmt.Errorf("display name is empty")
	ErrNameDelimiter    = fmt.Errorf("display name contains the directed message delimiter")
	ErrInvalidCharacter = fmt.Errorf("replacement must be a single character")
)
