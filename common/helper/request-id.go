package helper

import (
	"fmt"

	"github.com/smartwalle/xid"
)

const (
	RequestIdKey = "X-Workky-Request-Id"
	StartTimeKey = "X-Workky-Start-Time"
)

func GenRequestID() string {
	return fmt.Sprintf("%d", xid.Next())
}

func MessageWithRequestId(message string, id string) string {
	return fmt.Sprintf("%s (request id: %s)", message, id)
}
