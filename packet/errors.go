package packet

import (
	"errors"
	"fmt"
)

// UnrecognizedPacketError is returned when no packet type is registered for
// a (family, action) pair. Peers on another protocol revision send these
// routinely, so callers usually log and skip rather than disconnect.
type UnrecognizedPacketError struct {
	ID ID
}

func (e *UnrecognizedPacketError) Error() string {
	return fmt.Sprintf("eonet: unrecognized packet %v (family %d, action %d)",
		e.ID, uint8(e.ID.Family), uint8(e.ID.Action))
}

func IsUnrecognizedPacket(err error) bool {
	var ue *UnrecognizedPacketError
	return errors.As(err, &ue)
}
