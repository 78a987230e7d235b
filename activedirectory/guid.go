package activedirectory

import (
	"fmt"

	"github.com/google/uuid"
)

// GuidFromObjectGUID converts an Active Directory objectGUID value
// (little-endian ordering on the first three fields) into an
// RFC4122-compliant uuid.UUID.
func GuidFromObjectGUID(adGuid []byte) (uuid.UUID, error) {
	if len(adGuid) != 16 {
		return uuid.Nil, fmt.Errorf("invalid GUID: expected 16 bytes, got %d", len(adGuid))
	}

	rfcBytes := make([]byte, 16)
	copy(rfcBytes, adGuid)

	rfcBytes[0], rfcBytes[1], rfcBytes[2], rfcBytes[3] = rfcBytes[3], rfcBytes[2], rfcBytes[1], rfcBytes[0]
	rfcBytes[4], rfcBytes[5] = rfcBytes[5], rfcBytes[4]
	rfcBytes[6], rfcBytes[7] = rfcBytes[7], rfcBytes[6]

	return uuid.FromBytes(rfcBytes)
}
