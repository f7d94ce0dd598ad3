// Package identifier generates the short credentials handed to patients at
// registration time.
package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	patientIDPrefix = "PAT-"

	passwordLength   = 8
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NewPatientID returns an identifier of the form PAT-NNNNN with exactly
// five digits. Collisions are possible and must be handled by the caller
// through the storage-level unique constraint.
func NewPatientID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; there is no sane fallback.
		panic(fmt.Sprintf("identifier: read random source: %v", err))
	}
	return fmt.Sprintf("%s%d", patientIDPrefix, 10000+n.Int64())
}

// NewPassword returns an 8-character lowercase alphanumeric one-time
// password for patients who did not supply one.
func NewPassword() string {
	buf := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("identifier: read random source: %v", err))
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}
