// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumAddress validates a hex wallet address and returns it in EIP-55
// mixed-case form.
//
// All-lowercase and all-uppercase input is accepted as is. Mixed-case input
// must already carry a correct checksum.
//
// Failures are returned as *Error of type client.
func ChecksumAddress(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		return "", clientError(fmt.Sprintf("address %q must start with 0x", addr))
	}
	digits := trimmed[2:]
	if len(digits) != 40 {
		return "", clientError(fmt.Sprintf("address %q must have 40 hex digits", addr))
	}
	if _, err := hex.DecodeString(digits); err != nil {
		return "", clientError(fmt.Sprintf("address %q is not hex", addr))
	}

	lower := strings.ToLower(digits)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	checksummed := "0x" + string(out)

	if digits != lower && digits != strings.ToUpper(digits) && "0x"+digits != checksummed {
		return "", clientError(fmt.Sprintf("address %q has an invalid checksum", addr))
	}
	return checksummed, nil
}
