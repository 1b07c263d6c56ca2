// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. It signs outbound push relay payloads.
//
// Example usage:
//
//	signature := utils.HashBytes(body, "relay-key")
func HashBytes(data []byte, hashKey string) string {
	return hex.EncodeToString(sign(data, hashKey))
}

// VerifyHash reports whether signature is the hex HMAC-SHA256 of data under
// hashKey. The comparison is constant-time.
func VerifyHash(data []byte, signature, hashKey string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, sign(data, hashKey))
}

func sign(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
