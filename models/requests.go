// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RotateUserKeyRequest carries the new user key material and every personal
// vault item re-encrypted under it.
type RotateUserKeyRequest struct {
	// Key is the new user key encrypted with the master key.
	Key string `json:"key"`

	// PrivateKey is the user's private key encrypted with the new user key.
	PrivateKey string `json:"privateKey"`

	Ciphers         []Cipher          `json:"ciphers"`
	Folders         []Folder          `json:"folders"`
	Sends           []Send            `json:"sends"`
	EmergencyAccess []EmergencyAccess `json:"emergencyAccessKeys"`
}

// Relationship maps an item index (Key) to a container index (Value) inside
// the same import request, e.g. cipher 3 belongs to folder 0.
type Relationship struct {
	Key   int `json:"key"`
	Value int `json:"value"`
}

// ImportCiphersRequest is a personal vault import.
// FolderRelationships maps cipher index → folder index.
type ImportCiphersRequest struct {
	Folders             []Folder       `json:"folders"`
	Ciphers             []Cipher       `json:"ciphers"`
	FolderRelationships []Relationship `json:"folderRelationships"`
}

// ImportOrganizationCiphersRequest is an organization vault import.
// CollectionRelationships maps cipher index → collection index.
type ImportOrganizationCiphersRequest struct {
	Collections             []Collection   `json:"collections"`
	Ciphers                 []Cipher       `json:"ciphers"`
	CollectionRelationships []Relationship `json:"collectionRelationships"`
}

// ResyncCiphersRequest is a bulk update of existing personal ciphers.
type ResyncCiphersRequest struct {
	Ciphers []Cipher `json:"ciphers"`
}
