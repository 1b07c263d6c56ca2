// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemKind names a family of vault items stored in one relation.
type ItemKind string

const (
	ItemKindCipher          ItemKind = "cipher"
	ItemKindFolder          ItemKind = "folder"
	ItemKindSend            ItemKind = "send"
	ItemKindCollection      ItemKind = "collection"
	ItemKindEmergencyAccess ItemKind = "emergency_access"
)
