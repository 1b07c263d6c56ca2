// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// KeyRotationServiceWrapper defines middleware composition for
// KeyRotationService, e.g. request validation.
type KeyRotationServiceWrapper interface {
	Wrap(KeyRotationService) KeyRotationService
}

// ImportServiceWrapper defines middleware composition for ImportService.
type ImportServiceWrapper interface {
	Wrap(ImportService) ImportService
}

// CipherServiceWrapper defines middleware composition for CipherService.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService
}
