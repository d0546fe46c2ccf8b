// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway's HTTP handlers and middleware.
//
// All Msg* constants are the human-readable strings written into the "error"
// or "message" field of JSON responses. Existing clients display them
// verbatim, so the wording is kept in Spanish.
package app

const (
	// MsgTokenRequired is returned when the "Authorization" header is absent
	// or does not carry a bearer token.
	MsgTokenRequired = "Token requerido"

	// MsgInvalidSession is returned for any token the session gate rejects:
	// superseded by a newer login, expired, forged or belonging to a deleted
	// account.
	MsgInvalidSession = "Sesión inválida. Es posible que se haya iniciado sesión en otro dispositivo."

	// MsgInvalidCredentials is returned by login for an unknown username or a
	// wrong password.
	MsgInvalidCredentials = "Credenciales inválidas"

	// MsgAdminOnly is returned when a non-admin calls an admin route.
	MsgAdminOnly = "Acceso restringido a administradores"

	MsgInvalidJSON = "JSON inválido"

	// MsgInvalidDataProvided is the fallback for validation failures without
	// a dedicated message.
	MsgInvalidDataProvided = "Datos inválidos"

	MsgLoginFieldsRequired = "Campos requeridos: username, password"

	MsgUserFieldsRequired = "Campos requeridos: username, password, nombre, apellido"

	MsgInvalidRole = "Rol inválido"

	MsgNoFieldsToUpdate = "No se proporcionaron campos para actualizar"

	// MsgSelfDeletion is returned when an admin tries to delete the account
	// they are logged in with.
	MsgSelfDeletion = "No puedes eliminar tu propia cuenta de administrador"

	MsgUserNotFound = "Usuario no encontrado"

	MsgUserAlreadyExists = "El usuario ya existe"

	MsgInvalidDNI = "DNI inválido"

	MsgNameQueryRequired = "Parámetros requeridos: nombres, ap_pat, ap_mat"

	// MsgConsistencyError is returned when a user disappears between two
	// steps of the same request.
	MsgConsistencyError = "Error de consistencia de datos"

	// MsgInternalServerError hides upstream and storage failures from
	// callers.
	MsgInternalServerError = "Error interno del servidor"

	MsgEndpointNotFound = "Endpoint no encontrado. Verifica la ruta y el método HTTP."

	MsgLogoutSucceeded = "Sesión cerrada exitosamente"

	MsgUserDeleted = "Usuario eliminado"

	MsgHealthOK = "API funcionando correctamente"
)
