package i18n

// messages holds the user-facing text per error code for each supported language.
//
//nolint:gochecknoglobals
var messages = map[string]map[string]string{
	"es": {
		"USER_NOT_FOUND":           "Usuario no encontrado",
		"EMAIL_ALREADY_REGISTERED": "El email ya está registrado",
		"USER_CREATION_FAILED":     "Error al registrar usuario",
		"USER_UPDATE_FAILED":       "Error al actualizar usuario",
		"INVALID_CREDENTIALS":      "Credenciales inválidas",
		"UNAUTHORIZED":             "Autenticación requerida",
		"REFRESH_TOKEN_INVALID":    "Token de sesión inválido o expirado",
		"SESSION_LIMIT_EXCEEDED":   "Se alcanzó el número máximo de sesiones activas",
		"PASSWORD_HASH_FAILED":     "Error al procesar la contraseña",
		"VALIDATION_FAILED":        "Datos de entrada inválidos",
		"MISSING_FIELD":            "Falta un campo requerido",
		"NO_FIELDS_TO_UPDATE":      "No hay campos para actualizar",
		"INVALID_ID":               "ID requerido o inválido",
		"INVALID_CATEGORY":         "Categoría no válida",
		"TOO_MANY_IMAGES":          "Demasiadas imágenes para el juego",
		"INVALID_REFERENCE":        "El usuario o juego referenciado no existe",
		"GAME_NOT_FOUND":           "Juego no encontrado",
		"INVALID_TRANSITION":       "Transición de estado no permitida",
		"UNSUPPORTED_MEDIA":        "Tipo de archivo no soportado",
		"UPLOAD_TOO_LARGE":         "El archivo es demasiado grande",
		"STORAGE_FAILED":           "Error al guardar el archivo",
		"DEVICE_NOT_FOUND":         "Dispositivo no encontrado",
		"PHONE_NOT_SET":            "El estudio no tiene un teléfono registrado",
		"INTERNAL_ERROR":           "Error interno del servidor",
		"FORBIDDEN":                "Acceso denegado",
		"NOT_FOUND":                "Recurso no encontrado",
		"METHOD_NOT_ALLOWED":       "Método no permitido",
		"DATABASE_EXECUTE_FAILED":  "Error en la base de datos",
		"REQUEST_ENTITY_TOO_LARGE": "La solicitud es demasiado grande",
		"NOTIFY_TITLE":             "Moderación de blvgames.bo",
	},
	"en": {
		"USER_NOT_FOUND":           "User not found",
		"EMAIL_ALREADY_REGISTERED": "Email is already registered",
		"USER_CREATION_FAILED":     "Failed to register user",
		"USER_UPDATE_FAILED":       "Failed to update user",
		"INVALID_CREDENTIALS":      "Invalid credentials",
		"UNAUTHORIZED":             "Authentication required",
		"REFRESH_TOKEN_INVALID":    "Session token is invalid or expired",
		"SESSION_LIMIT_EXCEEDED":   "Maximum number of active sessions reached",
		"PASSWORD_HASH_FAILED":     "Failed to process password",
		"VALIDATION_FAILED":        "Invalid input data",
		"MISSING_FIELD":            "A required field is missing",
		"NO_FIELDS_TO_UPDATE":      "No fields to update",
		"INVALID_ID":               "Missing or invalid ID",
		"INVALID_CATEGORY":         "Invalid category",
		"TOO_MANY_IMAGES":          "Too many images for the game",
		"INVALID_REFERENCE":        "The referenced user or game does not exist",
		"GAME_NOT_FOUND":           "Game not found",
		"INVALID_TRANSITION":       "Status transition not allowed",
		"UNSUPPORTED_MEDIA":        "Unsupported file type",
		"UPLOAD_TOO_LARGE":         "File is too large",
		"STORAGE_FAILED":           "Failed to store file",
		"DEVICE_NOT_FOUND":         "Device not found",
		"PHONE_NOT_SET":            "The studio has no phone number",
		"INTERNAL_ERROR":           "Internal server error",
		"FORBIDDEN":                "Access denied",
		"NOT_FOUND":                "Resource not found",
		"METHOD_NOT_ALLOWED":       "Method not allowed",
		"DATABASE_EXECUTE_FAILED":  "Database error",
		"REQUEST_ENTITY_TOO_LARGE": "Request body is too large",
		"NOTIFY_TITLE":             "blvgames.bo moderation",
	},
}

// argMessages are the parameterized variants used when an error carries message args.
//
//nolint:gochecknoglobals
var argMessages = map[string]map[string]string{
	"es": {
		"MISSING_FIELD":           "El campo '%s' es requerido",
		"VALIDATION_FAILED":       "Datos de entrada inválidos: %s",
		"NOTIFY_LISTING_approved": "Tu juego %s fue aprobado y ya es público",
		"NOTIFY_LISTING_rejected": "Tu juego %s fue rechazado",
		"NOTIFY_LISTING_pending":  "Tu juego %s volvió a revisión",
	},
	"en": {
		"MISSING_FIELD":           "The field '%s' is required",
		"VALIDATION_FAILED":       "Invalid input data: %s",
		"NOTIFY_LISTING_approved": "Your game %s was approved and is now public",
		"NOTIFY_LISTING_rejected": "Your game %s was rejected",
		"NOTIFY_LISTING_pending":  "Your game %s is back in review",
	},
}
