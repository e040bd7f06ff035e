package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"pt-BR": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL           = "error.internal"
	ERROR_CONNECTION         = "error.connection"
	ERROR_NOT_FOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT    = "error.invalidargument"
	ERROR_INVALID_IDENTIFIER = "error.invalid.identifier"

	MESSAGE_RESOURCE_DELETED = "message.resource.deleted"
)
