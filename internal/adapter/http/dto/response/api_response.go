package response

import "github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"

// Public messages of the quote-request endpoint. These strings are part of
// the API contract the site form depends on.
const (
	MsgQuoteRequestCreated = "Solicitação de orçamento enviada com sucesso!"
	MsgInvalidData         = "Dados inválidos"
	MsgInternalError       = "Erro interno do servidor"
)

// APIResponse is the envelope every quote-request response uses:
// {success, data?, message, errors?}.
type APIResponse struct {
	Success bool                  `json:"success"`
	Data    any                   `json:"data,omitempty"`
	Message string                `json:"message"`
	Errors  []entities.FieldError `json:"errors,omitempty"`
}

// QuoteRequestCreated is the 201 body for a persisted submission.
func QuoteRequestCreated(q entities.QuoteRequest) APIResponse {
	return APIResponse{
		Success: true,
		Data:    FromQuoteRequest(q),
		Message: MsgQuoteRequestCreated,
	}
}

// ValidationFailed is the 400 body enumerating every violated field.
func ValidationFailed(fields []entities.FieldError) APIResponse {
	return APIResponse{
		Success: false,
		Message: MsgInvalidData,
		Errors:  fields,
	}
}

// InternalError is the 500 body. Failure detail stays in the server log,
// never here.
func InternalError() APIResponse {
	return APIResponse{
		Success: false,
		Message: MsgInternalError,
	}
}
