package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	UserTitle    string `json:"error_user_title,omitempty"`
	UserMessage  string `json:"error_user_msg,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// GraphError é o erro devolvido pelo cliente quando a Graph API responde com status diferente de 2xx
type GraphError struct {
	StatusCode int
	Details    ErrorDetails
}

// Error devolve a mensagem que o Meta mostra ao anunciante, quando existir
func (e *GraphError) Error() string {
	if e.Details.UserMessage != "" {
		return e.Details.UserMessage
	}
	if e.Details.Message != "" {
		return e.Details.Message
	}
	return fmt.Sprintf("erro na resposta da API. Status: %d", e.StatusCode)
}

func (e *GraphError) IsTokenExpired() bool {
	return e.Details.IsTokenExpired()
}

// Retryable indica falhas transitórias do Meta (rate limit e erros internos)
func (e *GraphError) Retryable() bool {
	if e.StatusCode >= 500 {
		return true
	}
	switch e.Details.Code {
	case 1, 2, 4, 17, 32, 613:
		return true
	}
	return false
}
