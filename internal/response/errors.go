package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrClassNotFound ErrCode = "CLASS_NOT_FOUND"
	ErrInvalidDate   ErrCode = "INVALID_DATE"

	// ─── AI generation ─────────────────────────────────────────────────
	ErrGenerationPending ErrCode = "GENERATION_IN_PROGRESS"
	ErrGenerationBlocked ErrCode = "GENERATION_BLOCKED"
	ErrGenerationFailed  ErrCode = "GENERATION_FAILED"
	ErrNoAssessmentData  ErrCode = "NO_ASSESSMENT_DATA"
	ErrGeneratorDisabled ErrCode = "GENERATOR_DISABLED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "E-mail ou senha incorretos."
	case ErrTokenRequired:
		return "Token de autenticação obrigatório."
	case ErrTokenInvalid:
		return "Token de autenticação inválido."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Falha na validação. Verifique os campos informados."
	case ErrInvalidID:
		return "Formato de ID inválido."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Registro não encontrado."
	case ErrClassNotFound:
		return "A turma informada não existe."
	case ErrInvalidDate:
		return "A data deve estar no formato AAAA-MM-DD."

	// ─── AI generation ─────────────────────────────────────────────────
	case ErrGenerationPending:
		return "Já existe uma geração em andamento para este aluno. Aguarde a conclusão."
	case ErrGenerationBlocked:
		return "O conteúdo foi bloqueado pelos filtros de segurança."
	case ErrGenerationFailed:
		return "Não foi possível gerar o texto. Tente novamente."
	case ErrNoAssessmentData:
		return "O aluno ainda não possui avaliações registradas."
	case ErrGeneratorDisabled:
		return "A geração por IA não está configurada neste servidor."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Muitas requisições. Tente novamente em instantes."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocorreu um erro interno no servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
