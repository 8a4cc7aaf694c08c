package yielding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
)

// Erros específicos para o contexto de yield
var (
	// Erros de validação
	ErrValidation        = errors.New("invalid strategy")
	ErrInvalidDateRange  = errors.New("valid_from must not be after valid_to")
	ErrStrategyNameEmpty = errors.New("strategy name is required")

	// Erros de consulta
	ErrStrategyNotFound = errors.New("strategy not found")

	// Erros de serviços externos
	ErrUpstreamFetch  = errors.New("error fetching data from upstream provider")
	ErrActionExecutor = errors.New("error executing action on pricing system")

	// Erros de banco de dados
	ErrPersistStrategy = errors.New("error persisting strategy")
)

// YieldError é um erro com contexto adicional para o motor de yield
type YieldError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	StrategyID string // ID da estratégia envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *YieldError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *YieldError) Unwrap() error {
	return e.Err
}

// NewYieldError cria um novo YieldError
func NewYieldError(err error, code string, details string) *YieldError {
	return &YieldError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewYieldErrorWithID cria um novo YieldError com ID da estratégia
func NewYieldErrorWithID(err error, code string, strategyID string, details string) *YieldError {
	return &YieldError{
		Err:        err,
		Code:       code,
		StrategyID: strategyID,
		Details:    details,
	}
}

func newValidationError(cause error, details string) *YieldError {
	return NewYieldError(fmt.Errorf("%w: %w", ErrValidation, cause), apiErrors.ErrInvalidStrategy, details)
}

func newNotFoundError(strategyID string) *YieldError {
	return NewYieldErrorWithID(ErrStrategyNotFound, apiErrors.ErrStrategyNotFound, strategyID, fmt.Sprintf("estratégia %s não existe", strategyID))
}

func newUpstreamError(cause error, details string) *YieldError {
	return NewYieldError(fmt.Errorf("%w: %w", ErrUpstreamFetch, cause), apiErrors.ErrUpstreamUnavailable, details)
}

// IsValidationError indica se o erro é de definição inválida de estratégia
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError indica se o erro é de estratégia inexistente
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrStrategyNotFound)
}

// IsUpstreamError indica se o erro veio da falha de um provedor externo
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamFetch)
}
