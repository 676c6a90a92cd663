package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

// Códigos de erro expostos para a API
const (
	CodeInvalidPeriod  = apiErrors.ErrInvalidPeriod
	CodeInvalidGrowth  = apiErrors.ErrInvalidGrowth
	CodeSnapshotFailed = apiErrors.ErrDatabaseOperation
	CodeBaselineFailed = apiErrors.ErrDatabaseOperation
)

var (
	// Erros de validação
	ErrInvalidViewMode      = errors.New("modo de visualização inválido")
	ErrInvalidReferenceDate = errors.New("data de referência inválida")
	ErrInvalidDateRange     = errors.New("intervalo de datas inválido")
	ErrInvalidGrowth        = errors.New("percentual de crescimento inválido")

	// Erros de carga de dados
	ErrSnapshotUnavailable = errors.New("não foi possível carregar os registros do salão")
	ErrBaselineUnavailable = errors.New("não foi possível carregar a base histórica")
)

// ReportingError é um erro com contexto adicional para o painel
type ReportingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(err error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro decorre de parâmetros inválidos do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidViewMode) ||
		errors.Is(err, ErrInvalidReferenceDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidGrowth)
}
