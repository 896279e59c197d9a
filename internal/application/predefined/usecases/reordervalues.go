package usecases

import (
	"context"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

// TxManager runs a function inside a single database transaction.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReorderValuesCommand struct {
	Type       string
	OrderedIDs []string
}

type ReorderValuesUseCase struct {
	valueRepo predefined.Repository
	txManager TxManager
	logger    logger.Interface
}

func NewReorderValuesUseCase(
	valueRepo predefined.Repository,
	txManager TxManager,
	logger logger.Interface,
) *ReorderValuesUseCase {
	return &ReorderValuesUseCase{
		valueRepo: valueRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute rewrites the sort order of a vocabulary to match OrderedIDs.
// All positions are updated in one transaction so a partial reorder is
// never observable. IDs belonging to another type are ignored by the
// repository update.
func (uc *ReorderValuesUseCase) Execute(ctx context.Context, cmd ReorderValuesCommand) error {
	valueType := predefined.ValueType(cmd.Type)
	if !valueType.IsValid() {
		return errors.NewValidationError("invalid value type")
	}
	if len(cmd.OrderedIDs) == 0 {
		return errors.NewValidationError("ordered IDs are required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, id := range cmd.OrderedIDs {
			if err := uc.valueRepo.UpdateSortOrder(txCtx, valueType, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reorder predefined values", "error", err, "type", cmd.Type)
		return err
	}

	uc.logger.Infow("predefined values reordered", "type", cmd.Type, "count", len(cmd.OrderedIDs))

	return nil
}
