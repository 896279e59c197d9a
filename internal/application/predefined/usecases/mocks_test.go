package usecases

import (
	"context"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/logger"
)

type mockValueRepository struct {
	SaveFunc               func(ctx context.Context, v *predefined.Value) error
	UpdateFunc             func(ctx context.Context, v *predefined.Value) error
	DeleteFunc             func(ctx context.Context, id string) error
	FindByIDFunc           func(ctx context.Context, id string) (*predefined.Value, error)
	FindByTypeAndValueFunc func(ctx context.Context, valueType predefined.ValueType, value string) (*predefined.Value, error)
	ListByTypeFunc         func(ctx context.Context, valueType predefined.ValueType) ([]*predefined.Value, error)
	ListAllFunc            func(ctx context.Context) ([]*predefined.Value, error)
	UpdateSortOrderFunc    func(ctx context.Context, valueType predefined.ValueType, id string, sortOrder int) error
}

func (m *mockValueRepository) Save(ctx context.Context, v *predefined.Value) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, v)
	}
	return nil
}

func (m *mockValueRepository) Update(ctx context.Context, v *predefined.Value) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}

func (m *mockValueRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockValueRepository) FindByID(ctx context.Context, id string) (*predefined.Value, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockValueRepository) FindByTypeAndValue(ctx context.Context, valueType predefined.ValueType, value string) (*predefined.Value, error) {
	if m.FindByTypeAndValueFunc != nil {
		return m.FindByTypeAndValueFunc(ctx, valueType, value)
	}
	return nil, nil
}

func (m *mockValueRepository) ListByType(ctx context.Context, valueType predefined.ValueType) ([]*predefined.Value, error) {
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, valueType)
	}
	return nil, nil
}

func (m *mockValueRepository) ListAll(ctx context.Context) ([]*predefined.Value, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockValueRepository) UpdateSortOrder(ctx context.Context, valueType predefined.ValueType, id string, sortOrder int) error {
	if m.UpdateSortOrderFunc != nil {
		return m.UpdateSortOrderFunc(ctx, valueType, id, sortOrder)
	}
	return nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
