package usecase_test

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func latte() domain.ItemRef {
	return domain.ItemRef{MenuItemID: 7, ItemName: "Latte", Price: domain.MustMoney("4.50")}
}

func muffin() domain.ItemRef {
	return domain.ItemRef{MenuItemID: 9, ItemName: "Blueberry Muffin", Price: domain.MustMoney("3.00")}
}
