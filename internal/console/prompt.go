package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/shopspring/decimal"
)

// Подтверждающие диалоги диспетчера действий. Пустой ввод на первом
// вопросе означает отмену - никакое состояние при этом не меняется.

// CollectSettlement - сбор данных расчёта для завершения заказа
func (c *Console) CollectSettlement(_ context.Context, order models.OrderData) (*models.SettlementData, error) {
	fmt.Fprintf(c.out, "completing order %d (%s), total %s; empty input cancels\n",
		order.ID, order.OrderNo, order.TotalAmount.String())

	actualPaid, cancelled, err := c.askMoneyOrCancel("actual paid: ")
	if err != nil || cancelled {
		return nil, err
	}
	otherReceipt, cancelled, err := c.askMoneyOrCancel("other receipt: ")
	if err != nil || cancelled {
		return nil, err
	}
	income, cancelled, err := c.askMoneyOrCancel("completion income: ")
	if err != nil || cancelled {
		return nil, err
	}
	remark := c.ask("remark: ")

	if !strings.EqualFold(c.ask("confirm completion? [y/N]: "), "y") {
		return nil, nil
	}
	return &models.SettlementData{
		ActualPaid:       actualPaid,
		OtherReceipt:     otherReceipt,
		CompletionIncome: income,
		Remark:           remark,
	}, nil
}

// CollectVoidReason - подтверждение аннулирования с причиной
func (c *Console) CollectVoidReason(_ context.Context, order models.OrderData) (string, bool, error) {
	fmt.Fprintf(c.out, "voiding order %d (%s); empty reason cancels\n", order.ID, order.OrderNo)
	reason := c.ask("reason: ")
	if reason == "" {
		return "", false, nil
	}
	if !strings.EqualFold(c.ask("confirm void? [y/N]: "), "y") {
		return "", false, nil
	}
	return reason, true, nil
}

func (c *Console) askMoney(prompt string) (decimal.Decimal, error) {
	input := c.ask(prompt)
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", input, err)
	}
	return amount, nil
}

// askMoneyOrCancel - денежный ввод, пустая строка - отмена
func (c *Console) askMoneyOrCancel(prompt string) (decimal.Decimal, bool, error) {
	input := c.ask(prompt)
	if input == "" {
		return decimal.Zero, true, nil
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("amount %q: %w", input, err)
	}
	return amount, false, nil
}
