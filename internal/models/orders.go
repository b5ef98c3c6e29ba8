package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказов
const (
	OrderStatusPendingDispatch = "PENDING_DISPATCH"
	OrderStatusCompleted       = "COMPLETED"
	OrderStatusVoid            = "VOID"
	OrderStatusReturned        = "RETURNED"
	OrderStatusError           = "ERROR"
)

// Statuses - полный список статусов заказа
var Statuses = []string{
	OrderStatusPendingDispatch,
	OrderStatusCompleted,
	OrderStatusVoid,
	OrderStatusReturned,
	OrderStatusError,
}

// KnownStatus - проверяет, что статус входит в список допустимых
func KnownStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderData - модель заказа на выезд
type OrderData struct {
	ID                   int64           `json:"id"`
	OrderNo              string          `json:"order_no"`
	WorkOrderNo          string          `json:"work_order_no"`
	Status               string          `json:"status"`
	Mobile               string          `json:"mobile"`
	WorkPhone            string          `json:"work_phone"`
	CustomerName         string          `json:"customer_name"`
	DispatcherName       string          `json:"dispatcher_name"`
	RecorderName         string          `json:"recorder_name"`
	MasterName           string          `json:"master_name"`
	MasterPhone          string          `json:"master_phone"`
	ServiceItem          string          `json:"service_item"`
	ServiceRatio         string          `json:"service_ratio"`
	WarrantyPeriod       string          `json:"warranty_period"`
	Region               string          `json:"region"`
	Address              string          `json:"address"`
	Details              string          `json:"details"`
	Source               string          `json:"source"`
	HistoricalPrice      string          `json:"historical_price"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Cost                 decimal.Decimal `json:"cost"`
	Revenue              decimal.Decimal `json:"revenue"`
	ActualPaid           decimal.Decimal `json:"actual_paid"`
	AdvancePaymentAmount decimal.Decimal `json:"advance_payment_amount"`
	OtherReceipt         decimal.Decimal `json:"other_receipt"`
	CompletionIncome     decimal.Decimal `json:"completion_income"`
	GuidePrice           decimal.Decimal `json:"guide_price"`
	DepositAmount        decimal.Decimal `json:"deposit_amount"`
	HasAdvancePayment    bool            `json:"has_advance_payment"`
	IsReminded           bool            `json:"is_reminded"`
	HasCoupon            bool            `json:"has_coupon"`
	IsCouponVerified     bool            `json:"is_coupon_verified"`
	IsRead               bool            `json:"is_read"`
	IsCalled             bool            `json:"is_called"`
	RecordTime           time.Time       `json:"record_time"`
	DispatchTime         time.Time       `json:"dispatch_time"`
	ServiceTime          time.Time       `json:"service_time"`
	CompletionTime       time.Time       `json:"completion_time"`
	PaymentTime          time.Time       `json:"payment_time"`
	VoiderNameAndReason  string          `json:"voider_name_and_reason"`
	VoidDetails          string          `json:"void_details"`
	ReturnReason         string          `json:"return_reason"`
	ErrorDetail          string          `json:"error_detail"`
	FavoriteRemark       string          `json:"favorite_remark"`
}

// SettlementData - данные расчёта, собираемые при завершении заказа
type SettlementData struct {
	ActualPaid       decimal.Decimal `json:"actual_paid"`
	OtherReceipt     decimal.Decimal `json:"other_receipt"`
	CompletionIncome decimal.Decimal `json:"completion_income"`
	Remark           string          `json:"remark"`
}
