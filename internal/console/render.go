package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/denmor86/dispatch-board/internal/helpers"
	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/services"
)

// renderOrders - страница таблицы заказов
func (c *Console) renderOrders(orders []models.OrderData) {
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER NO\tMOBILE\tITEM\tSTATUS\tREGION\tMASTER\tTOTAL\tREMINDED\tREAD")
	for _, order := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			order.ID,
			order.OrderNo,
			helpers.MaskMobile(order.Mobile),
			order.ServiceItem,
			order.Status,
			order.Region,
			order.MasterName,
			helpers.FormatMoney(order.TotalAmount),
			helpers.YesNo(order.IsReminded),
			helpers.YesNo(order.IsRead),
		)
	}
	w.Flush()
}

func (c *Console) renderFooter() {
	fmt.Fprintf(c.out, "page %d/%d, %d items, %d per page\n",
		c.Paginator.Page(), c.Paginator.TotalPages(), c.Paginator.Total(), c.Paginator.PageSize())
}

// renderDetail - карточка заказа
func (c *Console) renderDetail(order *models.OrderData) {
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "order no\t%s / %s\n", order.OrderNo, order.WorkOrderNo)
	fmt.Fprintf(w, "status\t%s\n", order.Status)
	fmt.Fprintf(w, "customer\t%s (%s)\n", order.CustomerName, helpers.MaskMobile(order.Mobile))
	fmt.Fprintf(w, "service\t%s, ratio %s, warranty %s\n", order.ServiceItem, order.ServiceRatio, order.WarrantyPeriod)
	fmt.Fprintf(w, "address\t%s, %s\n", order.Region, order.Address)
	fmt.Fprintf(w, "details\t%s\n", order.Details)
	fmt.Fprintf(w, "source\t%s\n", order.Source)
	fmt.Fprintf(w, "people\tdispatcher %s, recorder %s, master %s\n", order.DispatcherName, order.RecorderName, order.MasterName)
	fmt.Fprintf(w, "money\ttotal %s, cost %s, revenue %s, paid %s, income %s\n",
		helpers.FormatMoney(order.TotalAmount), helpers.FormatMoney(order.Cost),
		helpers.FormatMoney(order.Revenue), helpers.FormatMoney(order.ActualPaid),
		helpers.FormatMoney(order.CompletionIncome))
	fmt.Fprintf(w, "times\trecorded %s, dispatch %s, completed %s\n",
		helpers.FormatDate(order.RecordTime), helpers.FormatDate(order.DispatchTime),
		helpers.FormatDate(order.CompletionTime))
	if order.VoiderNameAndReason != "" {
		fmt.Fprintf(w, "voided\t%s\n", order.VoiderNameAndReason)
	}
	if order.ReturnReason != "" {
		fmt.Fprintf(w, "returned\t%s\n", order.ReturnReason)
	}
	if order.ErrorDetail != "" {
		fmt.Fprintf(w, "error\t%s\n", order.ErrorDetail)
	}
	w.Flush()
}

// renderReport - страница табличного отчёта
func (c *Console) renderReport(table *models.ReportTable) {
	fmt.Fprintf(c.out, "-- %s --\n", table.Title)
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	for i, header := range table.Headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, header)
	}
	fmt.Fprintln(w)
	for _, row := range table.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// renderOverview - строка сводных показателей
func (c *Console) renderOverview(data *services.OverviewData) {
	fmt.Fprintf(c.out, "orders: %d (pending %d, completed %d, void %d, returned %d, error %d), reminded %d\n",
		data.Total, data.Pending, data.Completed, data.Void, data.Returned, data.Errors, data.Reminded)
	fmt.Fprintf(c.out, "amounts: total %s, revenue %s, completion income %s\n",
		helpers.FormatMoney(data.TotalAmount), helpers.FormatMoney(data.Revenue),
		helpers.FormatMoney(data.CompletionIncome))
}
