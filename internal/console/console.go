package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/denmor86/dispatch-board/internal/chat"
	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/reports"
	"github.com/denmor86/dispatch-board/internal/services"
	"github.com/denmor86/dispatch-board/internal/storage"
	"github.com/denmor86/dispatch-board/internal/validators"
)

// Console - строчный интерфейс пульта заказов. Все мутации идут через
// диспетчер действий, консоль же реализует подтверждающие диалоги.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	Dispatcher *services.Dispatcher
	Projection *services.Projection
	Paginator  *services.Paginator
	Overview   *services.Overview
	Reports    *reports.Registry
	Chats      *chat.Manager
	Orders     storage.OrdersStorage

	criteria models.FilterCriteria
}

// Создание консоли
func New(in io.Reader, out io.Writer,
	projection *services.Projection,
	paginator *services.Paginator,
	overview *services.Overview,
	registry *reports.Registry,
	chats *chat.Manager,
	orders storage.OrdersStorage) *Console {

	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		Projection: projection,
		Paginator:  paginator,
		Overview:   overview,
		Reports:    registry,
		Chats:      chats,
		Orders:     orders,
	}
}

// Run - цикл команд до "quit" или конца ввода
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "dispatch board, type 'help' for commands")
	if err := c.list(ctx); err != nil {
		return err
	}
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := c.execute(ctx, line); err != nil {
			fmt.Fprintln(c.out, "error:", userMessage(err))
		}
	}
}

func (c *Console) execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		c.printHelp()
		return nil
	case "list":
		return c.list(ctx)
	case "page":
		if len(args) != 1 {
			return errUsage("page <n>")
		}
		// свободный ввод: отказ возвращает на текущую страницу
		if !c.Paginator.JumpTo(args[0]) {
			fmt.Fprintf(c.out, "staying on page %d\n", c.Paginator.Page())
			return nil
		}
		return c.list(ctx)
	case "size":
		if len(args) != 1 {
			return errUsage("size <10|20|50|100>")
		}
		size, err := strconv.Atoi(args[0])
		if err != nil || !c.Paginator.SetPageSize(size) {
			fmt.Fprintf(c.out, "keeping page size %d\n", c.Paginator.PageSize())
			return nil
		}
		return c.list(ctx)
	case "filter":
		if err := c.parseFilter(args); err != nil {
			return err
		}
		c.Paginator.SetPage(1)
		return c.list(ctx)
	case "reset":
		c.criteria = models.FilterCriteria{}
		c.Paginator.SetPage(1)
		return c.list(ctx)
	case "overview":
		return c.overview(ctx)
	case "remind", "complete", "void", "detail", "contact", "verify":
		if len(args) != 1 {
			return errUsage(cmd + " <id>")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errUsage(cmd + " <id>")
		}
		return c.action(ctx, services.ActionKind(cmd), id)
	case "chat":
		if len(args) < 3 {
			return errUsage("chat <customer|master|dispatcher> <id> <text>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage("chat <customer|master|dispatcher> <id> <text>")
		}
		return c.chat(ctx, args[0], id, strings.Join(args[2:], " "))
	case "record":
		return c.record(ctx)
	case "tabs":
		return c.tabs(ctx)
	case "tab":
		if len(args) < 1 {
			return errUsage("tab <name> [keyword]")
		}
		keyword := ""
		if len(args) > 1 {
			keyword = strings.Join(args[1:], " ")
		}
		return c.reportTab(ctx, args[0], keyword)
	default:
		return fmt.Errorf("command %q: %w", cmd, services.ErrUnsupportedAction)
	}
}

// list - текущая страница проекции
func (c *Console) list(ctx context.Context) error {
	orders, err := c.Projection.Project(ctx, c.criteria)
	if err != nil {
		return err
	}
	c.Paginator.SetTotal(len(orders))
	lo, hi := c.Paginator.Bounds()
	c.renderOrders(orders[lo:hi])
	c.renderFooter()
	return nil
}

// action - действие над заказом через диспетчер
func (c *Console) action(ctx context.Context, kind services.ActionKind, id int64) error {
	order, err := c.Dispatcher.Dispatch(ctx, kind, id)
	if err != nil {
		if errors.Is(err, services.ErrActionCancelled) {
			fmt.Fprintln(c.out, "cancelled")
			return nil
		}
		return err
	}

	switch kind {
	case services.ActionDetail:
		c.renderDetail(order)
	case services.ActionContact:
		// по умолчанию открывается канал связи с клиентом
		if _, err := c.Chats.Open(chat.RoleCustomer, *order); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "chat with customer of order %d is open\n", order.ID)
	default:
		fmt.Fprintf(c.out, "order %d: %s done\n", order.ID, kind)
	}
	return c.list(ctx)
}

func (c *Console) chat(ctx context.Context, role string, id int64, text string) error {
	order, err := c.Orders.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if _, err = c.Chats.Open(role, *order); err != nil {
		return err
	}
	message, err := c.Chats.Send(ctx, role, id, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "[%s] %s: %s\n", message.At.Format("15:04:05"), role, message.Text)
	return nil
}

// record - заведение нового заказа оператором
func (c *Console) record(ctx context.Context) error {
	mobile := c.ask("mobile: ")
	if !validators.CheckMobile(mobile) {
		return fmt.Errorf("invalid mobile %q", mobile)
	}
	order := models.OrderData{
		Mobile:       mobile,
		CustomerName: c.ask("customer: "),
		ServiceItem:  c.ask("service item: "),
		Region:       c.ask("region: "),
		Address:      c.ask("address: "),
		Source:       c.ask("source: "),
	}
	amount, err := c.askMoney("total amount: ")
	if err != nil {
		return err
	}
	order.TotalAmount = amount
	order.OrderNo = time.Now().Format("20060102150405")

	id, err := c.Orders.AddOrder(ctx, order)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "order %d recorded\n", id)
	return c.list(ctx)
}

func (c *Console) tabs(ctx context.Context) error {
	names, err := c.Reports.Tabs(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "report tabs:", strings.Join(names, ", "))
	return nil
}

func (c *Console) reportTab(ctx context.Context, name string, keyword string) error {
	table, err := c.Reports.View(ctx, name, keyword, c.Paginator)
	if err != nil {
		return err
	}
	c.renderReport(table)
	c.renderFooter()
	return nil
}

func (c *Console) overview(ctx context.Context) error {
	data, err := c.Overview.Snapshot(ctx)
	if err != nil {
		return err
	}
	c.renderOverview(data)
	return nil
}

// parseFilter - разбор пар ключ=значение панели поиска
func (c *Console) parseFilter(args []string) error {
	criteria := c.criteria
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return errUsage("filter key=value ...")
		}
		switch key {
		case "keyword":
			criteria.Keyword = value
		case "status":
			criteria.Statuses = nil
			for _, status := range strings.Split(value, ",") {
				status = strings.ToUpper(status)
				if !models.KnownStatus(status) {
					return fmt.Errorf("status %q: %w", status, storage.ErrUnknownStatus)
				}
				criteria.Statuses = append(criteria.Statuses, status)
			}
		case "from", "to":
			day, err := time.Parse("2006-01-02", value)
			if err != nil {
				return errUsage("filter " + key + "=YYYY-MM-DD")
			}
			if key == "from" {
				criteria.From = &day
			} else {
				end := day.Add(24*time.Hour - time.Nanosecond)
				criteria.To = &end
			}
		case "dispatcher":
			criteria.Dispatcher = value
		case "source":
			criteria.Source = value
		default:
			return fmt.Errorf("filter key %q: %w", key, services.ErrUnsupportedAction)
		}
	}
	c.criteria = criteria
	return nil
}

func (c *Console) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func errUsage(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

// userMessage - пользовательский текст для типизированных отказов
func userMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return "order not found"
	case errors.Is(err, storage.ErrInvalidTransition):
		return "action is not allowed in the current status: " + err.Error()
	case errors.Is(err, services.ErrUnsupportedAction):
		return "unknown command, type 'help'"
	case errors.Is(err, chat.ErrRateLimited):
		return "too many messages, slow down"
	default:
		return err.Error()
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  list                         show current page
  page <n>                     go to page (invalid input keeps the page)
  size <10|20|50|100>          change page size
  filter key=value ...         keyword/status/from/to/dispatcher/source
  reset                        drop filters
  overview                     totals by status
  remind|complete|void <id>    order actions (with confirmation)
  detail|contact|verify <id>   view details / open chat / verify coupon
  chat <role> <id> <text>      send message (customer|master|dispatcher)
  record                       record a new order
  tabs | tab <name> [keyword]  report tabs
  quit
`)
}
