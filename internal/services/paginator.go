package services

import (
	"strconv"
	"strings"
)

// PageSizes - допустимые размеры страницы
var PageSizes = []int{10, 20, 50, 100}

const DefaultPageSize = 20

// Paginator - нарезка последовательности на страницы. Номер страницы
// одноимённо с таблицей начинается с единицы и всегда удерживается
// в допустимых границах.
type Paginator struct {
	pageSize int
	current  int
	total    int
}

// Создание пагинатора. Неизвестный размер страницы заменяется размером
// по умолчанию.
func NewPaginator(pageSize int) *Paginator {
	if !validPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, current: 1}
}

// SetTotal - обновляет длину последовательности и поджимает текущую страницу
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.clamp()
}

// SetPageSize - меняет размер страницы. Размер вне списка допустимых
// отклоняется без ошибки, текущий размер сохраняется.
func (p *Paginator) SetPageSize(pageSize int) bool {
	if !validPageSize(pageSize) {
		return false
	}
	p.pageSize = pageSize
	p.clamp()
	return true
}

// SetPage - переходит на страницу, выход за границы молча поджимается
func (p *Paginator) SetPage(page int) {
	p.current = page
	p.clamp()
}

// JumpTo - свободный ввод номера страницы. Нечисловой ввод или выход
// за границы отклоняется, пагинатор остаётся на текущей странице.
func (p *Paginator) JumpTo(input string) bool {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.current = page
	return true
}

// Bounds - полуоткрытое окно [lo, hi) текущей страницы
func (p *Paginator) Bounds() (int, int) {
	lo := (p.current - 1) * p.pageSize
	if lo > p.total {
		lo = p.total
	}
	hi := lo + p.pageSize
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

// TotalPages - число страниц, не меньше одной
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) Page() int     { return p.current }
func (p *Paginator) PageSize() int { return p.pageSize }
func (p *Paginator) Total() int    { return p.total }

func (p *Paginator) clamp() {
	if p.current < 1 {
		p.current = 1
	}
	if max := p.TotalPages(); p.current > max {
		p.current = max
	}
}

func validPageSize(pageSize int) bool {
	for _, s := range PageSizes {
		if s == pageSize {
			return true
		}
	}
	return false
}
