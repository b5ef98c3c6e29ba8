package models

import "time"

// FilterCriteria - критерии панели поиска. Каждое заполненное поле
// сужает выборку по логическому "И".
type FilterCriteria struct {
	Keyword    string
	Statuses   []string
	From       *time.Time
	To         *time.Time
	Dispatcher string
	Source     string
}

// Empty - критерии без единого заполненного поля
func (c FilterCriteria) Empty() bool {
	return c.Keyword == "" && len(c.Statuses) == 0 &&
		c.From == nil && c.To == nil &&
		c.Dispatcher == "" && c.Source == ""
}
