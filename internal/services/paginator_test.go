package services

import "testing"

func TestPaginator_Bounds(t *testing.T) {
	testCases := []struct {
		TestName   string
		Total      int
		PageSize   int
		Page       int
		ExpectedLo int
		ExpectedHi int
	}{
		{TestName: "First page #1", Total: 45, PageSize: 20, Page: 1, ExpectedLo: 0, ExpectedHi: 20},
		{TestName: "Last short page #2", Total: 45, PageSize: 20, Page: 3, ExpectedLo: 40, ExpectedHi: 45},
		{TestName: "Out of range clamps #3", Total: 45, PageSize: 20, Page: 4, ExpectedLo: 40, ExpectedHi: 45},
		{TestName: "Empty sequence #4", Total: 0, PageSize: 10, Page: 1, ExpectedLo: 0, ExpectedHi: 0},
		{TestName: "Exact fit #5", Total: 40, PageSize: 20, Page: 2, ExpectedLo: 20, ExpectedHi: 40},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			paginator := NewPaginator(tc.PageSize)
			paginator.SetTotal(tc.Total)
			paginator.SetPage(tc.Page)

			lo, hi := paginator.Bounds()
			if lo != tc.ExpectedLo || hi != tc.ExpectedHi {
				t.Errorf("Expected bounds [%d, %d), got [%d, %d)", tc.ExpectedLo, tc.ExpectedHi, lo, hi)
			}
		})
	}
}

func TestPaginator_ClampOnShrink(t *testing.T) {
	paginator := NewPaginator(20)
	paginator.SetTotal(100)
	paginator.SetPage(5)

	// уменьшение выборки поджимает текущую страницу
	paginator.SetTotal(45)
	if paginator.Page() != 3 {
		t.Errorf("Expected page 3 after shrink, got %d", paginator.Page())
	}

	// смена размера страницы тоже
	paginator.SetPageSize(50)
	if paginator.Page() != 1 {
		t.Errorf("Expected page 1 after resize, got %d", paginator.Page())
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	paginator := NewPaginator(20)

	// размер вне списка отклоняется без изменения состояния
	if paginator.SetPageSize(25) {
		t.Errorf("Expected page size 25 to be rejected")
	}
	if paginator.PageSize() != 20 {
		t.Errorf("Expected page size 20, got %d", paginator.PageSize())
	}
	if !paginator.SetPageSize(100) {
		t.Errorf("Expected page size 100 to be accepted")
	}
}

func TestPaginator_JumpTo(t *testing.T) {
	testCases := []struct {
		TestName     string
		Input        string
		ExpectedOK   bool
		ExpectedPage int
	}{
		{TestName: "Success. Plain number #1", Input: "2", ExpectedOK: true, ExpectedPage: 2},
		{TestName: "Success. Padded input #2", Input: " 3 ", ExpectedOK: true, ExpectedPage: 3},
		{TestName: "Error. Not a number #3", Input: "abc", ExpectedOK: false, ExpectedPage: 1},
		{TestName: "Error. Zero #4", Input: "0", ExpectedOK: false, ExpectedPage: 1},
		{TestName: "Error. Beyond last page #5", Input: "9", ExpectedOK: false, ExpectedPage: 1},
		{TestName: "Error. Empty #6", Input: "", ExpectedOK: false, ExpectedPage: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			paginator := NewPaginator(20)
			paginator.SetTotal(45)

			ok := paginator.JumpTo(tc.Input)
			if ok != tc.ExpectedOK {
				t.Errorf("Expected ok=%v, got %v", tc.ExpectedOK, ok)
			}
			if paginator.Page() != tc.ExpectedPage {
				t.Errorf("Expected page %d, got %d", tc.ExpectedPage, paginator.Page())
			}
		})
	}
}

func TestPaginator_UnknownDefaultSize(t *testing.T) {
	paginator := NewPaginator(7)
	if paginator.PageSize() != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, paginator.PageSize())
	}
}
