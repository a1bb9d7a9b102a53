package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState_ToggleSelection_Cap(t *testing.T) {
	s := DefaultViewState()
	for i := 0; i < MaxSelected; i++ {
		s = s.ToggleSelection(fmt.Sprintf("Exchange %d", i))
	}
	require.Len(t, s.Selected, MaxSelected)

	next := s.ToggleSelection("Exchange 8")
	assert.Len(t, next.Selected, MaxSelected)
	assert.False(t, next.IsSelected("Exchange 8"))
	assert.Equal(t, s.Selected, next.Selected)

	// deselecting frees a slot
	next = s.ToggleSelection("Exchange 0").ToggleSelection("Exchange 8")
	assert.Len(t, next.Selected, MaxSelected)
	assert.True(t, next.IsSelected("Exchange 8"))
	assert.False(t, next.IsSelected("Exchange 0"))
}

func TestViewState_ReducersDoNotAlias(t *testing.T) {
	s := DefaultViewState().ToggleSelection("Binance").ToggleColumn("coins")
	next := s.ToggleSelection("OKX").ToggleColumn("founded")

	assert.Equal(t, []string{"Binance"}, s.Selected)
	assert.Equal(t, map[string]bool{"coins": true}, s.Hidden)
	assert.Equal(t, []string{"Binance", "OKX"}, next.Selected)
	assert.True(t, next.Hidden["founded"])
}

func TestViewState_Comparison(t *testing.T) {
	s := DefaultViewState()

	// nothing selected, nothing to apply
	assert.False(t, s.ApplyComparison().ComparisonApplied)

	s = s.SetPage(3, 5).ToggleSelection("Binance").ToggleSelection("OKX")
	applied := s.ApplyComparison()
	assert.True(t, applied.ComparisonApplied)
	assert.Zero(t, applied.PageIndex)

	cleared := applied.SetPage(1, 1).ClearComparison()
	assert.False(t, cleared.ComparisonApplied)
	assert.Empty(t, cleared.Selected)
	assert.Zero(t, cleared.PageIndex)
}

func TestViewState_ToggleSort(t *testing.T) {
	s := DefaultViewState()
	assert.Equal(t, SortSpec{Key: RankKey}, s.Sort)

	s = s.ToggleSort(RankKey)
	assert.Equal(t, SortSpec{Key: RankKey, Desc: true}, s.Sort)

	s = s.ToggleSort(RankKey)
	assert.Equal(t, SortSpec{Key: RankKey}, s.Sort)

	s = s.ToggleSort("coins").ToggleSort("coins").ToggleSort("maker_fee")
	assert.Equal(t, SortSpec{Key: "maker_fee"}, s.Sort)

	// website and unknown columns are not sortable
	assert.Equal(t, s.Sort, s.ToggleSort(WebsiteKey).Sort)
	assert.Equal(t, s.Sort, s.ToggleSort("volume").Sort)
}

func TestViewState_Paging(t *testing.T) {
	s := DefaultViewState()

	s = s.SetPage(3, 4)
	assert.Equal(t, 2, s.PageIndex)

	assert.Equal(t, 2, s.SetPage(0, 4).PageIndex)
	assert.Equal(t, 2, s.SetPage(5, 4).PageIndex)

	assert.Equal(t, 3, s.NextPage(4).PageIndex)
	assert.Equal(t, 2, s.NextPage(3).PageIndex)
	assert.Equal(t, 1, s.PrevPage().PageIndex)
	assert.Equal(t, 0, DefaultViewState().PrevPage().PageIndex)

	resized := s.SetPageSize(50)
	assert.Equal(t, 50, resized.PageSize)
	assert.Zero(t, resized.PageIndex)
	assert.Equal(t, s, s.SetPageSize(0))
}

func TestViewState_LoadMore(t *testing.T) {
	s := DefaultViewState().SetPageSize(10)

	s = s.LoadMore(25)
	assert.Equal(t, 20, s.PageSize)
	s = s.LoadMore(25)
	assert.Equal(t, 25, s.PageSize)
	s = s.LoadMore(25)
	assert.Equal(t, 25, s.PageSize)

	comparing := DefaultViewState().SetPageSize(10).ToggleSelection("OKX").ApplyComparison()
	assert.Equal(t, 10, comparing.LoadMore(25).PageSize)
}

func TestViewState_Columns(t *testing.T) {
	s := DefaultViewState()

	s = s.ToggleColumn("coins").ToggleColumn(RankKey)
	assert.True(t, s.Hidden["coins"])
	assert.True(t, s.Hidden[RankKey])

	// the name and website columns stay visible
	assert.Equal(t, s.Hidden, s.ToggleColumn(NameKey).Hidden)
	assert.Equal(t, s.Hidden, s.ToggleColumn(WebsiteKey).Hidden)

	assert.False(t, s.ToggleColumn("coins").Hidden["coins"])
	assert.Empty(t, s.ShowAllColumns().Hidden)
}

func TestViewState_CustomColumns(t *testing.T) {
	s := DefaultViewState().SetFilter(FilterCustom)

	s = s.ToggleCustomColumn("maker_fee").ToggleCustomColumn("coins").ToggleCustomColumn("bogus")
	assert.Equal(t, []string{"maker_fee", "coins"}, s.CustomColumns)

	s = s.ToggleCustomColumn("maker_fee")
	assert.Equal(t, []string{"coins"}, s.CustomColumns)
	assert.Equal(t, s.CustomColumns, s.ToggleCustomColumn(NameKey).CustomColumns)
}

func TestViewState_Misc(t *testing.T) {
	s := DefaultViewState().SetPage(2, 3).SetFilter(FilterFees)
	assert.Equal(t, FilterFees, s.Filter)
	assert.Equal(t, 1, s.PageIndex)

	assert.True(t, s.ToggleDiscount().DiscountEnabled)
	assert.False(t, s.ToggleDiscount().ToggleDiscount().DiscountEnabled)
	assert.Equal(t, "kra", s.SetSearch("kra").Search)
	assert.Equal(t, "canada", s.SetRegion("canada").Region)
}
