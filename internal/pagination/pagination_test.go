package pagination

import (
	"net/url"
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	twelve := make([]int, 12)
	for i := range twelve {
		twelve[i] = i + 1
	}

	tests := []struct {
		name      string
		items     []int
		params    Params
		wantItems []int
		wantPages int
	}{
		{
			name:      "empty listing",
			items:     nil,
			params:    Params{Page: 1, Size: 50},
			wantItems: []int{},
			wantPages: 0,
		},
		{
			name:      "single page holds everything",
			items:     twelve,
			params:    Params{Page: 1, Size: 50},
			wantItems: twelve,
			wantPages: 1,
		},
		{
			name:      "middle page",
			items:     twelve,
			params:    Params{Page: 2, Size: 5},
			wantItems: []int{6, 7, 8, 9, 10},
			wantPages: 3,
		},
		{
			name:      "short last page",
			items:     twelve,
			params:    Params{Page: 3, Size: 5},
			wantItems: []int{11, 12},
			wantPages: 3,
		},
		{
			name:      "page past the end is empty, not an error",
			items:     twelve,
			params:    Params{Page: 9, Size: 5},
			wantItems: []int{},
			wantPages: 3,
		},
		{
			name:      "zero size guards the page-count division",
			items:     twelve,
			params:    Params{Page: 1, Size: 0},
			wantItems: []int{},
			wantPages: 0,
		},
		{
			name:      "huge page number stays an empty page",
			items:     twelve,
			params:    Params{Page: 184467440737095518, Size: 50},
			wantItems: []int{},
			wantPages: 1,
		},
		{
			name:      "huge page and size do not wrap the offsets",
			items:     twelve,
			params:    Params{Page: 1<<62 + 1, Size: 1 << 62},
			wantItems: []int{},
			wantPages: 1,
		},
		{
			name:      "oversized size returns everything on page 1",
			items:     twelve,
			params:    Params{Page: 1, Size: 1 << 62},
			wantItems: twelve,
			wantPages: 1,
		},
		{
			name:      "size equal to total",
			items:     twelve,
			params:    Params{Page: 1, Size: 12},
			wantItems: twelve,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.items, tt.params)
			if !reflect.DeepEqual(page.Items, tt.wantItems) {
				t.Errorf("Paginate() items = %v, want %v", page.Items, tt.wantItems)
			}
			if page.Pages != tt.wantPages {
				t.Errorf("Paginate() pages = %d, want %d", page.Pages, tt.wantPages)
			}
			if page.Total != len(tt.items) {
				t.Errorf("Paginate() total = %d, want %d", page.Total, len(tt.items))
			}
			if page.Page != tt.params.Page || page.Size != tt.params.Size {
				t.Errorf("Paginate() echoed page/size = %d/%d, want %d/%d",
					page.Page, page.Size, tt.params.Page, tt.params.Size)
			}
		})
	}
}

// Iterating pages 1..Pages must reproduce the listing exactly once per
// element, in order.
func TestPaginatePartition(t *testing.T) {
	items := make([]int, 17)
	for i := range items {
		items[i] = i
	}

	for size := 1; size <= len(items)+1; size++ {
		first := Paginate(items, Params{Page: 1, Size: size})

		var got []int
		for p := 1; p <= first.Pages; p++ {
			got = append(got, Paginate(items, Params{Page: p, Size: size}).Items...)
		}

		if !reflect.DeepEqual(got, items) {
			t.Errorf("size %d: concatenated pages = %v, want %v", size, got, items)
		}
	}
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{name: "defaults", query: "", want: Params{Page: 1, Size: 50}},
		{name: "explicit page and size", query: "page=2&size=3", want: Params{Page: 2, Size: 3}},
		{name: "zero size allowed", query: "size=0", want: Params{Page: 1, Size: 0}},
		{name: "zero page rejected", query: "page=0", wantErr: true},
		{name: "negative size rejected", query: "size=-1", wantErr: true},
		{name: "non-integer page rejected", query: "page=abc", wantErr: true},
		{name: "non-integer size rejected", query: "size=two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad test query: %v", err)
			}

			got, err := FromQuery(values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FromQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
