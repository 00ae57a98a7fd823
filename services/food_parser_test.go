package services

import (
	"reflect"
	"testing"

	"nutritrack/models"
)

func TestParseFoodItems(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []models.FoodItem
	}{
		{
			name: "mixed separators",
			in:   "2 eggs and 1 toast, 3 bananas",
			want: []models.FoodItem{
				{Quantity: 2, FoodName: "eggs", RawQuery: "2 eggs"},
				{Quantity: 1, FoodName: "toast", RawQuery: "1 toast"},
				{Quantity: 3, FoodName: "bananas", RawQuery: "3 bananas"},
			},
		},
		{name: "empty", in: "", want: nil},
		{name: "only separators", in: " , + ,", want: nil},
		{
			name: "numeric only",
			in:   "5",
			want: []models.FoodItem{{Quantity: 1, FoodName: "5", RawQuery: "5"}},
		},
		{
			name: "no quantity",
			in:   "Rice + dal",
			want: []models.FoodItem{
				{Quantity: 1, FoodName: "Rice", RawQuery: "Rice"},
				{Quantity: 1, FoodName: "dal", RawQuery: "dal"},
			},
		},
		{
			name: "multi word names keep case",
			in:   "  2   Greek Yogurt  ,1 apple pie",
			want: []models.FoodItem{
				{Quantity: 2, FoodName: "Greek Yogurt", RawQuery: "2   Greek Yogurt"},
				{Quantity: 1, FoodName: "apple pie", RawQuery: "1 apple pie"},
			},
		},
		{
			name: "and inside a word is not a separator",
			in:   "1 sandwich",
			want: []models.FoodItem{{Quantity: 1, FoodName: "sandwich", RawQuery: "1 sandwich"}},
		},
		{
			name: "quantity overflowing int",
			in:   "99999999999999999999 eggs",
			want: []models.FoodItem{{Quantity: 1, FoodName: "eggs", RawQuery: "99999999999999999999 eggs"}},
		},
		{
			name: "quantity glued to name",
			in:   "2eggs",
			want: []models.FoodItem{{Quantity: 1, FoodName: "2eggs", RawQuery: "2eggs"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFoodItems(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFoodItems(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
